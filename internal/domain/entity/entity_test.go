package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedLocation(t *testing.T) {
	for _, city := range MichiganCities {
		assert.True(t, IsAllowedLocation(city), "city %q", city)
	}
	assert.True(t, IsAllowedLocation("Other"))
	assert.False(t, IsAllowedLocation("Chicago"))
	assert.False(t, IsAllowedLocation(""))
	assert.False(t, IsAllowedLocation("detroit"), "matching is case-sensitive")
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("member"))
	assert.True(t, IsValidRole("admin"))
	assert.False(t, IsValidRole("superuser"))
	assert.False(t, IsValidRole(""))
}

func TestContentTooLongCountsRunes(t *testing.T) {
	assert.False(t, ContentTooLong(""))
	assert.False(t, ContentTooLong(strings.Repeat("a", MaxContentLength)))
	assert.True(t, ContentTooLong(strings.Repeat("a", MaxContentLength+1)))

	// Multibyte characters count once each, not per byte.
	assert.False(t, ContentTooLong(strings.Repeat("é", MaxContentLength)))
	assert.True(t, ContentTooLong(strings.Repeat("é", MaxContentLength+1)))
}

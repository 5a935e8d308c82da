package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func ownerRouter(lookup OwnerLookup, userID string, role entity.UserRole) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	})
	r.DELETE("/posts/:id", ResourceOwner(lookup, "id"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func lookupOwnedBy(ownerID string) OwnerLookup {
	return func(ctx context.Context, id string) (string, error) {
		return ownerID, nil
	}
}

func TestResourceOwnerAllowsOwner(t *testing.T) {
	r := ownerRouter(lookupOwnedBy("member-1"), "member-1", entity.UserRoleMember)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResourceOwnerAllowsAdmin(t *testing.T) {
	r := ownerRouter(lookupOwnedBy("member-1"), "admin-1", entity.UserRoleAdmin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResourceOwnerRejectsStranger(t *testing.T) {
	r := ownerRouter(lookupOwnedBy("member-1"), "member-2", entity.UserRoleMember)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResourceOwnerMissingResource(t *testing.T) {
	lookup := func(ctx context.Context, id string) (string, error) {
		return "", errors.New("post not found")
	}
	r := ownerRouter(lookup, "member-1", entity.UserRoleMember)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResourceOwnerLookupFailure(t *testing.T) {
	lookup := func(ctx context.Context, id string) (string, error) {
		return "", errors.New("connection reset")
	}
	r := ownerRouter(lookup, "member-1", entity.UserRoleMember)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

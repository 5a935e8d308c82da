package entity

import (
	"time"
)

// User represents a registered member of the community
type User struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Email        string     `bson:"email" json:"email"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	Name         string     `bson:"name" json:"name"`
	Role         UserRole   `bson:"role" json:"role"`
	Location     string     `bson:"location" json:"location"`
	Bio          string     `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePic   string     `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`
	Status       UserStatus `bson:"status" json:"status"`
	CreatedAt    time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updatedAt"`
}

// UserSummary is the denormalized author/creator shape embedded in list responses.
// Extra fields of a full user document are ignored when decoding lookup results.
type UserSummary struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	Name       string `bson:"name" json:"name"`
	Location   string `bson:"location,omitempty" json:"location,omitempty"`
	ProfilePic string `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

func DefaultRole() UserRole {
	return UserRoleMember
}

// IsValidRole reports whether the given string is a known role.
func IsValidRole(role string) bool {
	return role == string(UserRoleAdmin) || role == string(UserRoleMember)
}

// UserStatus represents the account standing of a user
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// MichiganCities is the fixed signup location allow-list. "Other" is a valid
// catch-all for members outside the listed cities.
var MichiganCities = []string{
	"Detroit",
	"Ann Arbor",
	"Grand Rapids",
	"Lansing",
	"Flint",
	"Dearborn",
	"Warren",
	"Sterling Heights",
	"Troy",
	"Farmington Hills",
	"Royal Oak",
	"Ferndale",
	"Hamtramck",
	"Ypsilanti",
	"Other",
}

// IsAllowedLocation reports whether loc is in the Michigan-city allow-list.
func IsAllowedLocation(loc string) bool {
	for _, city := range MichiganCities {
		if city == loc {
			return true
		}
	}
	return false
}

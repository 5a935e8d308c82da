package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified JWT payload attached to authenticated requests.
type Claims struct {
	UserID string
	Role   UserRole
	jwt.RegisteredClaims
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	"github.com/wuddevdet/platform-api/internal/handler/http/dto"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// AuthMiddleware verifies the bearer token, loads the user and attaches
// userID, userRole and currentUser to the request context. 401 on a missing,
// malformed or expired token, or when the user no longer exists.
func AuthMiddleware(tokenService usecasecontract.ITokenService, userRepo contract.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithError(c, http.StatusUnauthorized, "missing authorization header")
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header || tokenStr == "" {
			abortWithError(c, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := tokenService.ParseToken(tokenStr)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, err := userRepo.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "user no longer exists")
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Set("currentUser", user)
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated role is not in roles.
func RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get("userRole")
		if !exists {
			abortWithError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		role, _ := roleAny.(entity.UserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		abortWithError(c, http.StatusForbidden, "insufficient permissions")
	}
}

// RequireAdmin is shorthand for RequireRole(admin).
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(entity.UserRoleAdmin)
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

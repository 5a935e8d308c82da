package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// OwnerLookup resolves the owner (author/creator) of a resource by id.
// It returns an error containing "not found" when the resource is absent.
type OwnerLookup func(ctx context.Context, id string) (ownerID string, err error)

// ResourceOwner gates a route to the resource's owner or an admin.
// The resource id is read from the idParam path parameter. Responses:
// 404 when the resource does not exist, 403 for any other non-owner,
// pass-through for the owner and for admins.
func ResourceOwner(lookup OwnerLookup, idParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param(idParam)
		if id == "" {
			abortWithError(c, http.StatusBadRequest, "missing resource id")
			return
		}

		roleAny, exists := c.Get("userRole")
		if !exists {
			abortWithError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		role, _ := roleAny.(entity.UserRole)
		userID := c.GetString("userID")

		ownerID, err := lookup(c.Request.Context(), id)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				abortWithError(c, http.StatusNotFound, err.Error())
				return
			}
			abortWithError(c, http.StatusInternalServerError, "failed to load resource")
			return
		}

		if role != entity.UserRoleAdmin && ownerID != userID {
			abortWithError(c, http.StatusForbidden, "not the resource owner")
			return
		}
		c.Next()
	}
}

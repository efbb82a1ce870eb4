package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/response"
)

// RequireRole rejects the request with 403 unless the resolved role is in the
// given set. Must run after Auth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := CurrentIdentity(c)
		if id == nil {
			response.Unauthorized(c, response.MsgNotAuthenticated)
			return
		}
		if !roleIn(id.Role, roles) {
			response.Forbidden(c, response.MsgPermissionDenied)
			return
		}
		c.Next()
	}
}

// AllowOwnerOrRole is the ownership predicate handlers apply before mutating a
// resource: the caller must own it, or hold one of the listed roles. Pure
// check, no side effects.
func AllowOwnerOrRole(id *Identity, ownerID string, roles ...models.Role) bool {
	if id == nil {
		return false
	}
	if ownerID != "" && id.ID == ownerID {
		return true
	}
	return roleIn(id.Role, roles)
}

func roleIn(r models.Role, set []models.Role) bool {
	for _, candidate := range set {
		if r == candidate {
			return true
		}
	}
	return false
}

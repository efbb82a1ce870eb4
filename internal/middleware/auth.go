package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/jwt"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/response"
)

const (
	ContextKeyIdentity  = "identity"
	ContextKeyUserAgent = "user_agent"

	// TokenCookie is the cookie the auth handlers set on login/register.
	TokenCookie = "token"
)

// Identity is the resolved caller attached to the request context after a
// successful session resolution.
type Identity struct {
	ID     string      `json:"uid"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Role   models.Role `json:"role"`
	Avatar string      `json:"avatar,omitempty"`
}

// UserLoader fetches the live user record for a token subject. Resolution
// always goes back to the store so a role change or freeze takes effect on the
// very next request, with no session cache in between.
type UserLoader interface {
	LoadUser(ctx context.Context, id string) (*models.UserModel, error)
}

// Auth enforces authentication: a request without a valid token backed by a
// live, non-banned, non-frozen account is rejected.
func Auth(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "No token provided")
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			return
		}

		user, err := users.LoadUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.InternalError(c, err, false)
			return
		}
		if user == nil {
			response.Unauthorized(c, "User not found")
			return
		}
		if user.Role == models.RoleBanned {
			response.Forbidden(c, response.MsgAccountBanned)
			return
		}
		if user.IsFrozen {
			response.Forbidden(c, response.MsgAccountFrozen)
			return
		}

		attachIdentity(c, user)
		c.Next()
	}
}

// OptionalAuth runs the same resolution but never blocks the request: absence
// of a token, an invalid token or a rejected account just leaves the request
// anonymous.
func OptionalAuth(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := jwt.Parse(token); err == nil {
				user, err := users.LoadUser(c.Request.Context(), claims.UserID)
				if err == nil && user != nil && user.Role != models.RoleBanned && !user.IsFrozen {
					attachIdentity(c, user)
				}
			}
		}
		c.Next()
	}
}

func attachIdentity(c *gin.Context, user *models.UserModel) {
	c.Set(ContextKeyIdentity, &Identity{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		Avatar: user.Avatar,
	})
	c.Set(ContextKeyUserAgent, c.Request.UserAgent())
}

// CurrentIdentity returns the resolved caller, or nil for anonymous requests.
func CurrentIdentity(c *gin.Context) *Identity {
	v, _ := c.Get(ContextKeyIdentity)
	id, _ := v.(*Identity)
	return id
}

// IsAuthenticated reports whether the request carries a resolved identity.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentIdentity(c) != nil
}

// extractToken reads the session token. The Authorization header takes
// precedence over the cookie when both are present.
func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return NormalizeToken(cookie)
	}
	return ""
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}

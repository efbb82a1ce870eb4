package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
)

func guardRouter(identity *Identity, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/gated",
		func(c *gin.Context) {
			if identity != nil {
				c.Set(ContextKeyIdentity, identity)
			}
		},
		RequireRole(roles...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRequireRoleAnonymous(t *testing.T) {
	w := doGet(guardRouter(nil, models.RoleAdmin), "/gated")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleAllowed(t *testing.T) {
	id := &Identity{ID: "u1", Role: models.RoleEditor}
	w := doGet(guardRouter(id, models.RoleEditor, models.RoleAdmin), "/gated")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleDenied(t *testing.T) {
	id := &Identity{ID: "u1", Role: models.RoleUser}
	w := doGet(guardRouter(id, models.RoleEditor, models.RoleAdmin), "/gated")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Permission denied")
}

func TestAllowOwnerOrRole(t *testing.T) {
	owner := &Identity{ID: "owner", Role: models.RoleUser}
	admin := &Identity{ID: "boss", Role: models.RoleAdmin}
	other := &Identity{ID: "other", Role: models.RoleUser}

	require.True(t, AllowOwnerOrRole(owner, "owner", models.RoleAdmin))
	require.True(t, AllowOwnerOrRole(admin, "owner", models.RoleAdmin))
	require.False(t, AllowOwnerOrRole(other, "owner", models.RoleAdmin))
	require.False(t, AllowOwnerOrRole(nil, "owner", models.RoleAdmin))

	// An empty owner never matches by ownership, only by role.
	require.False(t, AllowOwnerOrRole(other, "", models.RoleAdmin))
	require.True(t, AllowOwnerOrRole(admin, "", models.RoleAdmin))
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
)

func perimeterRouter(allow *IPAllowList, identity *Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping",
		func(c *gin.Context) {
			if identity != nil {
				c.Set(ContextKeyIdentity, identity)
			}
		},
		AdminPerimeter(allow, zap.NewNop()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func adminGet(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminPerimeterAllowed(t *testing.T) {
	admin := &Identity{ID: "a1", Role: models.RoleAdmin}
	r := perimeterRouter(NewIPAllowList([]string{"192.0.2.10"}), admin)

	w := adminGet(r, "192.0.2.10:5000")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminPerimeterRejectsUnlistedIP(t *testing.T) {
	admin := &Identity{ID: "a1", Role: models.RoleAdmin}
	r := perimeterRouter(NewIPAllowList([]string{"192.0.2.10"}), admin)

	w := adminGet(r, "198.51.100.7:5000")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Access denied. Invalid IP address.")
}

// An empty allow-list is fail-closed: even a genuine admin is shut out until
// addresses are configured.
func TestAdminPerimeterEmptyListRejectsAdmin(t *testing.T) {
	admin := &Identity{ID: "a1", Role: models.RoleAdmin}
	r := perimeterRouter(NewIPAllowList(nil), admin)

	w := adminGet(r, "192.0.2.10:5000")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Access denied. Invalid IP address.")
}

func TestAdminPerimeterRejectsNonAdminRole(t *testing.T) {
	editor := &Identity{ID: "e1", Role: models.RoleEditor}
	r := perimeterRouter(NewIPAllowList([]string{"192.0.2.10"}), editor)

	w := adminGet(r, "192.0.2.10:5000")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Admin access required")
}

func TestAdminPerimeterRejectsAnonymous(t *testing.T) {
	r := perimeterRouter(NewIPAllowList([]string{"192.0.2.10"}), nil)

	w := adminGet(r, "192.0.2.10:5000")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Admin access required")
}

func TestIPAllowListSkipsEmptyEntries(t *testing.T) {
	l := NewIPAllowList([]string{"", "192.0.2.10", ""})
	require.Equal(t, 1, l.Len())
	require.True(t, l.Contains("192.0.2.10"))
	require.False(t, l.Contains(""))
}

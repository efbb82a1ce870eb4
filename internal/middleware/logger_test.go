package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
)

func TestLoggerAnonymousRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("User-Agent", "test-agent/1.0")
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0].ContextMap()
	require.Equal(t, "GET", entry["method"])
	require.Equal(t, "/ping", entry["path"])
	require.Equal(t, int64(http.StatusOK), entry["status"])
	require.Equal(t, "test-agent/1.0", entry["user_agent"])
	require.NotContains(t, entry, "actor")
}

func TestLoggerAuthenticatedRequestCarriesActor(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) {
		c.Set(ContextKeyIdentity, &Identity{ID: "u1", Role: models.RoleEditor})
		c.Status(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0].ContextMap()
	require.Equal(t, "u1", entry["actor"])
	require.Equal(t, "editor", entry["role"])
}

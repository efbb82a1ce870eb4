package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, "development", cfg.Env)
	require.True(t, cfg.IsDev())
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.Equal(t, "kode", cfg.MongoDB)
	require.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	require.Equal(t, 15, cfg.RateLimit.WindowMinutes)
	require.Equal(t, 100, cfg.RateLimit.MaxRequests)
	require.Equal(t, 5, cfg.RateLimit.AuthMax)
	require.Empty(t, cfg.AdminIPs)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
port: 8080
env: production
mongo_db: kodeprod
token_ttl_hours: 24
admin_ip_whitelist:
  - 192.0.2.10
  - 192.0.2.11
rate_limit:
  max_requests: 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Port)
	require.False(t, cfg.IsDev())
	require.Equal(t, "kodeprod", cfg.MongoDB)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, []string{"192.0.2.10", "192.0.2.11"}, cfg.AdminIPs)
	require.Equal(t, 20, cfg.RateLimit.MaxRequests)
	// Unset rate-limit fields still get defaults.
	require.Equal(t, 15, cfg.RateLimit.WindowMinutes)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9001")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ADMIN_IP_WHITELIST", "203.0.113.1, 203.0.113.2 ,")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, 9001, cfg.Port)
	require.Equal(t, "production", cfg.Env)
	require.Equal(t, "env-secret", cfg.JWTSecret)
	require.Equal(t, []string{"203.0.113.1", "203.0.113.2"}, cfg.AdminIPs)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a number"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSplitCSV(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitCSV("a,b"))
	require.Equal(t, []string{"a", "b"}, splitCSV(" a , b , "))
	require.Empty(t, splitCSV(",,"))
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort     = 5000
	defaultEnv      = "development"
	defaultMongoURI = "mongodb://localhost:27017"
	defaultMongoDB  = "kode"
	defaultRedisURL = "redis://localhost:6379/0"
	defaultTokenTTL = 7 * 24 * time.Hour
)

// AppConfig holds runtime startup configuration. Loaded once at process start
// and never mutated afterwards.
type AppConfig struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"` // "development" | "production"
	MongoURI       string   `yaml:"mongo_uri"`
	MongoDB        string   `yaml:"mongo_db"`
	RedisURL       string   `yaml:"redis_url"`
	JWTSecret      string   `yaml:"jwt_secret"`
	TokenTTL       time.Duration
	TokenTTLHours  int      `yaml:"token_ttl_hours"`
	AdminIPs       []string `yaml:"admin_ip_whitelist"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig tunes the Redis request limiter.
type RateLimitConfig struct {
	WindowMinutes int `yaml:"window_minutes"`
	MaxRequests   int `yaml:"max_requests"`
	AuthMax       int `yaml:"auth_max_requests"`
}

// IsDev reports whether we run in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// Load reads the YAML config file (if present), applies environment variable
// overrides, and fills defaults. A missing file is not an error so the server
// can run from environment alone.
func Load(path string) (*AppConfig, error) {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("NODE_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("MONGO_DB"); v != "" {
		cfg.MongoDB = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("ADMIN_IP_WHITELIST"); v != "" {
		cfg.AdminIPs = splitCSV(v)
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.AllowedOrigins = splitCSV(v)
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = defaultMongoURI
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = defaultMongoDB
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = defaultRedisURL
	}
	if cfg.TokenTTLHours > 0 {
		cfg.TokenTTL = time.Duration(cfg.TokenTTLHours) * time.Hour
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	if cfg.RateLimit.WindowMinutes == 0 {
		cfg.RateLimit.WindowMinutes = 15
	}
	if cfg.RateLimit.MaxRequests == 0 {
		cfg.RateLimit.MaxRequests = 100
	}
	if cfg.RateLimit.AuthMax == 0 {
		cfg.RateLimit.AuthMax = 5
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

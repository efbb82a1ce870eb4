package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/config"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/database"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/middleware"
	jwtpkg "github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/jwt"
	redispkg "github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/redis"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/response"
)

// App owns the HTTP router and every backing connection.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *mongo.Database
	rc     *redispkg.Client
	logger *zap.Logger
}

func New(logger *zap.Logger, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	jwtpkg.SetSecret(cfg.JWTSecret)
	response.SetLogger(logger)

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	rc, err := redispkg.Connect(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Device-Fingerprint"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	a := &App{cfg: cfg, router: r, db: db, rc: rc, logger: logger}
	a.registerRoutes()
	return a, nil
}

func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

func (a *App) Router() *gin.Engine { return a.router }

// Shutdown closes the backing connections. Safe to call once, after the HTTP
// server has stopped accepting requests.
func (a *App) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.Disconnect(ctx, a.db); err != nil {
		a.logger.Warn("mongo disconnect", zap.Error(err))
	}
	if err := a.rc.Close(); err != nil {
		a.logger.Warn("redis close", zap.Error(err))
	}
}

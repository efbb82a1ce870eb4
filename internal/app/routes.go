package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/middleware"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/account/auth"
	userpkg "github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/account/user"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/admin"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/audit"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/content/article"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/content/comment"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/content/project"
)

func (a *App) registerRoutes() {
	dev := a.cfg.IsDev()
	window := time.Duration(a.cfg.RateLimit.WindowMinutes) * time.Minute

	users := userpkg.NewService(a.db)
	auditSvc := audit.NewService(a.db, a.logger)
	authSvc := auth.NewService(users, a.cfg.TokenTTL)
	articles := article.NewService(a.db)
	projects := project.NewService(a.db)
	comments := comment.NewService(a.db)

	authMW := middleware.Auth(users)

	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	a.router.Use(middleware.RateLimit(a.rc.Raw(), "api", a.cfg.RateLimit.MaxRequests, window))

	api := a.router.Group("/api")
	api.Use(middleware.OptionalAuth(users))

	// The stricter auth window sits on top of the general limiter.
	authGroup := api.Group("")
	authGroup.Use(middleware.RateLimit(a.rc.Raw(), "auth", a.cfg.RateLimit.AuthMax, window))
	auth.NewHandler(authSvc, users, auditSvc, dev).RegisterRoutes(authGroup, authMW)

	article.NewHandler(articles, comments, auditSvc, dev).RegisterRoutes(api, authMW)
	project.NewHandler(projects, comments, auditSvc, dev).RegisterRoutes(api, authMW)
	comment.NewHandler(comments, auditSvc, dev).RegisterRoutes(api, authMW)

	perimeter := middleware.AdminPerimeter(middleware.NewIPAllowList(a.cfg.AdminIPs), a.logger)
	admin.NewHandler(users, auditSvc, dev).RegisterRoutes(api, authMW, perimeter)
}

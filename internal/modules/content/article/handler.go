package article

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/middleware"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/audit"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/content/comment"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/markdown"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/response"
)

type Handler struct {
	svc      *Service
	comments *comment.Service
	audit    *audit.Service
	dev      bool
}

func NewHandler(svc *Service, comments *comment.Service, auditSvc *audit.Service, dev bool) *Handler {
	return &Handler{svc: svc, comments: comments, audit: auditSvc, dev: dev}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/news")

	g.GET("/articles", h.list)
	g.GET("/articles/:slug", h.getBySlug)
	g.GET("/search", h.search)

	editorMW := middleware.RequireRole(models.RoleEditor, models.RoleAdmin)
	g.POST("/articles", authMW, editorMW, h.create)
	g.PUT("/articles/:slug", authMW, editorMW, h.update) // :slug carries the id here
	g.POST("/articles/:slug/publish", authMW, editorMW, h.publish)
	g.POST("/articles/:slug/archive", authMW, editorMW, h.archive)
	g.DELETE("/articles/:slug", authMW, editorMW, h.delete)
}

func (h *Handler) create(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	var dto CreateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if dto.Title == "" || dto.Content == "" {
		response.BadRequest(c, "Title and content are required")
		return
	}

	a, err := h.svc.Create(c.Request.Context(), &dto, models.AuthorRef{
		UID: id.ID, Name: id.Name, Avatar: id.Avatar,
	})
	if err != nil {
		if errors.Is(err, errSlugTaken) {
			response.Conflict(c, "An article with this title already exists")
			return
		}
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "article_created",
		Resource:   "article",
		ResourceID: a.ID,
		Details:    map[string]any{"title": a.Title},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.Created(c, gin.H{"message": "Article created successfully", "article": a})
}

func (h *Handler) getBySlug(c *gin.Context) {
	a, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	if a == nil {
		response.NotFound(c, "Article not found")
		return
	}

	if err := h.svc.IncrementViews(c.Request.Context(), a.ID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	comments, err := h.comments.ByArticle(c.Request.Context(), a.ID, 0)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	response.OK(c, gin.H{
		"article":      a,
		"content_html": markdown.RenderHTML(a.Content),
		"comments":     comments,
	})
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	var (
		articles []models.ArticleModel
		err      error
	)
	if tag := c.Query("tag"); tag != "" {
		articles, err = h.svc.ByTag(c.Request.Context(), tag, limit)
	} else {
		articles, err = h.svc.ListPublished(c.Request.Context(), limit, offset)
	}
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "articles", articles, len(articles))
}

func (h *Handler) update(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	articleID := c.Param("slug")

	var dto UpdateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.svc.GetByID(c.Request.Context(), articleID)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	if a == nil {
		response.NotFound(c, "Article not found")
		return
	}
	if !middleware.AllowOwnerOrRole(id, a.Author.UID, models.RoleAdmin) {
		response.Forbidden(c, response.MsgPermissionDenied)
		return
	}

	fields := bson.M{}
	if dto.Title != "" {
		fields["title"] = dto.Title
	}
	if dto.Content != "" {
		fields["content"] = dto.Content
	}
	if dto.Excerpt != "" {
		fields["excerpt"] = dto.Excerpt
	}
	if dto.Tags != nil {
		fields["tags"] = dto.Tags
	}
	if dto.FeaturedImage != "" {
		fields["featuredImage"] = dto.FeaturedImage
	}
	if dto.SEOTitle != "" {
		fields["seoTitle"] = dto.SEOTitle
	}
	if dto.SEODescription != "" {
		fields["seoDescription"] = dto.SEODescription
	}

	updated, err := h.svc.Update(c.Request.Context(), articleID, fields)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "article_updated",
		Resource:   "article",
		ResourceID: articleID,
		Details:    map[string]any{"title": updated.Title},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "Article updated successfully", "article": updated})
}

func (h *Handler) publish(c *gin.Context) {
	h.setStatus(c, models.ArticlePublished, "article_published", "Article published successfully")
}

func (h *Handler) archive(c *gin.Context) {
	h.setStatus(c, models.ArticleArchived, "article_archived", "Article archived successfully")
}

func (h *Handler) setStatus(c *gin.Context, status models.ArticleStatus, action, message string) {
	id := middleware.CurrentIdentity(c)
	articleID := c.Param("slug")

	a, err := h.svc.GetByID(c.Request.Context(), articleID)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	if a == nil {
		response.NotFound(c, "Article not found")
		return
	}

	if err := h.svc.SetStatus(c.Request.Context(), articleID, status); err != nil {
		if errors.Is(err, errArticleNotFound) {
			response.NotFound(c, "Article not found")
			return
		}
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     action,
		Resource:   "article",
		ResourceID: articleID,
		Details:    map[string]any{"title": a.Title},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": message})
}

func (h *Handler) delete(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	articleID := c.Param("slug")

	a, err := h.svc.GetByID(c.Request.Context(), articleID)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	if a == nil {
		response.NotFound(c, "Article not found")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), articleID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "article_deleted",
		Resource:   "article",
		ResourceID: articleID,
		Details:    map[string]any{"title": a.Title},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "Article deleted successfully"})
}

func (h *Handler) search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.BadRequest(c, "Search query required")
		return
	}

	articles, err := h.svc.Search(c.Request.Context(), q, 0)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "articles", articles, len(articles))
}

package project

import (
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
	g := rg.Group("/forum")

	g.GET("/projects", h.list)
	g.GET("/projects/popular", h.popular)
	g.GET("/projects/:id", h.get)
	g.GET("/search", h.search)

	g.POST("/projects", authMW, h.create)
	g.PUT("/projects/:id", authMW, h.update)
	g.POST("/projects/:id/popular", authMW,
		middleware.RequireRole(models.RoleEditor, models.RoleAdmin), h.markPopular)
	g.POST("/projects/:id/like", authMW, h.like)
	g.POST("/projects/:id/dislike", authMW, h.dislike)
	g.DELETE("/projects/:id", authMW, h.delete)
}

func (h *Handler) create(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	var dto CreateProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if dto.Title == "" || dto.Description == "" {
		response.BadRequest(c, "Title and description are required")
		return
	}

	p, err := h.svc.Create(c.Request.Context(), &dto, models.AuthorRef{
		UID: id.ID, Name: id.Name, Avatar: id.Avatar,
	})
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "project_created",
		Resource:   "project",
		ResourceID: p.ID,
		Details:    map[string]any{"title": p.Title},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.Created(c, gin.H{"message": "Project created successfully", "project": p})
}

func (h *Handler) get(c *gin.Context) {
	p, ok := h.loadProject(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.svc.IncrementViews(c.Request.Context(), p.ID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	comments, err := h.comments.ByProject(c.Request.Context(), p.ID, 0)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	response.OK(c, gin.H{
		"project":          p,
		"description_html": markdown.RenderHTML(p.Description),
		"comments":         comments,
	})
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	sortBy := c.DefaultQuery("sortBy", SortRecent)

	projects, err := h.svc.List(c.Request.Context(), sortBy, limit, offset)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "projects", projects, len(projects))
}

func (h *Handler) popular(c *gin.Context) {
	projects, err := h.svc.Popular(c.Request.Context(), 0)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "projects", projects, len(projects))
}

func (h *Handler) search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.BadRequest(c, "Search query required")
		return
	}

	projects, err := h.svc.Search(c.Request.Context(), q, 0)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "projects", projects, len(projects))
}

func (h *Handler) update(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	projectID := c.Param("id")

	var dto UpdateProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, ok := h.loadProject(c, projectID)
	if !ok {
		return
	}
	if !middleware.AllowOwnerOrRole(id, p.Author.UID, models.RoleAdmin) {
		response.Forbidden(c, response.MsgPermissionDenied)
		return
	}

	fields := bson.M{}
	if dto.Title != "" {
		fields["title"] = dto.Title
	}
	if dto.Description != "" {
		fields["description"] = dto.Description
	}
	if dto.Tags != nil {
		fields["tags"] = dto.Tags
	}
	if dto.Images != nil {
		fields["images"] = dto.Images
	}
	if dto.Links != nil {
		fields["links"] = dto.Links
	}

	updated, err := h.svc.Update(c.Request.Context(), projectID, fields)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "project_updated",
		Resource:   "project",
		ResourceID: projectID,
		Details:    map[string]any{"title": updated.Title},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "Project updated successfully", "project": updated})
}

// markPopular flags a project into the curated trending feed.
func (h *Handler) markPopular(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	projectID := c.Param("id")

	p, ok := h.loadProject(c, projectID)
	if !ok {
		return
	}
	if err := h.svc.MarkPopular(c.Request.Context(), p.ID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "project_marked_popular",
		Resource:   "project",
		ResourceID: p.ID,
		Details:    map[string]any{"title": p.Title},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "Project marked as popular"})
}

func (h *Handler) like(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	projectID := c.Param("id")

	if _, ok := h.loadProject(c, projectID); !ok {
		return
	}
	if err := h.svc.ToggleLike(c.Request.Context(), projectID, id.ID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.OK(c, gin.H{"message": "Like toggled successfully"})
}

func (h *Handler) dislike(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	projectID := c.Param("id")

	if _, ok := h.loadProject(c, projectID); !ok {
		return
	}
	if err := h.svc.ToggleDislike(c.Request.Context(), projectID, id.ID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.OK(c, gin.H{"message": "Dislike toggled successfully"})
}

func (h *Handler) delete(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	projectID := c.Param("id")

	p, ok := h.loadProject(c, projectID)
	if !ok {
		return
	}
	if !middleware.AllowOwnerOrRole(id, p.Author.UID, models.RoleAdmin) {
		response.Forbidden(c, response.MsgPermissionDenied)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), projectID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "project_deleted",
		Resource:   "project",
		ResourceID: projectID,
		Details:    map[string]any{"title": p.Title},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "Project deleted successfully"})
}

func (h *Handler) loadProject(c *gin.Context, id string) (*models.ProjectModel, bool) {
	p, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return nil, false
	}
	if p == nil {
		response.NotFound(c, "Project not found")
		return nil, false
	}
	return p, true
}

package comment

import (
	"github.com/gin-gonic/gin"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/middleware"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/audit"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/response"
)

type Handler struct {
	svc   *Service
	audit *audit.Service
	dev   bool
}

func NewHandler(svc *Service, auditSvc *audit.Service, dev bool) *Handler {
	return &Handler{svc: svc, audit: auditSvc, dev: dev}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/comments")

	// Public reads: optional identity is already resolved at the api group
	// level (personalizes the delete affordance client-side).
	g.GET("/articles/:id", h.listByArticle)
	g.GET("/projects/:id", h.listByProject)

	g.POST("", authMW, h.create)
	g.PUT("/:id", authMW, h.update)
	g.DELETE("/:id", authMW, h.delete)
	g.POST("/:id/report", authMW, h.report)
	g.POST("/:id/like", authMW, h.like)
	g.POST("/:id/dislike", authMW, h.dislike)

	g.GET("/reported", authMW,
		middleware.RequireRole(models.RoleEditor, models.RoleAdmin), h.reported)
}

func (h *Handler) create(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	var dto CreateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if dto.Content == "" {
		response.BadRequest(c, "Content is required")
		return
	}
	if (dto.ArticleID == "") == (dto.ProjectID == "") {
		response.BadRequest(c, "Either articleId or projectId is required")
		return
	}

	author := models.CommentAuthor{
		UID:         id.ID,
		Name:        id.Name,
		IsAnonymous: dto.IsAnonymous,
		Avatar:      id.Avatar,
	}
	if dto.IsAnonymous {
		author.Name = dto.AnonName
		if author.Name == "" {
			author.Name = "Anonymous"
		}
		author.AnonName = dto.AnonName
		author.Avatar = ""
	}

	cm, err := h.svc.Create(c.Request.Context(), &dto, author)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "comment_created",
		Resource:   "comment",
		ResourceID: cm.ID,
		Details:    map[string]any{"articleId": dto.ArticleID, "projectId": dto.ProjectID},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.Created(c, gin.H{"message": "Comment created successfully", "comment": cm})
}

func (h *Handler) listByArticle(c *gin.Context) {
	comments, err := h.svc.ByArticle(c.Request.Context(), c.Param("id"), 0)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "comments", comments, len(comments))
}

func (h *Handler) listByProject(c *gin.Context) {
	comments, err := h.svc.ByProject(c.Request.Context(), c.Param("id"), 0)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "comments", comments, len(comments))
}

func (h *Handler) update(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	commentID := c.Param("id")

	var dto UpdateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil || dto.Content == "" {
		response.BadRequest(c, "Content is required")
		return
	}

	cm, ok := h.loadComment(c, commentID)
	if !ok {
		return
	}
	if !middleware.AllowOwnerOrRole(id, cm.Author.UID, models.RoleAdmin) {
		response.Forbidden(c, response.MsgPermissionDenied)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), commentID, dto.Content)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "comment_updated",
		Resource:   "comment",
		ResourceID: commentID,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "Comment updated successfully", "comment": updated})
}

func (h *Handler) delete(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	commentID := c.Param("id")

	cm, ok := h.loadComment(c, commentID)
	if !ok {
		return
	}
	// Deletion extends ownership to moderators.
	if !middleware.AllowOwnerOrRole(id, cm.Author.UID, models.RoleAdmin, models.RoleEditor) {
		response.Forbidden(c, response.MsgPermissionDenied)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), commentID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "comment_deleted",
		Resource:   "comment",
		ResourceID: commentID,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "Comment deleted successfully"})
}

func (h *Handler) report(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	commentID := c.Param("id")

	cm, ok := h.loadComment(c, commentID)
	if !ok {
		return
	}

	if err := h.svc.Report(c.Request.Context(), cm, id.ID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "comment_reported",
		Resource:   "comment",
		ResourceID: commentID,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "Comment reported successfully"})
}

func (h *Handler) like(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	commentID := c.Param("id")

	if _, ok := h.loadComment(c, commentID); !ok {
		return
	}
	if err := h.svc.ToggleLike(c.Request.Context(), commentID, id.ID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.OK(c, gin.H{"message": "Like toggled successfully"})
}

func (h *Handler) dislike(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	commentID := c.Param("id")

	if _, ok := h.loadComment(c, commentID); !ok {
		return
	}
	if err := h.svc.ToggleDislike(c.Request.Context(), commentID, id.ID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.OK(c, gin.H{"message": "Dislike toggled successfully"})
}

func (h *Handler) reported(c *gin.Context) {
	comments, err := h.svc.Reported(c.Request.Context(), 0)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "comments", comments, len(comments))
}

func (h *Handler) loadComment(c *gin.Context, id string) (*models.CommentModel, bool) {
	cm, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return nil, false
	}
	if cm == nil {
		response.NotFound(c, "Comment not found")
		return nil, false
	}
	return cm, true
}

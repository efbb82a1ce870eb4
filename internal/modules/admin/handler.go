package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/middleware"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
	userpkg "github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/account/user"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/audit"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/response"
)

// Handler serves the administration surface. Every route here sits behind the
// admin perimeter (IP allow-list + admin role), wired by the caller.
type Handler struct {
	users *userpkg.Service
	audit *audit.Service
	dev   bool
}

func NewHandler(users *userpkg.Service, auditSvc *audit.Service, dev bool) *Handler {
	return &Handler{users: users, audit: auditSvc, dev: dev}
}

// RegisterRoutes mounts the admin API. perimeter must already include
// authentication and the IP/role gate.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, perimeter ...gin.HandlerFunc) {
	g := rg.Group("/admin", perimeter...)

	g.GET("/users", h.listUsers)
	g.GET("/users/search", h.searchUsers)
	g.POST("/users", h.createUser)
	g.PUT("/users/:userId/role", h.changeRole)
	g.POST("/users/:userId/freeze", h.freezeUser)
	g.POST("/users/:userId/unfreeze", h.unfreezeUser)
	g.DELETE("/users/:userId", h.deleteUser)

	g.GET("/logs/user/:userId", h.logsByUser)
	g.GET("/logs/action", h.logsByAction)
	g.GET("/logs/recent", h.logsRecent)
}

func (h *Handler) listUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	users, err := h.users.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "users", users, len(users))
}

func (h *Handler) searchUsers(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.BadRequest(c, "Search query required")
		return
	}

	users, err := h.users.Search(c.Request.Context(), q, 0)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "users", users, len(users))
}

func (h *Handler) createUser(c *gin.Context) {
	actor := middleware.CurrentIdentity(c)

	var dto CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if dto.Email == "" || dto.Password == "" || dto.Name == "" {
		response.BadRequest(c, "Missing required fields")
		return
	}
	role := models.Role(dto.Role)
	if dto.Role == "" {
		role = models.RoleUser
	} else if !models.ValidRole(role) {
		response.BadRequest(c, "Invalid role")
		return
	}

	u, err := h.users.Create(c.Request.Context(), dto.Email, dto.Password, dto.Name, role)
	if err != nil {
		if errors.Is(err, userpkg.ErrEmailTaken) {
			response.Conflict(c, "User already exists")
			return
		}
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    actor.ID,
		Action:     "user_created_by_admin",
		Resource:   "user",
		ResourceID: u.ID,
		Details:    withFingerprint(c, map[string]any{"email": u.Email, "role": string(u.Role)}),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.Created(c, gin.H{"message": "User created successfully", "user": u})
}

func (h *Handler) changeRole(c *gin.Context) {
	actor := middleware.CurrentIdentity(c)
	userID := c.Param("userId")

	var dto ChangeRoleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	role := models.Role(dto.Role)
	if !models.ValidRole(role) {
		response.BadRequest(c, "Invalid role")
		return
	}

	u, ok := h.loadUser(c, userID)
	if !ok {
		return
	}
	if err := h.users.ChangeRole(c.Request.Context(), u.ID, role); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    actor.ID,
		Action:     "user_role_changed",
		Resource:   "user",
		ResourceID: u.ID,
		Details:    withFingerprint(c, map[string]any{"newRole": string(role), "previousRole": string(u.Role)}),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "User role updated successfully"})
}

func (h *Handler) freezeUser(c *gin.Context) {
	actor := middleware.CurrentIdentity(c)
	userID := c.Param("userId")

	var dto FreezeDTO
	_ = c.ShouldBindJSON(&dto)

	u, ok := h.loadUser(c, userID)
	if !ok {
		return
	}
	if err := h.users.SetFrozen(c.Request.Context(), u.ID, true); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    actor.ID,
		Action:     "user_frozen",
		Resource:   "user",
		ResourceID: u.ID,
		Details:    withFingerprint(c, map[string]any{"reason": dto.Reason}),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "User frozen successfully"})
}

// unfreezeUser is idempotent: unfreezing an active account succeeds without
// side effects beyond the audit entry.
func (h *Handler) unfreezeUser(c *gin.Context) {
	actor := middleware.CurrentIdentity(c)
	userID := c.Param("userId")

	u, ok := h.loadUser(c, userID)
	if !ok {
		return
	}
	if err := h.users.SetFrozen(c.Request.Context(), u.ID, false); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    actor.ID,
		Action:     "user_unfrozen",
		Resource:   "user",
		ResourceID: u.ID,
		Details:    withFingerprint(c, nil),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "User unfrozen successfully"})
}

func (h *Handler) deleteUser(c *gin.Context) {
	actor := middleware.CurrentIdentity(c)
	userID := c.Param("userId")

	u, ok := h.loadUser(c, userID)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), u.ID); err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    actor.ID,
		Action:     "user_deleted",
		Resource:   "user",
		ResourceID: u.ID,
		Details:    withFingerprint(c, map[string]any{"email": u.Email}),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "User deleted successfully"})
}

func (h *Handler) logsByUser(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := h.audit.ByActor(c.Request.Context(), c.Param("userId"), limit)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "logs", logs, len(logs))
}

func (h *Handler) logsByAction(c *gin.Context) {
	action := c.Query("action")
	if action == "" {
		response.BadRequest(c, "Action parameter required")
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := h.audit.ByAction(c.Request.Context(), action, limit)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "logs", logs, len(logs))
}

func (h *Handler) logsRecent(c *gin.Context) {
	hours, _ := strconv.Atoi(c.Query("hours"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := h.audit.Recent(c.Request.Context(), hours, limit)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	response.List(c, "logs", logs, len(logs))
}

// withFingerprint copies the perimeter-captured device fingerprint, when the
// client sent one, into an audit detail map.
func withFingerprint(c *gin.Context, details map[string]any) map[string]any {
	if details == nil {
		details = map[string]any{}
	}
	if fp, ok := c.Get(middleware.ContextKeyFingerprint); ok {
		details["deviceFingerprint"] = fp
	}
	return details
}

func (h *Handler) loadUser(c *gin.Context, id string) (*models.UserModel, bool) {
	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return nil, false
	}
	if u == nil {
		response.NotFound(c, "User not found")
		return nil, false
	}
	return u, true
}

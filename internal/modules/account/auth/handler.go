package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/middleware"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
	userpkg "github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/account/user"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/audit"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/response"
)

// MinPasswordLength applies to registration and password changes.
const MinPasswordLength = 8

type Handler struct {
	svc   *Service
	users *userpkg.Service
	audit *audit.Service
	dev   bool
	prod  bool
}

func NewHandler(svc *Service, users *userpkg.Service, auditSvc *audit.Service, dev bool) *Handler {
	return &Handler{svc: svc, users: users, audit: auditSvc, dev: dev, prod: !dev}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")

	a.POST("/register", h.register)
	a.POST("/login", h.login)
	a.POST("/logout", authMW, h.logout)
	a.GET("/me", authMW, h.me)
	a.POST("/profile", authMW, h.updateProfile)
	a.POST("/change-password", authMW, h.changePassword)
	a.POST("/refresh-token", authMW, h.refreshToken)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if dto.Email == "" || dto.Password == "" || dto.Name == "" {
		response.BadRequest(c, "Missing required fields")
		return
	}
	if dto.Password != dto.ConfirmPassword {
		response.BadRequest(c, "Passwords do not match")
		return
	}
	if len(dto.Password) < MinPasswordLength {
		response.BadRequest(c, "Password must be at least 8 characters")
		return
	}

	u, token, err := h.svc.Register(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, userpkg.ErrEmailTaken) {
			response.Conflict(c, "User already exists")
			return
		}
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    u.ID,
		Action:     "user_registered",
		Resource:   "user",
		ResourceID: u.ID,
		Details:    map[string]any{"email": u.Email, "name": u.Name},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	h.setTokenCookie(c, token)
	response.Created(c, gin.H{
		"message": "User registered successfully",
		"user":    publicUser(u),
		"token":   token,
	})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if dto.Email == "" || dto.Password == "" {
		response.BadRequest(c, "Email and password are required")
		return
	}

	u, token, err := h.svc.Login(c.Request.Context(), &dto)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidCredentials):
			response.Unauthorized(c, "Invalid email or password")
		case errors.Is(err, errAccountFrozen):
			response.Forbidden(c, response.MsgAccountFrozen)
		case errors.Is(err, errAccountBanned):
			response.Forbidden(c, response.MsgAccountBanned)
		default:
			response.InternalError(c, err, h.dev)
		}
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    u.ID,
		Action:     "user_login",
		Resource:   "user",
		ResourceID: u.ID,
		Details:    map[string]any{"email": u.Email},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	h.setTokenCookie(c, token)
	response.OK(c, gin.H{
		"message": "Login successful",
		"user":    publicUser(u),
		"token":   token,
	})
}

func (h *Handler) logout(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	h.clearTokenCookie(c)
	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "user_logout",
		Resource:   "user",
		ResourceID: id.ID,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "Logout successful"})
}

func (h *Handler) me(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	u, err := h.users.GetByID(c.Request.Context(), id.ID)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}
	if u == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, gin.H{"user": u})
}

func (h *Handler) updateProfile(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fields := bson.M{}
	if dto.Name != "" {
		fields["name"] = dto.Name
	}
	if dto.Bio != "" {
		fields["bio"] = dto.Bio
	}
	if dto.Avatar != "" {
		fields["avatar"] = dto.Avatar
	}

	u, err := h.users.Update(c.Request.Context(), id.ID, fields)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "profile_updated",
		Resource:   "user",
		ResourceID: id.ID,
		Details:    map[string]any{"name": dto.Name, "bio": dto.Bio},
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "Profile updated successfully", "user": u})
}

func (h *Handler) changePassword(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	var dto ChangePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if dto.CurrentPassword == "" || dto.NewPassword == "" {
		response.BadRequest(c, "Missing required fields")
		return
	}
	if dto.NewPassword != dto.ConfirmPassword {
		response.BadRequest(c, "Passwords do not match")
		return
	}
	if len(dto.NewPassword) < MinPasswordLength {
		response.BadRequest(c, "Password must be at least 8 characters")
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), id.ID, dto.CurrentPassword, dto.NewPassword); err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.Unauthorized(c, "Current password is incorrect")
			return
		}
		response.InternalError(c, err, h.dev)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Entry{
		ActorID:    id.ID,
		Action:     "password_changed",
		Resource:   "user",
		ResourceID: id.ID,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})

	response.OK(c, gin.H{"message": "Password changed successfully"})
}

func (h *Handler) refreshToken(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	token, err := h.svc.Refresh(c.Request.Context(), id.ID)
	if err != nil {
		response.InternalError(c, err, h.dev)
		return
	}

	h.setTokenCookie(c, token)
	response.OK(c, gin.H{"token": token})
}

// setTokenCookie mirrors the token expiry: httpOnly, SameSite=Strict, secure
// outside development.
func (h *Handler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, int(h.svc.TokenTTL().Seconds()), "/", "", h.prod, true)
}

func (h *Handler) clearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.prod, true)
}

func publicUser(u *models.UserModel) userResponse {
	return userResponse{
		UID:    u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   string(u.Role),
		Avatar: u.Avatar,
	}
}

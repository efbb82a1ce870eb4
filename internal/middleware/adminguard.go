package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/response"
)

// ContextKeyFingerprint carries the client-supplied device fingerprint on
// admin requests. Forensic only, never part of the accept/reject decision.
const ContextKeyFingerprint = "device_fingerprint"

// IPAllowList is an immutable exact-match set of approved caller addresses,
// built once at startup.
type IPAllowList struct {
	ips map[string]struct{}
}

// NewIPAllowList builds the set. An empty list stays empty: the guard is
// fail-closed and an empty allow-list rejects every admin request.
func NewIPAllowList(ips []string) *IPAllowList {
	set := make(map[string]struct{}, len(ips))
	for _, ip := range ips {
		if ip != "" {
			set[ip] = struct{}{}
		}
	}
	return &IPAllowList{ips: set}
}

// Contains tests exact membership.
func (l *IPAllowList) Contains(ip string) bool {
	_, ok := l.ips[ip]
	return ok
}

// Len returns the number of approved addresses.
func (l *IPAllowList) Len() int { return len(l.ips) }

// AdminPerimeter is the stricter gate on administrative routes, layered after
// Auth and before the handlers. The caller address comes from the observed
// remote address via gin, never a client-supplied body field, and the admin
// role is re-checked here even though route-level checks may already have run.
func AdminPerimeter(allow *IPAllowList, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !allow.Contains(ip) {
			log.Warn("admin access attempt from unauthorized IP",
				zap.String("ip", ip),
				zap.String("path", c.Request.URL.Path),
			)
			response.Forbidden(c, response.MsgInvalidAdminIP)
			return
		}

		id := CurrentIdentity(c)
		if id == nil || id.Role != models.RoleAdmin {
			response.Forbidden(c, "Admin access required")
			return
		}

		if fp := c.GetHeader("X-Device-Fingerprint"); fp != "" {
			c.Set(ContextKeyFingerprint, fp)
		}

		c.Next()
	}
}

package models

import "time"

// AuditLogModel is an append-only record of a privileged or state-changing
// action. Entries are never updated or deleted by the application.
type AuditLogModel struct {
	ID         string         `json:"id"          bson:"_id"`
	UserID     string         `json:"user_id"     bson:"userId"`
	Action     string         `json:"action"      bson:"action"`
	Resource   string         `json:"resource"    bson:"resource"`
	ResourceID string         `json:"resource_id" bson:"resourceId"`
	Details    map[string]any `json:"details"     bson:"details"`
	IPAddress  string         `json:"ip_address"  bson:"ipAddress"`
	UserAgent  string         `json:"user_agent"  bson:"userAgent"`
	Timestamp  time.Time      `json:"timestamp"   bson:"timestamp"`
}

func (AuditLogModel) Collection() string { return "auditLogs" }

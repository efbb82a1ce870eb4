package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
)

// Caps on retrieval queries so a single request can never trigger an
// unbounded collection scan.
const (
	MaxActorRows  = 100
	MaxActionRows = 100
	MaxRecentRows = 500

	DefaultRecentHours = 24
)

// Entry is the input to Record.
type Entry struct {
	ActorID    string
	Action     string
	Resource   string
	ResourceID string
	Details    map[string]any
	IP         string
	UserAgent  string
}

// Service writes and reads the append-only audit trail.
type Service struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewService(db *mongo.Database, log *zap.Logger) *Service {
	return &Service{
		coll: db.Collection(models.AuditLogModel{}.Collection()),
		log:  log,
	}
}

// Record appends an audit entry. It is fire-and-forget: a failed write must
// never roll back or fail the mutation it documents, so errors are logged to
// the operational channel and swallowed.
func (s *Service) Record(ctx context.Context, e Entry) {
	entry := models.AuditLogModel{
		ID:         "log-" + uuid.New().String(),
		UserID:     e.ActorID,
		Action:     e.Action,
		Resource:   e.Resource,
		ResourceID: e.ResourceID,
		Details:    e.Details,
		IPAddress:  e.IP,
		UserAgent:  e.UserAgent,
		Timestamp:  time.Now(),
	}
	if entry.Details == nil {
		entry.Details = map[string]any{}
	}

	if _, err := s.coll.InsertOne(ctx, entry); err != nil {
		s.log.Warn("audit write failed",
			zap.String("action", e.Action),
			zap.String("actor", e.ActorID),
			zap.Error(err),
		)
	}
}

// ByActor returns the newest entries for one actor, capped at MaxActorRows.
func (s *Service) ByActor(ctx context.Context, actorID string, limit int) ([]models.AuditLogModel, error) {
	return s.query(ctx, bson.M{"userId": actorID}, clampLimit(limit, MaxActorRows))
}

// ByAction returns the newest entries for one action tag, capped at
// MaxActionRows.
func (s *Service) ByAction(ctx context.Context, action string, limit int) ([]models.AuditLogModel, error) {
	return s.query(ctx, bson.M{"action": action}, clampLimit(limit, MaxActionRows))
}

// Recent returns entries newer than the hours-based cutoff, capped at
// MaxRecentRows. Zero or negative hours fall back to DefaultRecentHours.
func (s *Service) Recent(ctx context.Context, hours, limit int) ([]models.AuditLogModel, error) {
	if hours <= 0 {
		hours = DefaultRecentHours
	}
	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)
	return s.query(ctx, bson.M{"timestamp": bson.M{"$gte": cutoff}}, clampLimit(limit, MaxRecentRows))
}

func (s *Service) query(ctx context.Context, filter bson.M, limit int) ([]models.AuditLogModel, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	logs := []models.AuditLogModel{}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// clampLimit bounds a requested row count to (0, max].
func clampLimit(requested, max int) int {
	if requested <= 0 || requested > max {
		return max
	}
	return requested
}

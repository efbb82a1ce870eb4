package comment

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/content/vote"
)

const defaultListLimit = 50

// Service is the comment data-access layer.
type Service struct {
	db    *mongo.Database
	votes *vote.Engine
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		db: db,
		votes: vote.NewEngine(db,
			models.CommentModel{}.Collection(),
			models.CollCommentLikes,
			models.CollCommentDislikes),
	}
}

func (s *Service) comments() *mongo.Collection {
	return s.db.Collection(models.CommentModel{}.Collection())
}

// Create stores a comment. Anonymous comments keep the real author uid (it
// still drives ownership checks) but display the chosen anonName and hide the
// avatar.
func (s *Service) Create(ctx context.Context, dto *CreateCommentDTO, author models.CommentAuthor) (*models.CommentModel, error) {
	cm := models.CommentModel{
		Base:      models.NewBase(),
		Content:   dto.Content,
		Author:    author,
		ArticleID: dto.ArticleID,
		ProjectID: dto.ProjectID,
	}
	_, err := s.comments().InsertOne(ctx, cm)
	return &cm, err
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.CommentModel, error) {
	var cm models.CommentModel
	err := s.comments().FindOne(ctx, bson.M{"_id": id}).Decode(&cm)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

// ByArticle returns an article's comments newest first.
func (s *Service) ByArticle(ctx context.Context, articleID string, limit int) ([]models.CommentModel, error) {
	return s.find(ctx, bson.M{"articleId": articleID}, limit)
}

// ByProject returns a project's comments newest first.
func (s *Service) ByProject(ctx context.Context, projectID string, limit int) ([]models.CommentModel, error) {
	return s.find(ctx, bson.M{"projectId": projectID}, limit)
}

// Reported returns flagged comments for the moderation queue.
func (s *Service) Reported(ctx context.Context, limit int) ([]models.CommentModel, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.find(ctx, bson.M{"isReported": true}, limit)
}

func (s *Service) find(ctx context.Context, filter bson.M, limit int) ([]models.CommentModel, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.comments().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	comments := []models.CommentModel{}
	return comments, cur.All(ctx, &comments)
}

func (s *Service) Update(ctx context.Context, id, content string) (*models.CommentModel, error) {
	res, err := s.comments().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now()}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, errCommentNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes the comment and its vote markers.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.comments().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	return s.votes.ClearResource(ctx, id)
}

// Report flags the comment and appends a report document.
func (s *Service) Report(ctx context.Context, cm *models.CommentModel, reporterID string) error {
	if _, err := s.comments().UpdateOne(ctx, bson.M{"_id": cm.ID},
		bson.M{"$set": bson.M{"isReported": true}}); err != nil {
		return err
	}

	report := models.ReportModel{
		Base:       models.NewBase(),
		CommentID:  cm.ID,
		ArticleID:  cm.ArticleID,
		ProjectID:  cm.ProjectID,
		Reason:     "User reported",
		ReporterID: reporterID,
	}
	_, err := s.db.Collection(models.ReportModel{}.Collection()).InsertOne(ctx, report)
	return err
}

// ToggleLike casts or retracts a like for userID.
func (s *Service) ToggleLike(ctx context.Context, commentID, userID string) error {
	return s.votes.Toggle(ctx, vote.Like, commentID, userID)
}

// ToggleDislike casts or retracts a dislike for userID.
func (s *Service) ToggleDislike(ctx context.Context, commentID, userID string) error {
	return s.votes.Toggle(ctx, vote.Dislike, commentID, userID)
}

package project

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/content/vote"
)

const defaultListLimit = 20

// Service is the forum project data-access layer.
type Service struct {
	db    *mongo.Database
	votes *vote.Engine
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		db: db,
		votes: vote.NewEngine(db,
			models.ProjectModel{}.Collection(),
			models.CollProjectLikes,
			models.CollProjectDislikes),
	}
}

func (s *Service) projects() *mongo.Collection {
	return s.db.Collection(models.ProjectModel{}.Collection())
}

func (s *Service) Create(ctx context.Context, dto *CreateProjectDTO, author models.AuthorRef) (*models.ProjectModel, error) {
	p := models.ProjectModel{
		Base:        models.NewBase(),
		Title:       dto.Title,
		Description: dto.Description,
		Author:      author,
		Tags:        orEmpty(dto.Tags),
		Images:      orEmpty(dto.Images),
		Links:       dto.Links,
	}
	if p.Links == nil {
		p.Links = []models.Link{}
	}
	_, err := s.projects().InsertOne(ctx, p)
	return &p, err
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	err := s.projects().FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns projects in the requested order: recent (default), popular
// (most liked) or trending (popular-flagged, newest first).
func (s *Service) List(ctx context.Context, sortBy string, limit, offset int) ([]models.ProjectModel, error) {
	filter := bson.M{}
	sort := bson.D{{Key: "createdAt", Value: -1}}

	switch sortBy {
	case SortPopular:
		sort = bson.D{{Key: "likes", Value: -1}}
	case SortTrending:
		filter["isPopular"] = true
	}

	return s.find(ctx, filter, sort, limit, offset)
}

// Popular returns the popular-flagged projects by like count.
func (s *Service) Popular(ctx context.Context, limit int) ([]models.ProjectModel, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.find(ctx, bson.M{"isPopular": true}, bson.D{{Key: "likes", Value: -1}}, limit, 0)
}

// Search finds projects by title prefix.
func (s *Service) Search(ctx context.Context, prefix string, limit int) ([]models.ProjectModel, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}}
	return s.find(ctx, filter, bson.D{{Key: "createdAt", Value: -1}}, limit, 0)
}

func (s *Service) find(ctx context.Context, filter bson.M, sort bson.D, limit, offset int) ([]models.ProjectModel, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	opts := options.Find().
		SetSort(sort).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := s.projects().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []models.ProjectModel{}
	return projects, cur.All(ctx, &projects)
}

func (s *Service) Update(ctx context.Context, id string, fields bson.M) (*models.ProjectModel, error) {
	fields["updatedAt"] = time.Now()
	res, err := s.projects().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, errProjectNotFound
	}
	return s.GetByID(ctx, id)
}

// IncrementViews bumps the view counter atomically.
func (s *Service) IncrementViews(ctx context.Context, id string) error {
	_, err := s.projects().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

// MarkPopular flags a project for the trending feed.
func (s *Service) MarkPopular(ctx context.Context, id string) error {
	_, err := s.projects().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"isPopular": true, "updatedAt": time.Now()}})
	return err
}

// ToggleLike casts or retracts a like for userID.
func (s *Service) ToggleLike(ctx context.Context, projectID, userID string) error {
	return s.votes.Toggle(ctx, vote.Like, projectID, userID)
}

// ToggleDislike casts or retracts a dislike for userID.
func (s *Service) ToggleDislike(ctx context.Context, projectID, userID string) error {
	return s.votes.Toggle(ctx, vote.Dislike, projectID, userID)
}

// Delete removes the project, its comments and its vote markers.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.projects().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	if _, err := s.db.Collection(models.CommentModel{}.Collection()).
		DeleteMany(ctx, bson.M{"projectId": id}); err != nil {
		return err
	}
	return s.votes.ClearResource(ctx, id)
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

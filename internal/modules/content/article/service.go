package article

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
)

const defaultListLimit = 20

// Service is the article data-access layer.
type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service { return &Service{db: db} }

func (s *Service) articles() *mongo.Collection {
	return s.db.Collection(models.ArticleModel{}.Collection())
}

func (s *Service) Create(ctx context.Context, dto *CreateArticleDTO, author models.AuthorRef) (*models.ArticleModel, error) {
	excerpt := dto.Excerpt
	if excerpt == "" {
		excerpt = DefaultExcerpt(dto.Content)
	}
	seoTitle := dto.SEOTitle
	if seoTitle == "" {
		seoTitle = dto.Title
	}
	seoDesc := dto.SEODescription
	if seoDesc == "" {
		seoDesc = excerpt
	}

	a := models.ArticleModel{
		Base:           models.NewBase(),
		Title:          dto.Title,
		Slug:           Slugify(dto.Title),
		Content:        dto.Content,
		Excerpt:        excerpt,
		Author:         author,
		FeaturedImage:  dto.FeaturedImage,
		Status:         models.ArticleDraft,
		Tags:           orEmpty(dto.Tags),
		SEOTitle:       seoTitle,
		SEODescription: seoDesc,
	}
	if _, err := s.articles().InsertOne(ctx, a); err != nil {
		// Slugs are derived from titles, so two titles that slugify the same
		// hit the unique slug index.
		if mongo.IsDuplicateKeyError(err) {
			return nil, errSlugTaken
		}
		return nil, err
	}
	return &a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.ArticleModel, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.ArticleModel, error) {
	return s.findOne(ctx, bson.M{"slug": slug})
}

func (s *Service) findOne(ctx context.Context, filter bson.M) (*models.ArticleModel, error) {
	var a models.ArticleModel
	err := s.articles().FindOne(ctx, filter).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListPublished returns published articles newest first.
func (s *Service) ListPublished(ctx context.Context, limit, offset int) ([]models.ArticleModel, error) {
	return s.find(ctx, bson.M{"status": models.ArticlePublished}, limit, offset)
}

// ByTag returns published articles carrying the tag.
func (s *Service) ByTag(ctx context.Context, tag string, limit int) ([]models.ArticleModel, error) {
	return s.find(ctx, bson.M{"status": models.ArticlePublished, "tags": tag}, limit, 0)
}

// Search finds published articles by title prefix.
func (s *Service) Search(ctx context.Context, prefix string, limit int) ([]models.ArticleModel, error) {
	filter := bson.M{
		"status": models.ArticlePublished,
		"title":  primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)},
	}
	return s.find(ctx, filter, limit, 0)
}

func (s *Service) find(ctx context.Context, filter bson.M, limit, offset int) ([]models.ArticleModel, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := s.articles().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	articles := []models.ArticleModel{}
	return articles, cur.All(ctx, &articles)
}

func (s *Service) Update(ctx context.Context, id string, fields bson.M) (*models.ArticleModel, error) {
	fields["updatedAt"] = time.Now()
	res, err := s.articles().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, errArticleNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *Service) SetStatus(ctx context.Context, id string, status models.ArticleStatus) error {
	res, err := s.articles().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errArticleNotFound
	}
	return nil
}

// IncrementViews bumps the view counter atomically; concurrent readers never
// lose an increment.
func (s *Service) IncrementViews(ctx context.Context, id string) error {
	_, err := s.articles().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

// Delete removes the article and its comments.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.articles().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	_, err := s.db.Collection(models.CommentModel{}.Collection()).
		DeleteMany(ctx, bson.M{"articleId": id})
	return err
}

func orEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

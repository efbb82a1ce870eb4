package user

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
)

// ErrEmailTaken is returned when registration hits the unique email index.
var ErrEmailTaken = errors.New("user already exists")

const defaultListLimit = 50

// Service is the user data-access layer over the document store.
type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service { return &Service{db: db} }

func (s *Service) users() *mongo.Collection {
	return s.db.Collection(models.UserModel{}.Collection())
}

// LoadUser satisfies middleware.UserLoader. Returns (nil, nil) when the id
// does not resolve.
func (s *Service) LoadUser(ctx context.Context, id string) (*models.UserModel, error) {
	return s.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.UserModel, error) {
	var u models.UserModel
	err := s.users().FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*models.UserModel, error) {
	var u models.UserModel
	err := s.users().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create registers a new account with a bcrypt-hashed password. The avatar
// default matches the original site's dicebear seeds.
func (s *Service) Create(ctx context.Context, email, password, name string, role models.Role) (*models.UserModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.UserModel{
		Base:     models.NewBase(),
		Email:    email,
		Name:     name,
		Password: string(hash),
		Role:     role,
		IsFrozen: false,
	}
	u.Avatar = "https://api.dicebear.com/7.x/avataaars/svg?seed=" + u.ID

	if _, err := s.users().InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &u, nil
}

// Update applies profile field changes and bumps updatedAt.
func (s *Service) Update(ctx context.Context, id string, fields bson.M) (*models.UserModel, error) {
	fields["updatedAt"] = time.Now()
	if _, err := s.users().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// SetPassword stores a new bcrypt hash.
func (s *Service) SetPassword(ctx context.Context, id, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.users().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": string(hash), "updatedAt": time.Now()}})
	return err
}

// TouchLastLogin records a successful login.
func (s *Service) TouchLastLogin(ctx context.Context, id string) error {
	_, err := s.users().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastLogin": time.Now()}})
	return err
}

// SetFrozen flips the frozen flag. Unfreezing an already-unfrozen account is a
// no-op, not an error.
func (s *Service) SetFrozen(ctx context.Context, id string, frozen bool) error {
	_, err := s.users().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"isFrozen": frozen, "updatedAt": time.Now()}})
	return err
}

// ChangeRole updates the access tier.
func (s *Service) ChangeRole(ctx context.Context, id string, role models.Role) error {
	_, err := s.users().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}})
	return err
}

// List returns users newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]models.UserModel, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := s.users().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.UserModel{}
	return users, cur.All(ctx, &users)
}

// Search finds users by email prefix.
func (s *Service) Search(ctx context.Context, prefix string, limit int) ([]models.UserModel, error) {
	if limit <= 0 {
		limit = 20
	}
	filter := bson.M{"email": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}}
	cur, err := s.users().Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.UserModel{}
	return users, cur.All(ctx, &users)
}

// Delete removes the account and cascades over everything it authored.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.users().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	if _, err := s.db.Collection(models.ProjectModel{}.Collection()).
		DeleteMany(ctx, bson.M{"author.uid": id}); err != nil {
		return err
	}
	_, err := s.db.Collection(models.CommentModel{}.Collection()).
		DeleteMany(ctx, bson.M{"author.uid": id})
	return err
}

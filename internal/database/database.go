package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/config"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
)

// Connect opens a MongoDB connection, verifies it and ensures indexes.
func Connect(cfg *config.AppConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.MongoDB)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return db, nil
}

// Disconnect closes the underlying client.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}
	return db.Client().Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		models.UserModel{}.Collection(): {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		models.ArticleModel{}.Collection(): {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "tags", Value: 1}}},
		},
		models.ProjectModel{}.Collection(): {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "author.uid", Value: 1}}},
		},
		models.CommentModel{}.Collection(): {
			{Keys: bson.D{{Key: "articleId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "projectId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "isReported", Value: 1}}},
		},
		models.AuditLogModel{}.Collection(): {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "action", Value: 1}, {Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		},
	}

	for coll, ims := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, ims); err != nil {
			return fmt.Errorf("collection %s: %w", coll, err)
		}
	}
	return nil
}

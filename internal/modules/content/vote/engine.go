package vote

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
)

// Engine executes toggle plans against one resource collection and its two
// marker collections.
type Engine struct {
	resource *mongo.Collection
	likes    *mongo.Collection
	dislikes *mongo.Collection
}

func NewEngine(db *mongo.Database, resourceColl, likesColl, dislikesColl string) *Engine {
	return &Engine{
		resource: db.Collection(resourceColl),
		likes:    db.Collection(likesColl),
		dislikes: db.Collection(dislikesColl),
	}
}

// Toggle casts or retracts a vote. After two identical calls by the same user
// the counters and markers are back where they started; casting the opposite
// kind first retracts the existing vote.
func (e *Engine) Toggle(ctx context.Context, kind Kind, resourceID, userID string) error {
	markerID := models.MarkerID(resourceID, userID)

	hasLike, err := e.exists(ctx, e.likes, markerID)
	if err != nil {
		return err
	}
	hasDislike, err := e.exists(ctx, e.dislikes, markerID)
	if err != nil {
		return err
	}

	plan := Decide(kind, hasLike, hasDislike)

	same, opposite := e.likes, e.dislikes
	sameField, oppositeField := "likes", "dislikes"
	if kind == Dislike {
		same, opposite = e.dislikes, e.likes
		sameField, oppositeField = "dislikes", "likes"
	}

	if plan.RemoveSame {
		return e.remove(ctx, same, sameField, markerID, resourceID)
	}
	if plan.RemoveOpposite {
		if err := e.remove(ctx, opposite, oppositeField, markerID, resourceID); err != nil {
			return err
		}
	}
	if plan.Add {
		return e.add(ctx, same, sameField, markerID, resourceID, userID)
	}
	return nil
}

// remove deletes the marker and decrements the counter only when the marker
// was actually there, flooring at zero.
func (e *Engine) remove(ctx context.Context, markers *mongo.Collection, field, markerID, resourceID string) error {
	res, err := markers.DeleteOne(ctx, bson.M{"_id": markerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return nil
	}
	_, err = e.resource.UpdateOne(ctx,
		bson.M{"_id": resourceID, field: bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{field: -1}})
	return err
}

// add inserts the marker and increments the counter only when the insert won;
// a duplicate-key loss means another request already cast this vote.
func (e *Engine) add(ctx context.Context, markers *mongo.Collection, field, markerID, resourceID, userID string) error {
	marker := models.MarkerModel{
		ID:         markerID,
		ResourceID: resourceID,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}
	if _, err := markers.InsertOne(ctx, marker); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return err
	}
	_, err := e.resource.UpdateOne(ctx, bson.M{"_id": resourceID}, bson.M{"$inc": bson.M{field: 1}})
	return err
}

func (e *Engine) exists(ctx context.Context, coll *mongo.Collection, id string) (bool, error) {
	n, err := coll.CountDocuments(ctx, bson.M{"_id": id})
	return n > 0, err
}

// ClearResource removes every marker for a resource, used by cascade deletes.
func (e *Engine) ClearResource(ctx context.Context, resourceID string) error {
	if _, err := e.likes.DeleteMany(ctx, bson.M{"resourceId": resourceID}); err != nil {
		return err
	}
	_, err := e.dislikes.DeleteMany(ctx, bson.M{"resourceId": resourceID})
	return err
}

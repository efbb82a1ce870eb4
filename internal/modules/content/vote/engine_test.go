package vote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func startedCommands(mt *mtest.T) []string {
	var names []string
	for _, ev := range mt.GetAllStartedEvents() {
		names = append(names, ev.CommandName)
	}
	return names
}

// A decrement only happens when the marker delete actually removed a
// document; losing the delete race must not touch the counter.
func TestEngineRemoveConditionsDecrementOnDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("marker absent", func(mt *mtest.T) {
		e := NewEngine(mt.DB, "projects", "likes", "dislikes")
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := e.remove(context.Background(), e.likes, "likes", "p1-u1", "p1")
		require.NoError(mt, err)
		require.Equal(mt, []string{"delete"}, startedCommands(mt))
	})

	mt.Run("marker removed", func(mt *mtest.T) {
		e := NewEngine(mt.DB, "projects", "likes", "dislikes")
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		err := e.remove(context.Background(), e.likes, "likes", "p1-u1", "p1")
		require.NoError(mt, err)
		require.Equal(mt, []string{"delete", "update"}, startedCommands(mt))
	})
}

// An increment only happens when the marker insert won; a duplicate-key loss
// means another request already cast this vote and the counter stays put.
func TestEngineAddConditionsIncrementOnInsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate insert tolerated", func(mt *mtest.T) {
		e := NewEngine(mt.DB, "projects", "likes", "dislikes")
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key",
		}))

		err := e.add(context.Background(), e.likes, "likes", "p1-u1", "p1", "u1")
		require.NoError(mt, err)
		require.Equal(mt, []string{"insert"}, startedCommands(mt))
	})

	mt.Run("insert wins", func(mt *mtest.T) {
		e := NewEngine(mt.DB, "projects", "likes", "dislikes")
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		err := e.add(context.Background(), e.likes, "likes", "p1-u1", "p1", "u1")
		require.NoError(mt, err)
		require.Equal(mt, []string{"insert", "update"}, startedCommands(mt))
	})
}

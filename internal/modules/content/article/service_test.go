package article

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
)

// Two titles that slugify identically collide on the unique slug index; the
// duplicate-key error must surface as the slug sentinel, not a raw driver
// error.
func TestCreateDuplicateSlug(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate slug", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: kode.articles index: slug_1",
		}))

		svc := NewService(mt.DB)
		_, err := svc.Create(context.Background(), &CreateArticleDTO{
			Title:   "Hello World",
			Content: "body",
		}, models.AuthorRef{UID: "u1", Name: "Author"})

		require.ErrorIs(mt, err, errSlugTaken)
	})

	mt.Run("insert ok", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		svc := NewService(mt.DB)
		a, err := svc.Create(context.Background(), &CreateArticleDTO{
			Title:   "Hello World",
			Content: "body",
		}, models.AuthorRef{UID: "u1", Name: "Author"})

		require.NoError(mt, err)
		require.Equal(mt, "hello-world", a.Slug)
		require.Equal(mt, models.ArticleDraft, a.Status)
	})
}

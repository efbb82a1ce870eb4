package comment

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/middleware"
	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
)

func createRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{}
	r := gin.New()
	r.POST("/comments", func(c *gin.Context) {
		c.Set(middleware.ContextKeyIdentity, &middleware.Identity{
			ID: "u1", Name: "Test", Role: models.RoleUser,
		})
	}, h.create)
	return r
}

func postComment(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/comments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	createRouter().ServeHTTP(w, req)
	return w
}

func TestCreateRequiresContent(t *testing.T) {
	w := postComment(`{"articleId":"a1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Content is required")
}

// A comment must target exactly one parent: neither or both is rejected.
func TestCreateRequiresExactlyOneParent(t *testing.T) {
	w := postComment(`{"content":"hi"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Either articleId or projectId is required")

	w = postComment(`{"content":"hi","articleId":"a1","projectId":"p1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Either articleId or projectId is required")
}

package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func internalErrorContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/boom", nil)
	return c, w
}

// A 500 must always leave a server-side trace, with the cause suppressed from
// the production response body.
func TestInternalErrorLogsAndSuppressesInProduction(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	c, w := internalErrorContext()
	InternalError(c, errors.New("db exploded"), false)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Internal server error")
	require.NotContains(t, w.Body.String(), "db exploded")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0].ContextMap()
	require.Equal(t, "db exploded", entry["error"])
	require.Equal(t, "/boom", entry["path"])
}

func TestInternalErrorExposesCauseInDevelopment(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	c, w := internalErrorContext()
	InternalError(c, errors.New("db exploded"), true)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "db exploded")
	require.Equal(t, 1, logs.Len())
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Validation rejections happen before any store access, so a zero handler is
// enough to exercise them.
func registerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{}
	r := gin.New()
	r.POST("/register", h.register)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterInvalidBody(t *testing.T) {
	w := postJSON(registerRouter(), "/register", "{not json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid request body")
}

func TestRegisterMissingFields(t *testing.T) {
	w := postJSON(registerRouter(), "/register",
		`{"email":"a@example.com","password":"longenough1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Missing required fields")
}

func TestRegisterPasswordMismatch(t *testing.T) {
	w := postJSON(registerRouter(), "/register",
		`{"email":"a@example.com","password":"longenough1","confirmPassword":"different1","name":"A"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Passwords do not match")
}

func TestRegisterPasswordTooShort(t *testing.T) {
	w := postJSON(registerRouter(), "/register",
		`{"email":"a@example.com","password":"short","confirmPassword":"short","name":"A"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Password must be at least 8 characters")
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger wires the server logger used to report internal failures (call on
// startup). Before it is set, 500s respond but log nowhere.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Error messages shared between handlers and middleware so tests can assert
// exact wire output.
const (
	MsgPermissionDenied = "Permission denied"
	MsgNotAuthenticated = "Not authenticated"
	MsgAccountBanned    = "Account is banned"
	MsgAccountFrozen    = "Account is frozen"
	MsgInvalidAdminIP   = "Access denied. Invalid IP address."
)

// OK sends a 200 response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// List sends a 200 response with the collection under key and its count.
func List(c *gin.Context, key string, items interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{key: items, "count": count})
}

// BadRequest sends a 400 validation error.
func BadRequest(c *gin.Context, message string) {
	abort(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error.
func Unauthorized(c *gin.Context, message string) {
	abort(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error.
func Forbidden(c *gin.Context, message string) {
	abort(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error.
func NotFound(c *gin.Context, message string) {
	abort(c, http.StatusNotFound, message)
}

// Conflict sends a 409 error.
func Conflict(c *gin.Context, message string) {
	abort(c, http.StatusConflict, message)
}

// InternalError sends a 500 error. The cause is always logged server-side;
// the response body carries it only in development, production clients get a
// generic message.
func InternalError(c *gin.Context, err error, dev bool) {
	logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)

	msg := "Internal server error"
	if dev && err != nil {
		msg = err.Error()
	}
	abort(c, http.StatusInternalServerError, msg)
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorKind is the closed set of failure categories handlers deal in.
// Clients only ever see {"error": message}; the kind picks the HTTP status.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindUnauthorized
	KindNotFound
	KindConflict
	KindUnavailable
)

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func UnauthorizedError() *AppError {
	return &AppError{Kind: KindUnauthorized, Message: "Unauthorized"}
}

func NotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func ConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func statusFor(kind ErrorKind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the {"error": message} body for any error a handler
// bubbles up. GORM's translated errors cover the duplicate-key and
// missing-row cases without string matching; anything unrecognized becomes a
// generic 500 so driver internals never reach the client.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(statusFor(appErr.Kind), gin.H{"error": appErr.Message})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		c.JSON(http.StatusConflict, gin.H{"error": "Record already exists"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
}

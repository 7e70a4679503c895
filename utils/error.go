package utils

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrNotFound marks a missing vehicle, booking, invoice or user. Wrap it with
// fmt.Errorf("...: %w", ErrNotFound) to add context.
var ErrNotFound = errors.New("not found")

// ValidationError covers missing or invalid fields, bad dates and
// non-positive amounts.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError is returned when a booking would overlap an existing one.
// The message names the conflicting window.
type ConflictError struct {
	VehicleID string
	Start     time.Time
	End       time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("vehicle is already booked from %s to %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// ErrorHandler is a middleware that catches panics and returns a structured
// error response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RespondError maps a service error to an HTTP status and the standard
// {success:false, message} envelope.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var ve *ValidationError
	var ce *ConflictError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &ve):
		status = http.StatusBadRequest
	case errors.As(err, &ce):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		GetLogger().Error("request failed", zap.Error(err))
	} else {
		GetLogger().Warn("request rejected", zap.Error(err))
	}
	c.JSON(status, gin.H{"success": false, "message": err.Error()})
}

package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidationError reports missing or malformed client input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an identifier that does not resolve.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// CapacityError reports that a date has no free slots left.
type CapacityError struct {
	Message string
}

func (e *CapacityError) Error() string {
	return e.Message
}

// StoreConnectivityError wraps failures reaching the record store.
type StoreConnectivityError struct {
	Op  string
	Err error
}

func (e *StoreConnectivityError) Error() string {
	return fmt.Sprintf("%s: record store unreachable: %v", e.Op, e.Err)
}

func (e *StoreConnectivityError) Unwrap() error {
	return e.Err
}

// StatusFor maps a service error onto the HTTP status the API answers with.
func StatusFor(err error) int {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		capacityErr   *CapacityError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &capacityErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsStoreUnavailable reports whether err came from an unreachable store.
func IsStoreUnavailable(err error) bool {
	var connErr *StoreConnectivityError
	return errors.As(err, &connErr)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler recovers panics and answers with a generic 500.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// RespondWithError writes err using the status taxonomy. Client errors carry
// their own message; anything mapped to 500 is replaced by fallback so store
// internals never reach the client.
func RespondWithError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback,
			zap.Error(err),
			zap.Bool("storeUnavailable", IsStoreUnavailable(err)),
		)
		JSONError(c, status, fallback)
		return
	}
	logger.Warn(err.Error(), zap.Int("status", status))
	JSONError(c, status, err.Error())
}

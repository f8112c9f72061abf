package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	TraceID string `json:"traceId,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, code int, data interface{}) {
	if data == nil {
		c.Status(code)
		return
	}
	c.JSON(code, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		TraceID: traceID(c),
	})
}

// HandleServiceError writes err to the client according to its kind.
// Storage and upstream failures are logged and reported as a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		zap.L().Error("Unknown error",
			zap.String("trace_id", traceID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   MsgInternal,
			Code:    string(KindStorage),
			TraceID: traceID(c),
		})
		return
	}

	status := StatusFor(appErr.Kind)
	if status == http.StatusInternalServerError {
		zap.L().Error("Request failed",
			zap.String("kind", string(appErr.Kind)),
			zap.String("trace_id", traceID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(appErr.Err),
		)
		c.JSON(status, ErrorResponse{
			Error:   MsgInternal,
			Code:    string(appErr.Kind),
			TraceID: traceID(c),
		})
		return
	}

	c.JSON(status, ErrorResponse{
		Error:   appErr.Message,
		Code:    string(appErr.Kind),
		Field:   appErr.Field,
		TraceID: traceID(c),
	})
}

// StatusFor maps an error kind to the HTTP status the API exposes.
// Forbidden shares 401 with Unauthenticated; the code field tells them apart.
func StatusFor(kind ErrorKind) int {
	switch kind {
	case KindUnauthenticated, KindForbidden:
		return http.StatusUnauthorized
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

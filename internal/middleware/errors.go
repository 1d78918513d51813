package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/avroutemap/internal/status"
)

// ErrorsConfig holds configuration for the error-handling middleware.
type ErrorsConfig struct {
	Logger *zap.Logger
	// LogStack controls whether a stack trace is logged for server
	// errors. Mirrors the logStackOnError configuration flag.
	LogStack bool
}

// Errors returns a middleware that maps handler errors onto the
// canonical status-code table and emits a JSON error body.
func Errors(logger *zap.Logger) gin.HandlerFunc {
	return ErrorsWithConfig(ErrorsConfig{Logger: logger, LogStack: true})
}

// ErrorsWithConfig returns an error-handling middleware with custom
// configuration. Handlers attach errors with c.Error; the last error
// wins. Contract violations from the router tree surface here as 500s,
// by the fail-fast rule they are never suppressed.
func ErrorsWithConfig(config ErrorsConfig) gin.HandlerFunc {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		code := status.ForError(err)

		fields := []zap.Field{
			zap.Error(err),
			zap.Int("status", code),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		}
		if requestID := GetRequestID(c); requestID != "" {
			fields = append(fields, zap.String("requestID", requestID))
		}

		if code >= http.StatusInternalServerError {
			if config.LogStack {
				fields = append(fields, zap.Stack("stacktrace"))
			}
			config.Logger.Error("request failed", fields...)
		} else {
			config.Logger.Warn("request failed", fields...)
		}

		c.AbortWithStatusJSON(code, gin.H{
			"error":   http.StatusText(code),
			"message": err.Error(),
		})
	}
}

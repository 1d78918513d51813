package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/avroutemap/internal/status"
)

// Router tree names used by the 404 handlers.
const (
	// TreeRoot names the top-level router tree.
	TreeRoot = "root"
	// TreeAPI names the api router tree.
	TreeAPI = "api"
)

// NotFoundConfig holds configuration for the not-found handler.
type NotFoundConfig struct {
	Logger *zap.Logger
	// Tree names the router tree the handler reports for.
	Tree string
}

// NotFound returns a 404 handler for the named router tree.
func NotFound(tree string, logger *zap.Logger) gin.HandlerFunc {
	return NotFoundWithConfig(NotFoundConfig{Logger: logger, Tree: tree})
}

// NotFoundWithConfig returns a 404 handler with custom configuration.
func NotFoundWithConfig(config NotFoundConfig) gin.HandlerFunc {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.Tree == "" {
		config.Tree = TreeRoot
	}

	return func(c *gin.Context) {
		config.Logger.Warn("route not found",
			zap.String("tree", config.Tree),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("clientIP", c.ClientIP()),
		)

		c.AbortWithStatusJSON(status.ErrorMissing, gin.H{
			"error": "Not Found",
			"tree":  config.Tree,
			"path":  c.Request.URL.Path,
		})
	}
}

// NotFoundDispatch returns a NoRoute handler that routes unmatched
// requests under apiPrefix to the api tree's 404 handler and
// everything else to the root tree's handler. gin exposes a single
// NoRoute hook, so the two trees share one dispatch point.
func NotFoundDispatch(apiPrefix string, api, root gin.HandlerFunc) gin.HandlerFunc {
	apiPrefix = "/" + strings.Trim(apiPrefix, "/")

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if apiPrefix != "/" &&
			(path == apiPrefix || strings.HasPrefix(path, apiPrefix+"/")) {
			api(c)
			return
		}
		root(c)
	}
}

package server

import (
	"github.com/gin-gonic/gin"

	"github.com/vyrodovalexey/avroutemap/internal/router"
	"github.com/vyrodovalexey/avroutemap/internal/status"
)

// RouteMapHandler returns a handler that rebuilds the endpoint map of
// the tree rooted at top on every request, so routes registered after
// server construction are reflected immediately.
func RouteMapHandler(top *router.Node) gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoints, err := router.BuildEndpointMap(top)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.JSON(status.Success(c.Request.Method), endpoints)
	}
}

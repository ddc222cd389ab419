package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/asset_management_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latencies per route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

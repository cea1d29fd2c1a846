package middleware

import (
	"strconv"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

// Metrics records request count and latency per route template.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}

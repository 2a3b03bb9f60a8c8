package middleware

import (
	"time"

	"eks-go-app/internal/logger"
	"eks-go-app/internal/otelutils"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one line per request after the handler chain has run.
// metrics may be nil.
func AccessLog(metrics *otelutils.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger.Info("request",
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", latency,
			"client_ip", c.ClientIP(),
		)

		// Unmatched requests share one route label.
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.Record(c.Request.Context(), c.Request.Method, route, status, latency)
	}
}

package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"job-recommender/internal/shared/telemetry"
)

// Logging emits a structured log per request. Handlers can add a pipeline step
// or keyword string with c.Set("step", ...) and c.Set("keywords", ...).
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
			"bytes_out":   c.Writer.Size(),
		}
		if step := c.GetString("step"); step != "" {
			fields["step"] = step
		}
		if keywords := c.GetString("keywords"); keywords != "" {
			fields["keywords"] = keywords
		}
		telemetry.Info("request.complete", fields)
	}
}

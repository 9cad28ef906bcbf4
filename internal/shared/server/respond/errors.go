package respond

import (
	"github.com/gin-gonic/gin"

	"job-recommender/internal/shared/telemetry"
)

// ErrorResponse is the body of every failed request: one message and a
// machine-readable code.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// Error logs the failure and aborts with a standardized error body.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

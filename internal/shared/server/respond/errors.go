package respond

import (
	"github.com/gin-gonic/gin"

	"pitchmaker-backend/internal/shared/telemetry"
)

// ErrorResponse is the standardized error body. Clients receive a plain
// message string plus an optional machine-readable code, e.g.
// {"error": "job_description is required", "code": "validation_error"}.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, code, message string) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes a success envelope with the given payload.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Envelope{
		Status:     "success",
		StatusCode: code,
		Message:    message,
		Data:       data,
	})
}

// Error writes a bare error envelope.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{
		Status:     "error",
		StatusCode: code,
		Message:    message,
	})
}

// ErrorWithDetail writes an error envelope with a short diagnostic string,
// used for malformed request bodies.
func ErrorWithDetail(c *gin.Context, code int, message, detail string) {
	c.JSON(code, Envelope{
		Status:     "error",
		StatusCode: code,
		Message:    message,
		Detail:     detail,
	})
}

// ValidationFailed writes the 422 field-error map for a rejected submission.
func ValidationFailed(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, Envelope{
		Status:      "error",
		StatusCode:  http.StatusUnprocessableEntity,
		Message:     message,
		FieldErrors: fields,
	})
}

// RateLimited reports a throttled request along with when the window resets.
func RateLimited(c *gin.Context, limit int, resetTime int64) {
	c.JSON(http.StatusTooManyRequests, Envelope{
		Status:     "error",
		StatusCode: http.StatusTooManyRequests,
		Message:    "Rate limit exceeded",
		Data: gin.H{
			"limit":      limit,
			"reset_time": resetTime,
		},
	})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the structured body every failed request returns. Details is
// only populated for validation failures (field -> message); other classes
// carry a generic message so internal causes never reach the caller.
type APIError struct {
	Status    int         `json:"status"`
	Error     string      `json:"error"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Error writes the error body with the given status.
func Error(c *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, APIError{
		Status:    status,
		Error:     message,
		Details:   details,
		RequestID: c.GetString("request_id"),
	})
}

// AbortError writes the error body and stops the handler chain. Used by
// middleware so no downstream handler runs after a failed gate.
func AbortError(c *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, APIError{
		Status:    status,
		Error:     message,
		Details:   details,
		RequestID: c.GetString("request_id"),
	})
}

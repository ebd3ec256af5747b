package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the uniform error payload. The message is whatever
// the handler decided is safe to show; internals never pass through here.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// SuccessResponse writes the payload as-is. Entities and token pairs are
// returned bare, without an envelope.
func SuccessResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

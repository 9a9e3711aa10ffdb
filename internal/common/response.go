package common

import "github.com/gin-gonic/gin"

// OK writes the success envelope: {"status": ..., "message": ..., "data": ...}.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// Fail writes the failure envelope: {"status": ..., "message": ..., "error": ...}.
func Fail(c *gin.Context, status int, message string, errMsg string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   errMsg,
	})
}

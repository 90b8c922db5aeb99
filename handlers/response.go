package handlers

import "github.com/gin-gonic/gin"

// respond writes the standard success envelope.
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// respondList is respond plus a count field for collection endpoints.
func respondList(c *gin.Context, status int, message string, data any, count int) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"count":   count,
		"data":    data,
	})
}

// respondError writes the standard failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

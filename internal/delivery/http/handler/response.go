package handler

import "github.com/gin-gonic/gin"

// respondError writes the {success:false, error} envelope every endpoint
// uses for validation, not-found and internal failures.
func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}

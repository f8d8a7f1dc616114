package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping answers GET /api/ so clients can tell the functional API is mounted.
func Ping() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
	})
}

// NotFound handles any unmatched route with the standard error envelope.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Route not found")
}

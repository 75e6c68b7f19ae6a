package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler is a liveness probe.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

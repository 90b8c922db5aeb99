package handlers

import (
	"net/http"

	"hotelms/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health using the background monitor's
// latest probe results.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"success":   status.Mongo && status.Redis,
		"mongo":     status.Mongo,
		"redis":     status.Redis,
		"checkedAt": status.CheckedAt,
	})
}

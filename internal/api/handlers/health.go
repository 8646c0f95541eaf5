package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/lounge-api/internal/arranger"
	"github.com/gin-gonic/gin"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"generator": gin.H{
			"keys":           len(arranger.Keys),
			"total_measures": arranger.TotalMeasures(arranger.Blueprint),
		},
	})
}

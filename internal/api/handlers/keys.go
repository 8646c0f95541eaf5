package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/lounge-api/internal/arranger"
	"github.com/gin-gonic/gin"
)

// ListKeys returns the supported keys in display order
func ListKeys(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"keys": arranger.Keys})
}

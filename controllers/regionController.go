package controllers

import (
	"net/http"

	"github.com/Rohitsengar02/CivicConnect/models"

	"github.com/gin-gonic/gin"
)

// ListStates returns the static state reference table.
func ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": models.StateNames()})
}

// ListDistricts returns the districts of the requested state.
func ListDistricts(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state query parameter is required"})
		return
	}

	districts := models.DistrictsForState(state)
	if districts == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":     state,
		"districts": districts,
	})
}

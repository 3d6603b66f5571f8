package routes

import (
	"github.com/Rohitsengar02/CivicConnect/controllers"

	"github.com/gin-gonic/gin"
)

// RegionRoutes exposes the static state/district reference table.
func RegionRoutes(r *gin.Engine) {
	regions := r.Group("/api/regions")
	{
		regions.GET("/states", controllers.ListStates)
		regions.GET("/districts", controllers.ListDistricts)
	}
}

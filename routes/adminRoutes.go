package routes

import (
	"github.com/Rohitsengar02/CivicConnect/controllers"
	"github.com/Rohitsengar02/CivicConnect/middlewares"
	"github.com/Rohitsengar02/CivicConnect/models"

	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up registration, login and the superadmin approval
// routes.
func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin")
	{
		admin.POST("/register", controllers.RegisterAdmin)
		admin.POST("/login", controllers.LoginAdmin)
		admin.POST("/logout", controllers.LogoutAdmin)
		admin.GET("/district-availability", controllers.CheckDistrictAvailability)
		admin.GET("/me", middlewares.AuthMiddleware(), controllers.GetMe)
		admin.GET("/analytics", middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin), controllers.GetIssueAnalytics)

		applications := admin.Group("/applications", middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleSuperadmin))
		{
			applications.GET("", controllers.ListApplications)
			applications.POST("/:id/decide", controllers.DecideApplication)
		}
	}
}

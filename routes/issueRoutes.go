package routes

import (
	"github.com/Rohitsengar02/CivicConnect/controllers"
	"github.com/Rohitsengar02/CivicConnect/middlewares"
	"github.com/Rohitsengar02/CivicConnect/models"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes. Submission and reading are
// public; status mutation requires an admin session.
func IssueRoutes(r *gin.Engine) {
	issue := r.Group("/api/issue")
	{
		issue.POST("/create", middlewares.ReportRateLimiter(5), controllers.CreateIssue)
		issue.GET("", controllers.GetAllIssues)
		issue.GET("/:id", controllers.GetIssue)
		issue.POST("/:id/advance", middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin), controllers.AdvanceIssueStatus)
		issue.PUT("/:id/status", middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin), controllers.SetIssueStatus)
	}
}

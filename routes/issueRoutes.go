package routes

import (
	"cityvoice-be/controllers"
	"cityvoice-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes. The submit limiter is nil
// when Redis is not configured.
func IssueRoutes(r *gin.Engine, issues *controllers.IssueController, submitLimiter gin.HandlerFunc) {
	group := r.Group("/api/issue")
	{
		create := []gin.HandlerFunc{middlewares.AuthMiddleware()}
		if submitLimiter != nil {
			create = append(create, submitLimiter)
		}
		create = append(create, issues.CreateIssue)

		group.POST("/create", create...)
		group.GET("/", issues.GetAllIssues)
		group.GET("/:id", issues.GetIssue)
		group.PUT("/:id", middlewares.AuthMiddleware(), issues.UpdateIssue)
		group.DELETE("/:id", middlewares.AuthMiddleware(), issues.DeleteIssue)
		group.PATCH("/:id/engagement", middlewares.AuthMiddleware(), issues.UpdateEngagement)
	}
}

package routes

import (
	"cityvoice-be/controllers"
	"cityvoice-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up the admin triage routes
func AdminRoutes(r *gin.Engine, admin *controllers.AdminController) {
	group := r.Group("/api/admin", middlewares.AuthMiddleware())
	{
		group.GET("/summary", admin.Summary)
		group.POST("/issues/:id/verify", admin.VerifyIssue)
		group.POST("/issues/:id/route", admin.SuggestRouting)
		group.PATCH("/issues/:id/department", admin.AssignDepartment)
		group.PATCH("/issues/:id/status", admin.UpdateStatus)
	}
}

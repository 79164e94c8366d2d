package routes

import (
	"cityvoice-be/controllers"
	"cityvoice-be/middlewares"

	"github.com/gin-gonic/gin"
)

// UserRoutes sets up the user routes
func UserRoutes(r *gin.Engine, users *controllers.UserController) {
	group := r.Group("/api/user")
	{
		group.GET("/tokens", middlewares.AuthMiddleware(), users.GetTokenBalance)
	}
}

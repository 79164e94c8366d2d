package controllers

import (
	"context"
	"net/http"
	"time"

	"cityvoice-be/stores"

	"github.com/gin-gonic/gin"
)

// UserController serves reward-token lookups.
type UserController struct {
	users stores.UserStore
}

func NewUserController(users stores.UserStore) *UserController {
	return &UserController{users: users}
}

// GetTokenBalance returns the authenticated user's reward tokens.
// Tokens are only ever credited by the verification workflow.
func (ctl *UserController) GetTokenBalance(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := ctl.users.GetByID(ctx, userID.(string))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     user.ID,
		"tokens": user.Tokens,
	})
}

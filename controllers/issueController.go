package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cityvoice-be/ai"
	"cityvoice-be/models"
	"cityvoice-be/services"
	"cityvoice-be/stores"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueController serves report submission and browsing.
type IssueController struct {
	issues   stores.IssueStore
	priority ai.PriorityEngine
}

func NewIssueController(issues stores.IssueStore, priority ai.PriorityEngine) *IssueController {
	return &IssueController{issues: issues, priority: priority}
}

// CreateIssue handles the submission of a new report. The priority
// seed comes from the scoring engine; if the engine is down the issue
// is still created with the default seed and the response says so.
func (ctl *IssueController) CreateIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Category string `json:"category" binding:"required"`
		Location string `json:"location" binding:"required,max=200"`
		Text     string `json:"text" binding:"required,min=10,max=1000"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	issue := models.Issue{
		ID:           primitive.NewObjectID().Hex(),
		UserID:       userID.(string),
		Category:     models.IssueCategory(input.Category),
		Location:     input.Location,
		Text:         input.Text,
		Status:       models.Submitted,
		Verification: models.Unreviewed,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	var warning, reasoning string
	result, err := ctl.priority.ScoreNewIssue(ctx, ai.ScoreRequest{
		IssueDescription: issue.Text,
	})
	if err != nil {
		issue.Priority = models.DefaultSeedPriority
		warning = "Priority scoring is temporarily unavailable; a default score was assigned."
	} else {
		issue.Priority = result.PriorityScore
		reasoning = result.Reasoning
	}

	if err := ctl.issues.Insert(ctx, &issue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	response := gin.H{"issue": issue}
	if reasoning != "" {
		response["reasoning"] = reasoning
	}
	if warning != "" {
		response["warning"] = warning
	}
	c.JSON(http.StatusCreated, response)
}

// GetAllIssues handles retrieving all issues with filtering and sorting
func (ctl *IssueController) GetAllIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	filter := services.ViewFilter{
		Category: c.DefaultQuery("category", "all"),
		Location: c.Query("location"),
	}

	sortKey, ok := services.ParseSortKey(c.DefaultQuery("sortBy", "priority"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort key"})
		return
	}
	order := services.SortOrder(c.DefaultQuery("order", "desc"))
	if order != services.Asc && order != services.Desc {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort order"})
		return
	}

	issues, err := ctl.issues.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	view := services.CollectView(services.ViewIssues(issues, filter, services.ViewSort{Key: sortKey, Order: order}))

	c.JSON(http.StatusOK, gin.H{
		"issues":      view,
		"totalIssues": len(view),
	})
}

// GetIssue retrieves an issue by its ID
func (ctl *IssueController) GetIssue(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issue, err := ctl.issues.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	c.JSON(http.StatusOK, issue)
}

// UpdateIssue allows the creator of an issue to update its details
func (ctl *IssueController) UpdateIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Category *string `json:"category,omitempty"`
		Location *string `json:"location,omitempty"`
		Text     *string `json:"text,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issue, err := ctl.issues.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	if issue.UserID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this issue"})
		return
	}

	if input.Category != nil {
		if !models.ValidCategory(*input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		issue.Category = models.IssueCategory(*input.Category)
	}
	if input.Location != nil {
		issue.Location = *input.Location
	}
	if input.Text != nil {
		if len(*input.Text) < 10 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text must be at least 10 characters"})
			return
		}
		issue.Text = *input.Text
	}
	issue.UpdatedAt = time.Now()

	if err := ctl.issues.Update(ctx, issue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		return
	}

	c.JSON(http.StatusOK, issue)
}

// DeleteIssue allows the creator of an issue to delete it
func (ctl *IssueController) DeleteIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issue, err := ctl.issues.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	if issue.UserID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this issue"})
		return
	}

	if err := ctl.issues.Delete(ctx, issue.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete issue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}

// UpdateEngagement ingests the aggregate engagement counts for an
// issue. Counts come from the engagement pipeline and are stored as
// given; they feed the scoring engine but never change the priority
// by themselves.
func (ctl *IssueController) UpdateEngagement(c *gin.Context) {
	var input struct {
		Likes    *int `json:"likes" binding:"required,gte=0"`
		Comments *int `json:"comments" binding:"required,gte=0"`
		Shares   *int `json:"shares" binding:"required,gte=0"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issue, err := ctl.issues.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	issue.Engagement = models.Engagement{
		Likes:    *input.Likes,
		Comments: *input.Comments,
		Shares:   *input.Shares,
	}
	issue.UpdatedAt = time.Now()

	if err := ctl.issues.Update(ctx, issue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update engagement"})
		return
	}

	c.JSON(http.StatusOK, issue)
}

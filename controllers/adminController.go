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
)

// AdminController serves the triage surface: verification, routing
// suggestions, department and status changes, summary counts.
type AdminController struct {
	issues       stores.IssueStore
	verification *services.VerificationService
	routing      ai.RoutingEngine
}

func NewAdminController(issues stores.IssueStore, verification *services.VerificationService, routing ai.RoutingEngine) *AdminController {
	return &AdminController{issues: issues, verification: verification, routing: routing}
}

// VerifyIssue applies the admin's genuine/invalid judgment. A scoring
// outage does not fail the action: the verification and any token
// credit stand, and the response carries a warning instead.
func (ctl *AdminController) VerifyIssue(c *gin.Context) {
	var input struct {
		Verified *bool `json:"verified" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	issue, reasoning, err := ctl.verification.SetVerification(ctx, c.Param("id"), *input.Verified)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"issue": issue, "reasoning": reasoning})
	case errors.Is(err, services.ErrScoringUnavailable):
		c.JSON(http.StatusOK, gin.H{
			"issue":   issue,
			"warning": "Verification saved, but the priority could not be re-scored. Adjust manually if needed.",
		})
	case errors.Is(err, stores.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update verification"})
	}
}

// SuggestRouting asks the routing engine which department should own
// the issue. Advisory only; nothing is assigned until the admin
// applies the suggestion.
func (ctl *AdminController) SuggestRouting(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
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

	suggestion, err := ctl.routing.SuggestDepartment(ctx, ai.RouteRequest{
		Description: issue.Text,
		Category:    string(issue.Category),
		Location:    issue.Location,
	})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Could not get a routing suggestion. Please assign a department manually.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"department": suggestion.Department,
		"reason":     suggestion.Reason,
	})
}

// AssignDepartment sets or clears the owning department.
func (ctl *AdminController) AssignDepartment(c *gin.Context) {
	var input struct {
		Department string `json:"department"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidDepartment(input.Department) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department"})
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

	issue.Department = models.Department(input.Department)
	issue.UpdatedAt = time.Now()

	if err := ctl.issues.Update(ctx, issue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign department"})
		return
	}

	c.JSON(http.StatusOK, issue)
}

// UpdateStatus sets the lifecycle status. Admins may set any value;
// the lifecycle is monotonic in normal operation but not enforced.
func (ctl *AdminController) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
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

	issue.Status = models.IssueStatus(input.Status)
	issue.UpdatedAt = time.Now()

	if err := ctl.issues.Update(ctx, issue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, issue)
}

// Summary returns the dashboard headline counts.
func (ctl *AdminController) Summary(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issues, err := ctl.issues.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	var resolved, unassigned int
	for _, issue := range issues {
		if issue.Status == models.Resolved {
			resolved++
		}
		if issue.Department == "" {
			unassigned++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalIssues":      len(issues),
		"resolvedIssues":   resolved,
		"pendingIssues":    len(issues) - resolved,
		"unassignedIssues": unassigned,
	})
}

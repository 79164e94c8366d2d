package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cityvoice-be/ai"
	"cityvoice-be/models"
	"cityvoice-be/services"
	"cityvoice-be/stores"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	router *gin.Engine
	issues *stores.MemoryIssueStore
	users  *stores.MemoryUserStore
}

func newAdminFixture(t *testing.T, priority ai.PriorityEngine, routing ai.RoutingEngine) *adminFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issues := stores.NewMemoryIssueStore()
	users := stores.NewMemoryUserStore()
	require.NoError(t, stores.SeedDemoData(context.Background(), issues, users))

	verification := services.NewVerificationService(issues, users, priority)
	ctl := NewAdminController(issues, verification, routing)

	router := gin.New()
	admin := router.Group("/api/admin")
	admin.GET("/summary", ctl.Summary)
	admin.POST("/issues/:id/verify", ctl.VerifyIssue)
	admin.POST("/issues/:id/route", ctl.SuggestRouting)
	admin.PATCH("/issues/:id/department", ctl.AssignDepartment)
	admin.PATCH("/issues/:id/status", ctl.UpdateStatus)

	return &adminFixture{router: router, issues: issues, users: users}
}

func (f *adminFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestVerifyIssueCreditsTokenAndRescores(t *testing.T) {
	f := newAdminFixture(t, &ai.FakePriorityEngine{}, &ai.FakeRoutingEngine{})

	w := f.do(http.MethodPost, "/api/admin/issues/IS-004/verify", gin.H{"verified": true})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Issue     models.Issue `json:"issue"`
		Reasoning string       `json:"reasoning"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.Verified, resp.Issue.Verification)
	assert.GreaterOrEqual(t, resp.Issue.Priority, 60)
	assert.NotEmpty(t, resp.Reasoning)

	user, err := f.users.GetByID(context.Background(), "vikram")
	require.NoError(t, err)
	assert.Equal(t, 1, user.Tokens)
}

func TestVerifyIssueScoringOutageStillSaves(t *testing.T) {
	f := newAdminFixture(t, &ai.FakePriorityEngine{Err: ai.ErrEngineUnavailable}, &ai.FakeRoutingEngine{})

	w := f.do(http.MethodPost, "/api/admin/issues/IS-004/verify", gin.H{"verified": true})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Issue   models.Issue `json:"issue"`
		Warning string       `json:"warning"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Warning, "could not be re-scored")

	stored, err := f.issues.GetByID(context.Background(), "IS-004")
	require.NoError(t, err)
	assert.Equal(t, models.Verified, stored.Verification)
	assert.Equal(t, 60, stored.Priority)

	user, err := f.users.GetByID(context.Background(), "vikram")
	require.NoError(t, err)
	assert.Equal(t, 1, user.Tokens)
}

func TestVerifyIssueNotFound(t *testing.T) {
	f := newAdminFixture(t, &ai.FakePriorityEngine{}, &ai.FakeRoutingEngine{})

	w := f.do(http.MethodPost, "/api/admin/issues/IS-999/verify", gin.H{"verified": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyIssueRequiresVerifiedField(t *testing.T) {
	f := newAdminFixture(t, &ai.FakePriorityEngine{}, &ai.FakeRoutingEngine{})

	w := f.do(http.MethodPost, "/api/admin/issues/IS-004/verify", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestRouting(t *testing.T) {
	f := newAdminFixture(t, &ai.FakePriorityEngine{}, &ai.FakeRoutingEngine{})

	w := f.do(http.MethodPost, "/api/admin/issues/IS-001/route", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Department string `json:"department"`
		Reason     string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Public Works", resp.Department)

	// Advisory only: the stored issue keeps its department.
	stored, err := f.issues.GetByID(context.Background(), "IS-001")
	require.NoError(t, err)
	assert.Equal(t, models.PublicWorks, stored.Department)
}

func TestSuggestRoutingEngineDown(t *testing.T) {
	f := newAdminFixture(t, &ai.FakePriorityEngine{}, &ai.FakeRoutingEngine{Err: ai.ErrEngineUnavailable})

	w := f.do(http.MethodPost, "/api/admin/issues/IS-001/route", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "assign a department manually")
}

func TestAssignDepartment(t *testing.T) {
	f := newAdminFixture(t, &ai.FakePriorityEngine{}, &ai.FakeRoutingEngine{})

	w := f.do(http.MethodPatch, "/api/admin/issues/IS-004/department", gin.H{"department": "Public Works"})
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := f.issues.GetByID(context.Background(), "IS-004")
	require.NoError(t, err)
	assert.Equal(t, models.PublicWorks, stored.Department)
}

func TestAssignDepartmentRejectsUnknown(t *testing.T) {
	f := newAdminFixture(t, &ai.FakePriorityEngine{}, &ai.FakeRoutingEngine{})

	w := f.do(http.MethodPatch, "/api/admin/issues/IS-004/department", gin.H{"department": "Department of Magic"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus(t *testing.T) {
	f := newAdminFixture(t, &ai.FakePriorityEngine{}, &ai.FakeRoutingEngine{})

	w := f.do(http.MethodPatch, "/api/admin/issues/IS-004/status", gin.H{"status": "In Progress"})
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := f.issues.GetByID(context.Background(), "IS-004")
	require.NoError(t, err)
	assert.Equal(t, models.InProgress, stored.Status)

	w = f.do(http.MethodPatch, "/api/admin/issues/IS-004/status", gin.H{"status": "Closed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummaryCounts(t *testing.T) {
	f := newAdminFixture(t, &ai.FakePriorityEngine{}, &ai.FakeRoutingEngine{})

	w := f.do(http.MethodGet, "/api/admin/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total      int `json:"totalIssues"`
		Resolved   int `json:"resolvedIssues"`
		Pending    int `json:"pendingIssues"`
		Unassigned int `json:"unassignedIssues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, 1, resp.Resolved)
	assert.Equal(t, 5, resp.Pending)
	assert.Equal(t, 2, resp.Unassigned)
}

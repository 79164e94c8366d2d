package ai

import (
	"context"
	"fmt"

	"cityvoice-be/models"
)

// FakePriorityEngine is a deterministic stand-in for the LLM engine,
// used in tests and offline mode. Scores are monotone in engagement
// and honor the rescore contract: invalid reports score 0, verified
// reports never score below the current priority.
type FakePriorityEngine struct {
	// Err, when set, is returned from every call.
	Err error
}

func (f *FakePriorityEngine) ScoreNewIssue(_ context.Context, req ScoreRequest) (ScoreResult, error) {
	if f.Err != nil {
		return ScoreResult{}, f.Err
	}
	if err := validateScoreRequest(req); err != nil {
		return ScoreResult{}, err
	}

	score := req.Likes/5 + req.Comments/2 + req.Shares
	if req.PriorityScore != nil && *req.PriorityScore > score {
		score = *req.PriorityScore
	}
	if score > models.MaxPriority {
		score = models.MaxPriority
	}
	return ScoreResult{
		PriorityScore: score,
		Reasoning:     fmt.Sprintf("Engagement of %d likes, %d comments and %d shares indicates community interest.", req.Likes, req.Comments, req.Shares),
	}, nil
}

func (f *FakePriorityEngine) RescoreOnVerification(_ context.Context, req RescoreRequest) (RescoreResult, error) {
	if f.Err != nil {
		return RescoreResult{}, f.Err
	}
	if err := validateRescoreRequest(req); err != nil {
		return RescoreResult{}, err
	}

	if !req.IsVerified {
		return RescoreResult{
			NewPriorityScore: 0,
			Reasoning:        "Report was marked invalid by an administrator; priority cleared.",
		}, nil
	}

	boost := 15 + req.Engagement.Likes/20
	score := req.CurrentPriority + boost
	if score > models.MaxPriority {
		score = models.MaxPriority
	}
	return RescoreResult{
		NewPriorityScore: score,
		Reasoning:        "Admin verification confirms the report is genuine; urgency raised accordingly.",
	}, nil
}

// FakeRoutingEngine suggests departments from a fixed category map.
type FakeRoutingEngine struct {
	Err error
}

var categoryDepartments = map[models.IssueCategory]models.Department{
	models.Pothole:        models.PublicWorks,
	models.BrokenPavement: models.PublicWorks,
	models.Waste:          models.Sanitation,
	models.Streetlight:    models.Electrical,
	models.IllegalParking: models.TrafficPolice,
	models.WaterLogging:   models.Drainage,
	models.DamagedSignage: models.PublicWorks,
}

func (f *FakeRoutingEngine) SuggestDepartment(_ context.Context, req RouteRequest) (RouteResult, error) {
	if f.Err != nil {
		return RouteResult{}, f.Err
	}
	if !models.ValidCategory(req.Category) {
		return RouteResult{}, fmt.Errorf("%w: unknown category %q", ErrInvalidEngineInput, req.Category)
	}

	dept := categoryDepartments[models.IssueCategory(req.Category)]
	return RouteResult{
		Department: dept,
		Reason:     fmt.Sprintf("Reports in the %s category are handled by %s.", req.Category, dept),
	}, nil
}

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"cityvoice-be/models"
)

// ErrInvalidEngineInput marks a malformed engine request, caught
// before any model call is made.
var ErrInvalidEngineInput = errors.New("invalid engine input")

// ScoreRequest is the input for scoring a new report.
type ScoreRequest struct {
	IssueDescription string `json:"issueDescription"`
	Likes            int    `json:"likes"`
	Shares           int    `json:"shares"`
	Comments         int    `json:"comments"`
	PriorityScore    *int   `json:"priorityScore,omitempty"`
}

// ScoreResult is the engine's priority assessment.
type ScoreResult struct {
	PriorityScore int    `json:"priorityScore"`
	Reasoning     string `json:"reasoning"`
}

// RescoreRequest is the input for re-scoring after verification.
type RescoreRequest struct {
	IssueDescription string            `json:"issueDescription"`
	Engagement       models.Engagement `json:"engagement"`
	CurrentPriority  int               `json:"currentPriority"`
	IsVerified       bool              `json:"isVerified"`
}

// RescoreResult is the engine's revised assessment.
type RescoreResult struct {
	NewPriorityScore int    `json:"newPriorityScore"`
	Reasoning        string `json:"reasoning"`
}

// PriorityEngine assigns and revises 0-100 priority scores. Both
// operations are pure request/response; no state is shared across
// calls. Either may fail with ErrEngineUnavailable, which callers
// treat as recoverable.
type PriorityEngine interface {
	ScoreNewIssue(ctx context.Context, req ScoreRequest) (ScoreResult, error)
	RescoreOnVerification(ctx context.Context, req RescoreRequest) (RescoreResult, error)
}

// LLMPriorityEngine implements PriorityEngine over a language model.
type LLMPriorityEngine struct {
	client LLMClient
}

func NewLLMPriorityEngine(client LLMClient) *LLMPriorityEngine {
	return &LLMPriorityEngine{client: client}
}

func (e *LLMPriorityEngine) ScoreNewIssue(ctx context.Context, req ScoreRequest) (result ScoreResult, err error) {
	defer func(start time.Time) { observeEngineCall("score_new_issue", start, err) }(time.Now())

	if err = validateScoreRequest(req); err != nil {
		return ScoreResult{}, err
	}

	existing := ""
	if req.PriorityScore != nil {
		existing = fmt.Sprintf("Existing Priority Score: %d\n", *req.PriorityScore)
	}
	prompt := fmt.Sprintf(PrioritizePrompt, req.IssueDescription, req.Likes, req.Shares, req.Comments, existing)

	response, err := e.client.Generate(ctx, prompt)
	if err != nil {
		return ScoreResult{}, err
	}

	var out struct {
		PriorityScore float64 `json:"priorityScore"`
		Reasoning     string  `json:"reasoning"`
	}
	if err = decodeEngineOutput(response, &out); err != nil {
		return ScoreResult{}, err
	}

	score, err := roundedScore(out.PriorityScore)
	if err != nil {
		return ScoreResult{}, err
	}
	return ScoreResult{PriorityScore: score, Reasoning: out.Reasoning}, nil
}

func (e *LLMPriorityEngine) RescoreOnVerification(ctx context.Context, req RescoreRequest) (result RescoreResult, err error) {
	defer func(start time.Time) { observeEngineCall("rescore_on_verification", start, err) }(time.Now())

	if err = validateRescoreRequest(req); err != nil {
		return RescoreResult{}, err
	}

	// An invalid report carries zero priority. The contract is
	// deterministic, so no model call is made.
	if !req.IsVerified {
		return RescoreResult{
			NewPriorityScore: 0,
			Reasoning:        "Report was marked invalid by an administrator; priority cleared.",
		}, nil
	}

	prompt := fmt.Sprintf(ReprioritizePrompt,
		req.IssueDescription, req.CurrentPriority,
		req.Engagement.Likes, req.Engagement.Comments, req.Engagement.Shares)

	response, err := e.client.Generate(ctx, prompt)
	if err != nil {
		return RescoreResult{}, err
	}

	var out struct {
		NewPriorityScore float64 `json:"newPriorityScore"`
		Reasoning        string  `json:"reasoning"`
	}
	if err = decodeEngineOutput(response, &out); err != nil {
		return RescoreResult{}, err
	}

	score, err := roundedScore(out.NewPriorityScore)
	if err != nil {
		return RescoreResult{}, err
	}
	// Verification never lowers priority.
	if score < req.CurrentPriority {
		score = req.CurrentPriority
	}
	return RescoreResult{NewPriorityScore: score, Reasoning: out.Reasoning}, nil
}

func validateScoreRequest(req ScoreRequest) error {
	if strings.TrimSpace(req.IssueDescription) == "" {
		return fmt.Errorf("%w: empty issue description", ErrInvalidEngineInput)
	}
	if req.Likes < 0 || req.Shares < 0 || req.Comments < 0 {
		return fmt.Errorf("%w: negative engagement counts", ErrInvalidEngineInput)
	}
	if req.PriorityScore != nil && (*req.PriorityScore < models.MinPriority || *req.PriorityScore > models.MaxPriority) {
		return fmt.Errorf("%w: existing score %d out of range", ErrInvalidEngineInput, *req.PriorityScore)
	}
	return nil
}

func validateRescoreRequest(req RescoreRequest) error {
	if strings.TrimSpace(req.IssueDescription) == "" {
		return fmt.Errorf("%w: empty issue description", ErrInvalidEngineInput)
	}
	if req.Engagement.Likes < 0 || req.Engagement.Comments < 0 || req.Engagement.Shares < 0 {
		return fmt.Errorf("%w: negative engagement counts", ErrInvalidEngineInput)
	}
	if req.CurrentPriority < models.MinPriority || req.CurrentPriority > models.MaxPriority {
		return fmt.Errorf("%w: current priority %d out of range", ErrInvalidEngineInput, req.CurrentPriority)
	}
	return nil
}

func decodeEngineOutput(response string, out any) error {
	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(jsonStr), out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEngineOutput, err)
	}
	return nil
}

func roundedScore(raw float64) (int, error) {
	score := int(math.Round(raw))
	if score < models.MinPriority || score > models.MaxPriority {
		return 0, fmt.Errorf("%w: score %v out of range", ErrBadEngineOutput, raw)
	}
	return score, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cityvoice-be/ai"
	"cityvoice-be/models"
	"cityvoice-be/stores"
)

// ErrScoringUnavailable reports that the priority engine could not
// re-score after a verification. The verification flag and any token
// credit are already committed when this is returned; callers must
// treat the admin action as successful and only flag the stale score.
var ErrScoringUnavailable = errors.New("priority scoring unavailable")

// VerificationService applies an admin's verify/invalidate judgment:
// it credits the reporter's token on the first verification, flips the
// verification state, and asks the priority engine for a new score.
type VerificationService struct {
	issues stores.IssueStore
	users  stores.UserStore
	engine ai.PriorityEngine
}

func NewVerificationService(issues stores.IssueStore, users stores.UserStore, engine ai.PriorityEngine) *VerificationService {
	return &VerificationService{issues: issues, users: users, engine: engine}
}

// SetVerification marks the issue as Verified or Invalid and returns
// the updated issue with the engine's reasoning.
//
// Token crediting is idempotent per issue: only the Unreviewed/Invalid
// to Verified transition pays out, marking Invalid never credits and
// never claws back. Local mutations are committed before the engine
// call and are never rolled back by a scoring failure.
func (s *VerificationService) SetVerification(ctx context.Context, issueID string, verified bool) (*models.Issue, string, error) {
	issue, err := s.issues.GetByID(ctx, issueID)
	if err != nil {
		return nil, "", err
	}

	alreadyVerified := issue.Verification == models.Verified

	if verified && !alreadyVerified {
		user, err := s.users.GetByID(ctx, issue.UserID)
		if err != nil {
			return nil, "", fmt.Errorf("reporter of issue %s: %w", issueID, err)
		}
		user.Tokens += models.TokensPerVerifiedIssue
		user.UpdatedAt = time.Now()
		if err := s.users.Update(ctx, user); err != nil {
			return nil, "", fmt.Errorf("credit token to %s: %w", user.ID, err)
		}
		slog.Info("token credited", "user", user.ID, "issue", issueID, "tokens", user.Tokens)
	}

	currentPriority := issue.Priority

	if verified {
		issue.Verification = models.Verified
	} else {
		issue.Verification = models.Invalid
	}
	issue.UpdatedAt = time.Now()
	if err := s.issues.Update(ctx, issue); err != nil {
		return nil, "", fmt.Errorf("update issue %s: %w", issueID, err)
	}

	result, err := s.engine.RescoreOnVerification(ctx, ai.RescoreRequest{
		IssueDescription: issue.Text,
		Engagement:       issue.Engagement,
		CurrentPriority:  currentPriority,
		IsVerified:       verified,
	})
	if err != nil {
		// Verification is a durable trust signal; the stale score is
		// the only casualty of a scoring outage.
		slog.Warn("re-scoring failed, priority left unchanged", "issue", issueID, "error", err)
		return issue, "", fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
	}

	issue.Priority = result.NewPriorityScore
	issue.UpdatedAt = time.Now()
	if err := s.issues.Update(ctx, issue); err != nil {
		return nil, "", fmt.Errorf("store new priority for %s: %w", issueID, err)
	}

	return issue, result.Reasoning, nil
}

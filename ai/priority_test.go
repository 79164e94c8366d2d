package ai

import (
	"context"
	"errors"
	"testing"

	"cityvoice-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned response, or fails.
type stubClient struct {
	response string
	err      error
	calls    int
}

func (s *stubClient) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestLLMScoreNewIssueParsesResponse(t *testing.T) {
	client := &stubClient{response: `{"priorityScore": 72, "reasoning": "High engagement."}`}
	engine := NewLLMPriorityEngine(client)

	result, err := engine.ScoreNewIssue(context.Background(), ScoreRequest{
		IssueDescription: "Deep pothole near the school entrance.",
		Likes:            120, Shares: 10, Comments: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 72, result.PriorityScore)
	assert.Equal(t, "High engagement.", result.Reasoning)
}

func TestLLMScoreNewIssueAcceptsFencedJSON(t *testing.T) {
	client := &stubClient{response: "```json\n{\"priorityScore\": 55.4, \"reasoning\": \"ok\"}\n```"}
	engine := NewLLMPriorityEngine(client)

	result, err := engine.ScoreNewIssue(context.Background(), ScoreRequest{
		IssueDescription: "Overflowing bins by the market.",
	})
	require.NoError(t, err)
	assert.Equal(t, 55, result.PriorityScore)
}

func TestLLMScoreNewIssueRejectsOutOfRange(t *testing.T) {
	client := &stubClient{response: `{"priorityScore": 180, "reasoning": "way too eager"}`}
	engine := NewLLMPriorityEngine(client)

	_, err := engine.ScoreNewIssue(context.Background(), ScoreRequest{
		IssueDescription: "Streetlight out on the corner.",
	})
	assert.ErrorIs(t, err, ErrBadEngineOutput)
}

func TestLLMScoreNewIssueRejectsBadInput(t *testing.T) {
	engine := NewLLMPriorityEngine(&stubClient{})

	_, err := engine.ScoreNewIssue(context.Background(), ScoreRequest{IssueDescription: "  "})
	assert.ErrorIs(t, err, ErrInvalidEngineInput)

	_, err = engine.ScoreNewIssue(context.Background(), ScoreRequest{
		IssueDescription: "Flooded underpass.",
		Likes:            -1,
	})
	assert.ErrorIs(t, err, ErrInvalidEngineInput)
}

func TestLLMRescoreInvalidIsDeterministicZero(t *testing.T) {
	// The client always fails; an invalid verdict must not reach it.
	client := &stubClient{err: errors.New("should not be called")}
	engine := NewLLMPriorityEngine(client)

	result, err := engine.RescoreOnVerification(context.Background(), RescoreRequest{
		IssueDescription: "Blocked storm drain on the main road.",
		CurrentPriority:  80,
		IsVerified:       false,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewPriorityScore)
	assert.Zero(t, client.calls)
}

func TestLLMRescoreVerifiedNeverLowersPriority(t *testing.T) {
	client := &stubClient{response: `{"newPriorityScore": 40, "reasoning": "model underestimates"}`}
	engine := NewLLMPriorityEngine(client)

	result, err := engine.RescoreOnVerification(context.Background(), RescoreRequest{
		IssueDescription: "Cracked pavement outside the clinic.",
		CurrentPriority:  60,
		IsVerified:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, result.NewPriorityScore)
}

func TestLLMRescoreSurfacesEngineOutage(t *testing.T) {
	client := &stubClient{err: ErrEngineUnavailable}
	engine := NewLLMPriorityEngine(client)

	_, err := engine.RescoreOnVerification(context.Background(), RescoreRequest{
		IssueDescription: "Cracked pavement outside the clinic.",
		CurrentPriority:  60,
		IsVerified:       true,
	})
	assert.ErrorIs(t, err, ErrEngineUnavailable)
}

func TestFakeScoreMonotoneInEngagement(t *testing.T) {
	engine := &FakePriorityEngine{}
	ctx := context.Background()

	low, err := engine.ScoreNewIssue(ctx, ScoreRequest{
		IssueDescription: "Garbage piling up behind the bus stand.",
		Likes:            10, Shares: 1, Comments: 2,
	})
	require.NoError(t, err)

	high, err := engine.ScoreNewIssue(ctx, ScoreRequest{
		IssueDescription: "Garbage piling up behind the bus stand.",
		Likes:            200, Shares: 40, Comments: 60,
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, high.PriorityScore, low.PriorityScore)
	assert.LessOrEqual(t, high.PriorityScore, models.MaxPriority)
}

func TestFakeRescoreContract(t *testing.T) {
	engine := &FakePriorityEngine{}
	ctx := context.Background()

	invalid, err := engine.RescoreOnVerification(ctx, RescoreRequest{
		IssueDescription: "Broken signage at the junction.",
		CurrentPriority:  45,
		IsVerified:       false,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, invalid.NewPriorityScore)

	verified, err := engine.RescoreOnVerification(ctx, RescoreRequest{
		IssueDescription: "Broken signage at the junction.",
		CurrentPriority:  45,
		IsVerified:       true,
		Engagement:       models.Engagement{Likes: 100},
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, verified.NewPriorityScore, 45)
	assert.LessOrEqual(t, verified.NewPriorityScore, models.MaxPriority)
}

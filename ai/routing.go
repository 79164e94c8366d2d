package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cityvoice-be/models"
)

// RouteRequest is the input for a routing suggestion.
type RouteRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
}

// RouteResult is the engine's advisory suggestion. Nothing is mutated
// until an admin explicitly applies it.
type RouteResult struct {
	Department models.Department `json:"department"`
	Reason     string            `json:"reason"`
}

// RoutingEngine suggests a department for a report.
type RoutingEngine interface {
	SuggestDepartment(ctx context.Context, req RouteRequest) (RouteResult, error)
}

// LLMRoutingEngine implements RoutingEngine over a language model.
type LLMRoutingEngine struct {
	client LLMClient
}

func NewLLMRoutingEngine(client LLMClient) *LLMRoutingEngine {
	return &LLMRoutingEngine{client: client}
}

func (e *LLMRoutingEngine) SuggestDepartment(ctx context.Context, req RouteRequest) (result RouteResult, err error) {
	defer func(start time.Time) { observeEngineCall("suggest_department", start, err) }(time.Now())

	if strings.TrimSpace(req.Description) == "" {
		return RouteResult{}, fmt.Errorf("%w: empty description", ErrInvalidEngineInput)
	}
	if !models.ValidCategory(req.Category) {
		return RouteResult{}, fmt.Errorf("%w: unknown category %q", ErrInvalidEngineInput, req.Category)
	}

	names := make([]string, len(models.Departments))
	for i, d := range models.Departments {
		names[i] = string(d)
	}
	prompt := fmt.Sprintf(RoutePrompt, strings.Join(names, ", "), req.Description, req.Category, req.Location)

	response, err := e.client.Generate(ctx, prompt)
	if err != nil {
		return RouteResult{}, err
	}

	var out struct {
		Department string `json:"department"`
		Reason     string `json:"reason"`
	}
	if err = decodeEngineOutput(response, &out); err != nil {
		return RouteResult{}, err
	}

	dept := strings.TrimSpace(out.Department)
	if dept == "" || !models.ValidDepartment(dept) {
		return RouteResult{}, fmt.Errorf("%w: unknown department %q", ErrBadEngineOutput, out.Department)
	}
	return RouteResult{Department: models.Department(dept), Reason: out.Reason}, nil
}

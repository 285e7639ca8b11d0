package ai

import (
	"context"
)

// ElaborationInput carries a deterministic draft answer plus the facts it
// was derived from. Providers may rephrase the draft but must not change
// any of the facts.
type ElaborationInput struct {
	Query   string         // The user's original question
	Draft   string         // Deterministic answer produced by the assistant
	Intent  string         // Resolved intent name
	Facts   map[string]any // Structured facts backing the draft
	Urgency string
	FitBand string
}

// AIProvider interface for different AI implementations.
// All methods return token usage information - callers can ignore it if not needed.
type AIProvider interface {
	Elaborate(ctx context.Context, input ElaborationInput) (string, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}

package ai

import (
	"context"
	"fmt"

	"github.com/Shrinivas-go/ats-backend/internal/assistant"
	"github.com/Shrinivas-go/ats-backend/internal/config"
	"github.com/Shrinivas-go/ats-backend/internal/errors"
	"github.com/Shrinivas-go/ats-backend/internal/observability"
)

// Service adapts an AIProvider to the assistant's elaboration hook. It is
// only constructed when elaboration is enabled in config; a nil *Service
// is a valid "no elaboration" value for the assistant.
type Service struct {
	Provider AIProvider // Exported for access from server package
	config   *config.AIConfig
	logger   *errors.Logger
	metrics  *observability.Metrics
}

// Ensure Service satisfies the assistant's elaboration hook
var _ assistant.Elaborator = (*Service)(nil)

// NewService creates a new AI service instance
func NewService(cfg *config.AIConfig, logger *errors.Logger) (*Service, error) {
	var provider AIProvider
	var err error

	// Debug logging for service initialization
	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"temperature", cfg.Temperature,
		"timeout", cfg.Timeout,
		"max_retries", cfg.MaxRetries)

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// WithMetrics attaches elaboration metrics to the service
func (s *Service) WithMetrics(metrics *observability.Metrics) *Service {
	s.metrics = metrics
	return s
}

// Elaborate implements assistant.Elaborator. The deterministic message and
// decision facts are handed to the provider for rewording only.
func (s *Service) Elaborate(ctx context.Context, query string, message string, decision assistant.Decision) (string, error) {
	input := ElaborationInput{
		Query:   query,
		Draft:   message,
		Intent:  string(decision.Intent),
		Facts:   decision.Data,
		Urgency: string(decision.Urgency),
		FitBand: string(decision.FitBand),
	}

	var text string
	operation := func(ctx context.Context) error {
		var err error
		text, _, err = s.Provider.Elaborate(ctx, input)
		return err
	}

	var err error
	if s.metrics != nil {
		err = s.metrics.TrackAIOperation(ctx, "elaborate", operation)
	} else {
		err = operation(ctx)
	}
	if err != nil {
		return "", err
	}

	return text, nil
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.Provider.GetModelInfo(ctx)
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Shrinivas-go/ats-backend/internal/assistant"
	"github.com/Shrinivas-go/ats-backend/internal/engine"
	"github.com/Shrinivas-go/ats-backend/internal/observability"
	"github.com/Shrinivas-go/ats-backend/internal/resume"
	"github.com/Shrinivas-go/ats-backend/internal/skills"
	"github.com/Shrinivas-go/ats-backend/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createAnalyzeHandler wraps the full resume scan with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("ats.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		// Parse request
		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.Resume) == "" {
			err := fmt.Errorf("missing resume")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.Resume) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume too large: %d chars", len(req.Resume))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume too large", fmt.Sprintf("resume exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.JobDescription) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "analyze"),
		)

		analyzer := engine.NewAnalyzer(s.ruleTables())
		parsed := resume.Parse(req.Resume)

		metrics := om.GetMetrics()
		var result types.AnalysisResult
		_ = metrics.TrackAnalysis(ctx, len(req.Resume), len(req.JobDescription), func(ctx context.Context) (string, error) {
			result = analyzer.Analyze(parsed, req.JobDescription)
			return result.Label, nil
		}, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.score", result.Score),
			attribute.String("response.label", result.Label),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createExtractHandler wraps job description skill extraction with observability
func (s *Server) createExtractHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("ats.api")
		_, span := tracer.Start(r.Context(), "api.extract")
		defer span.End()

		var req ExtractRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "extract"),
		)

		extractor := engine.NewExtractor(s.ruleTables())
		result := extractor.Extract(req.JobDescription)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.core_skills", len(result.CoreSkills)),
			attribute.Int("response.optional_skills", len(result.OptionalSkills)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createSimulateHandler wraps the what-if score simulation with observability
func (s *Server) createSimulateHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("ats.api")
		_, span := tracer.Start(r.Context(), "api.simulate")
		defer span.End()

		var req skills.SimulationInput
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if len(req.MissingCoreSkills) == 0 && len(req.MissingOptionalSkills) == 0 &&
			len(req.MatchedCoreSkills) == 0 && len(req.MatchedOptionalSkills) == 0 {
			err := fmt.Errorf("empty simulation input")
			span.RecordError(err)
			writeErrorResponse(w, "Empty simulation input", "at least one matched or missing skill list is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("operation", "simulate"),
			attribute.Int("request.missing_core", len(req.MissingCoreSkills)),
			attribute.Int("request.missing_optional", len(req.MissingOptionalSkills)),
		)

		result := skills.Simulate(req)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.improvements", len(result.Improvements)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createAskHandler wraps the assistant pipeline with observability
func (s *Server) createAskHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("ats.api")
		ctx, span := tracer.Start(ctx, "api.ask")
		defer span.End()

		var req AskRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("operation", "ask"),
			attribute.Int("request.query_length", len(req.Query)),
			attribute.Bool("request.has_analysis", req.Analysis != nil),
		)

		// A nil *ai.Service must stay a nil interface for the assistant
		var elaborator assistant.Elaborator
		if s.elaborator != nil {
			elaborator = s.elaborator
		}

		asst := engine.NewAssistant(s.ruleTables(), elaborator)
		result := asst.ProcessQuery(ctx, req.Query, req.Analysis)

		metrics := om.GetMetrics()
		metrics.RecordAssistantQuery(ctx, result.Intent, result.Success, om)

		span.SetAttributes(
			attribute.Bool("success", result.Success),
			attribute.String("response.type", result.Type),
			attribute.Bool("response.needs_llm", result.NeedsLLM),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordRateLimitHit(r.Context(), om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

package assistant

import (
	"context"
	"strings"
	"unicode"

	"github.com/Shrinivas-go/ats-backend/internal/types"
)

// Elaborator optionally expands a deterministic answer into richer prose.
// It is consulted only for intents flagged NeedsLLM and any failure falls
// back to the deterministic message.
type Elaborator interface {
	Elaborate(ctx context.Context, query string, message string, decision Decision) (string, error)
}

// Assistant runs the query pipeline: input validation, ambiguity
// short-circuit, domain validation, intent classification, context
// building, rule-based decision and template rendering. Every stage is
// deterministic; the optional elaborator is the only non-deterministic
// collaborator and it never changes the decision, only the prose.
type Assistant struct {
	classifier *Classifier
	validator  *DomainValidator
	elaborator Elaborator
}

// New returns an assistant over the default intent and domain tables.
func New() *Assistant {
	return &Assistant{
		classifier: NewClassifier(),
		validator:  NewDomainValidator(),
	}
}

// NewWith returns an assistant over custom collaborators. Nil arguments
// fall back to the defaults; a nil elaborator disables elaboration.
func NewWith(classifier *Classifier, validator *DomainValidator, elaborator Elaborator) *Assistant {
	a := New()
	if classifier != nil {
		a.classifier = classifier
	}
	if validator != nil {
		a.validator = validator
	}
	a.elaborator = elaborator
	return a
}

// ProcessQuery answers a user query about an analysis result. The result
// may be nil; intents that need one then get a MISSING_DATA response.
func (a *Assistant) ProcessQuery(ctx context.Context, query string, analysis *types.AnalysisResult) types.AssistantResponse {
	trimmed := strings.TrimSpace(query)
	if !validInput(trimmed) {
		return controlResponse(IntentInvalidInput, "invalid_input", map[string]any{}, false)
	}

	if isAmbiguous(trimmed) {
		data := map[string]any{
			"candidates": []string{string(IntentScoreExplanation), string(IntentSkillsGap)},
		}
		resp := controlResponse(IntentClarificationNeeded, "clarification_needed", data, false)
		resp.Suggestions = data["candidates"].([]string)
		return resp
	}

	if !a.validator.Validate(trimmed) {
		return controlResponse(IntentOutOfScope, "out_of_scope", map[string]any{}, false)
	}

	cls := a.classifier.Classify(trimmed)
	switch cls.Intent {
	case IntentUnknown:
		return controlResponse(IntentUnknown, "unknown", map[string]any{}, true)
	case IntentClarificationNeeded:
		names := intentNames(cls.Candidates)
		data := map[string]any{"candidates": names}
		resp := controlResponse(IntentClarificationNeeded, "clarification_needed", data, false)
		resp.Confidence = cls.Confidence
		resp.Suggestions = names
		return resp
	}

	def, ok := a.classifier.Lookup(cls.Intent)
	if !ok {
		return controlResponse(IntentUnknown, "unknown", map[string]any{}, true)
	}
	if def.RequiresAnalysis && analysis == nil {
		resp := controlResponse(cls.Intent, "missing_data", map[string]any{}, false)
		resp.Type = "MISSING_DATA"
		resp.Confidence = cls.Confidence
		return resp
	}

	built := BuildContext(cls.Intent, analysis)
	decision := Decide(cls.Intent, def, built)
	message := renderCategory(decision.Category, decision.Data)

	resp := types.AssistantResponse{
		Success:     true,
		Type:        string(cls.Intent),
		Message:     message,
		Intent:      string(cls.Intent),
		Confidence:  cls.Confidence,
		NeedsLLM:    decision.NeedsLLM,
		Suggestions: decision.Recommendations,
		Data:        decision.Data,
	}

	if decision.NeedsLLM && a.elaborator != nil {
		if elaborated, err := a.elaborator.Elaborate(ctx, trimmed, message, decision); err == nil && elaborated != "" {
			resp.Message = elaborated
		}
	}

	return resp
}

// validInput requires a non-empty query with at least one printable,
// non-space rune.
func validInput(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsGraphic(r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

func controlResponse(intent Intent, category string, data map[string]any, success bool) types.AssistantResponse {
	return types.AssistantResponse{
		Success:     success,
		Type:        string(intent),
		Message:     renderCategory(category, data),
		Intent:      string(intent),
		Suggestions: []string{},
		Data:        data,
	}
}

func renderCategory(category string, data map[string]any) string {
	tmpl, ok := responseTemplates[category]
	if !ok {
		tmpl = responseTemplates["unknown"]
	}
	return tmpl.Render(data)
}

func intentNames(intents []Intent) []string {
	out := make([]string, 0, len(intents))
	for _, in := range intents {
		out = append(out, string(in))
	}
	return out
}

package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Shrinivas-go/ats-backend/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "SkillSet", &SkillSetTextFormatter{})
	registry.RegisterFormatter("markdown", "SkillSet", &SkillSetMarkdownFormatter{})
	registry.RegisterFormatter("text", "SimulationResult", &SimulationTextFormatter{})
	registry.RegisterFormatter("markdown", "SimulationResult", &SimulationMarkdownFormatter{})
	registry.RegisterFormatter("text", "AssistantResponse", &AssistantTextFormatter{})
	registry.RegisterFormatter("markdown", "AssistantResponse", &AssistantMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult:
		return "AnalysisResult"
	case types.SkillSet:
		return "SkillSet"
	case types.SimulationResult:
		return "SimulationResult"
	case types.AssistantResponse:
		return "AssistantResponse"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS ANALYSIS ===\n")
	output.WriteString(fmt.Sprintf("Score: %d/100 (%s)\n", result.Score, result.Label))
	output.WriteString(fmt.Sprintf("Skill match: %d/100\n", result.SkillScore))
	output.WriteString(fmt.Sprintf("Resume quality: %d/100\n\n", result.QualityScore))

	output.WriteString("Matched skills:\n")
	writeList(&output, result.MatchedSkills, "  (none)\n")
	output.WriteString("\nMissing core skills:\n")
	writeList(&output, result.SkillsBreakdown.MissingCore, "  (none)\n")
	output.WriteString("\nMissing optional skills:\n")
	writeList(&output, result.SkillsBreakdown.MissingOptional, "  (none)\n")

	if len(result.Quality.Issues) > 0 {
		output.WriteString("\nQuality issues:\n")
		for _, issue := range result.Quality.Issues {
			output.WriteString(fmt.Sprintf("  [%s] %s\n", issue.Type, issue.Message))
		}
	}

	if len(result.Feedback) > 0 {
		output.WriteString("\nFeedback:\n")
		for _, line := range result.Feedback {
			output.WriteString(fmt.Sprintf("  - %s\n", line))
		}
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100 (%s)\n\n", result.Score, result.Label))
	output.WriteString(fmt.Sprintf("**Skill match:** %d/100  \n", result.SkillScore))
	output.WriteString(fmt.Sprintf("**Resume quality:** %d/100\n\n", result.QualityScore))

	if len(result.MatchedSkills) > 0 {
		output.WriteString("## Matched Skills\n")
		writeMarkdownList(&output, result.MatchedSkills)
	}
	if len(result.SkillsBreakdown.MissingCore) > 0 {
		output.WriteString("## Missing Core Skills\n")
		writeMarkdownList(&output, result.SkillsBreakdown.MissingCore)
	}
	if len(result.SkillsBreakdown.MissingOptional) > 0 {
		output.WriteString("## Missing Optional Skills\n")
		writeMarkdownList(&output, result.SkillsBreakdown.MissingOptional)
	}

	if len(result.Quality.Issues) > 0 {
		output.WriteString("## Quality Issues\n")
		for _, issue := range result.Quality.Issues {
			output.WriteString(fmt.Sprintf("- **%s**: %s\n", issue.Type, issue.Message))
		}
		output.WriteString("\n")
	}

	if len(result.Feedback) > 0 {
		output.WriteString("## Feedback\n")
		for i, line := range result.Feedback {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, line))
		}
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// SkillSetTextFormatter handles text formatting for extracted skill sets
type SkillSetTextFormatter struct{}

func (stf *SkillSetTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SkillSet)
	if !ok {
		return "", fmt.Errorf("expected SkillSet, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== EXTRACTED SKILLS ===\n")
	output.WriteString("Core skills:\n")
	writeList(&output, result.CoreSkills, "  (none)\n")
	output.WriteString("\nOptional skills:\n")
	writeList(&output, result.OptionalSkills, "  (none)\n")

	return output.String(), nil
}

func (stf *SkillSetTextFormatter) SupportedType() string {
	return "SkillSet"
}

// SkillSetMarkdownFormatter handles markdown formatting for extracted skill sets
type SkillSetMarkdownFormatter struct{}

func (smf *SkillSetMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SkillSet)
	if !ok {
		return "", fmt.Errorf("expected SkillSet, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Extracted Skills\n\n")
	output.WriteString("## Core Skills\n")
	writeMarkdownList(&output, result.CoreSkills)
	output.WriteString("## Optional Skills\n")
	writeMarkdownList(&output, result.OptionalSkills)

	return output.String(), nil
}

func (smf *SkillSetMarkdownFormatter) SupportedType() string {
	return "SkillSet"
}

// SimulationTextFormatter handles text formatting for what-if simulations
type SimulationTextFormatter struct{}

func (stf *SimulationTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SimulationResult)
	if !ok {
		return "", fmt.Errorf("expected SimulationResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== SCORE SIMULATION ===\n")
	output.WriteString(fmt.Sprintf("Current skill score: %d/100\n\n", result.CurrentScore))

	if len(result.Improvements) == 0 {
		output.WriteString("No missing skills to simulate.\n")
		return output.String(), nil
	}

	output.WriteString("Adding one skill at a time:\n")
	for _, imp := range result.Improvements {
		output.WriteString(fmt.Sprintf("  %-20s (%s)  %d -> %d  (+%d)\n",
			imp.Skill, imp.Tier, result.CurrentScore, imp.NewScore, imp.Gain))
	}

	return output.String(), nil
}

func (stf *SimulationTextFormatter) SupportedType() string {
	return "SimulationResult"
}

// SimulationMarkdownFormatter handles markdown formatting for what-if simulations
type SimulationMarkdownFormatter struct{}

func (smf *SimulationMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SimulationResult)
	if !ok {
		return "", fmt.Errorf("expected SimulationResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Score Simulation\n\n")
	output.WriteString(fmt.Sprintf("**Current skill score:** %d/100\n\n", result.CurrentScore))

	if len(result.Improvements) == 0 {
		output.WriteString("No missing skills to simulate.\n")
		return output.String(), nil
	}

	output.WriteString("| Skill | Tier | New Score | Gain |\n")
	output.WriteString("|-------|------|-----------|------|\n")
	for _, imp := range result.Improvements {
		output.WriteString(fmt.Sprintf("| %s | %s | %d | +%d |\n",
			imp.Skill, imp.Tier, imp.NewScore, imp.Gain))
	}

	return output.String(), nil
}

func (smf *SimulationMarkdownFormatter) SupportedType() string {
	return "SimulationResult"
}

// AssistantTextFormatter handles text formatting for assistant responses
type AssistantTextFormatter struct{}

func (atf *AssistantTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AssistantResponse)
	if !ok {
		return "", fmt.Errorf("expected AssistantResponse, got %T", data)
	}

	var output strings.Builder

	output.WriteString(result.Message)
	output.WriteString("\n")

	if len(result.Suggestions) > 0 {
		output.WriteString("\nSuggestions:\n")
		for _, s := range result.Suggestions {
			output.WriteString(fmt.Sprintf("  - %s\n", s))
		}
	}

	return output.String(), nil
}

func (atf *AssistantTextFormatter) SupportedType() string {
	return "AssistantResponse"
}

// AssistantMarkdownFormatter handles markdown formatting for assistant responses
type AssistantMarkdownFormatter struct{}

func (amf *AssistantMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AssistantResponse)
	if !ok {
		return "", fmt.Errorf("expected AssistantResponse, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Assistant\n\n")
	output.WriteString(result.Message)
	output.WriteString("\n")

	if len(result.Suggestions) > 0 {
		output.WriteString("\n## Suggestions\n")
		writeMarkdownList(&output, result.Suggestions)
	}

	return output.String(), nil
}

func (amf *AssistantMarkdownFormatter) SupportedType() string {
	return "AssistantResponse"
}

func writeList(output *strings.Builder, items []string, empty string) {
	if len(items) == 0 {
		output.WriteString(empty)
		return
	}
	for _, item := range items {
		output.WriteString(fmt.Sprintf("  - %s\n", item))
	}
}

func writeMarkdownList(output *strings.Builder, items []string) {
	if len(items) == 0 {
		output.WriteString("_none_\n\n")
		return
	}
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()

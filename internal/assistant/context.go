package assistant

import (
	"github.com/Shrinivas-go/ats-backend/internal/types"
)

// Context is the intent-specific, null-safe projection of an analysis
// result. Only the fields an intent needs are populated; everything else
// stays at its explicit zero. Collections are never nil so that template
// rendering stays total. Nothing in here is ever inferred: absent source
// fields project to zero values.
type Context struct {
	Intent      Intent
	HasAnalysis bool

	Score        int
	Label        string
	SkillScore   int
	QualityScore int

	MatchedSkills   []string
	MissingCore     []string
	MissingOptional []string

	Sections     map[string]int
	Issues       []types.QualityIssue
	Improvements []string
	Feedback     []string
}

// emptyContext returns a context with every collection present and empty.
func emptyContext(intent Intent) Context {
	return Context{
		Intent:          intent,
		MatchedSkills:   []string{},
		MissingCore:     []string{},
		MissingOptional: []string{},
		Sections:        map[string]int{},
		Issues:          []types.QualityIssue{},
		Improvements:    []string{},
		Feedback:        []string{},
	}
}

// BuildContext projects the analysis result into the subset an intent
// needs. A nil result yields an empty context with HasAnalysis false.
func BuildContext(intent Intent, result *types.AnalysisResult) Context {
	ctx := emptyContext(intent)
	if result == nil {
		return ctx
	}
	ctx.HasAnalysis = true

	switch intent {
	case IntentScoreExplanation:
		ctx.Score = result.Score
		ctx.Label = result.Label
		ctx.SkillScore = result.SkillScore
		ctx.QualityScore = result.QualityScore
		ctx.MatchedSkills = copyStrings(result.MatchedSkills)
		ctx.MissingCore = copyStrings(result.SkillsBreakdown.MissingCore)

	case IntentSkillsGap:
		ctx.MatchedSkills = copyStrings(result.MatchedSkills)
		ctx.MissingCore = copyStrings(result.SkillsBreakdown.MissingCore)
		ctx.MissingOptional = copyStrings(result.SkillsBreakdown.MissingOptional)

	case IntentJDMatch:
		ctx.Score = result.Score
		ctx.Label = result.Label
		ctx.SkillScore = result.SkillScore
		ctx.MatchedSkills = copyStrings(result.MatchedSkills)
		ctx.MissingCore = copyStrings(result.SkillsBreakdown.MissingCore)

	case IntentExperienceImprove:
		ctx.QualityScore = result.QualityScore
		ctx.Issues = copyIssues(result.Quality.Issues)
		ctx.Improvements = copyStrings(result.Quality.Improvements)

	case IntentKeywordSuggestion:
		ctx.MissingCore = copyStrings(result.SkillsBreakdown.MissingCore)
		ctx.MissingOptional = copyStrings(result.SkillsBreakdown.MissingOptional)
		ctx.MatchedSkills = copyStrings(result.MatchedSkills)

	case IntentFormattingFeedback:
		ctx.QualityScore = result.QualityScore
		ctx.Sections = copySections(result.Quality.Sections)
		ctx.Issues = copyIssues(result.Quality.Issues)
		ctx.Improvements = copyStrings(result.Quality.Improvements)

	case IntentResumeRewrite:
		ctx.Score = result.Score
		ctx.MissingCore = copyStrings(result.SkillsBreakdown.MissingCore)
		ctx.Improvements = copyStrings(result.Quality.Improvements)

	case IntentSectionAnalysis:
		ctx.QualityScore = result.QualityScore
		ctx.Sections = copySections(result.Quality.Sections)
		ctx.Issues = copyIssues(result.Quality.Issues)
		ctx.Improvements = copyStrings(result.Quality.Improvements)

	default:
		// control pseudo-intents carry no analysis data
	}

	return ctx
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	return append([]string{}, in...)
}

func copyIssues(in []types.QualityIssue) []types.QualityIssue {
	if len(in) == 0 {
		return []types.QualityIssue{}
	}
	return append([]types.QualityIssue{}, in...)
}

func copySections(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

package assistant

import (
	"fmt"
	"sort"

	"github.com/Shrinivas-go/ats-backend/internal/types"
)

// Urgency grades how quickly a skills gap should be addressed.
type Urgency string

const (
	UrgencyHigh   Urgency = "HIGH"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyLow    Urgency = "LOW"
)

// FitBand grades a job-description match by final score.
type FitBand string

const (
	FitStrong  FitBand = "STRONG_FIT"
	FitGood    FitBand = "GOOD_FIT"
	FitPartial FitBand = "PARTIAL_FIT"
	FitWeak    FitBand = "WEAK_FIT"
)

const (
	urgencyHighMissing = 3

	fitStrongScore  = 80
	fitGoodScore    = 60
	fitPartialScore = 40
)

// Decision is the outcome of the rule engine for one query: the template
// category to render, the deterministic facts to render it with and the
// recommendations derived from the analysis context.
type Decision struct {
	Intent          Intent
	Category        string
	Urgency         Urgency
	FitBand         FitBand
	NeedsLLM        bool
	Recommendations []string
	Data            map[string]any
}

// Decide applies the per-intent decision rules to a built context.
func Decide(intent Intent, def IntentDef, ctx Context) Decision {
	d := Decision{
		Intent:          intent,
		Category:        categoryFor(intent),
		NeedsLLM:        def.NeedsLLM,
		Recommendations: []string{},
		Data:            map[string]any{},
	}

	switch intent {
	case IntentScoreExplanation:
		d.Data["score"] = ctx.Score
		d.Data["label"] = ctx.Label
		d.Data["skillScore"] = ctx.SkillScore
		d.Data["qualityScore"] = ctx.QualityScore
		d.Data["matchedCount"] = len(ctx.MatchedSkills)
		d.Data["missingCore"] = ctx.MissingCore
		d.Data["hasMissingCore"] = len(ctx.MissingCore) > 0
		if len(ctx.MissingCore) > 0 {
			d.Recommendations = append(d.Recommendations,
				fmt.Sprintf("Add the %d missing core skills to raise the skill match component.", len(ctx.MissingCore)))
		}
		if ctx.QualityScore < ctx.SkillScore {
			d.Recommendations = append(d.Recommendations,
				"Resume quality is the weaker component; address the formatting issues first.")
		}

	case IntentSkillsGap:
		d.Urgency = skillsGapUrgency(len(ctx.MissingCore))
		d.Data["urgency"] = string(d.Urgency)
		d.Data["matchedSkills"] = ctx.MatchedSkills
		d.Data["missingCore"] = ctx.MissingCore
		d.Data["missingOptional"] = ctx.MissingOptional
		d.Data["hasMissingCore"] = len(ctx.MissingCore) > 0
		d.Data["hasMissingOptional"] = len(ctx.MissingOptional) > 0
		d.Data["noGap"] = len(ctx.MissingCore) == 0 && len(ctx.MissingOptional) == 0
		for _, s := range ctx.MissingCore {
			d.Recommendations = append(d.Recommendations,
				fmt.Sprintf("Add evidence of %s to your experience or skills section.", s))
		}

	case IntentJDMatch:
		d.FitBand = fitBandFor(ctx.Score)
		d.Data["score"] = ctx.Score
		d.Data["label"] = ctx.Label
		d.Data["fitBand"] = string(d.FitBand)
		d.Data["matchedSkills"] = ctx.MatchedSkills
		d.Data["missingCore"] = ctx.MissingCore
		d.Data["hasMissingCore"] = len(ctx.MissingCore) > 0
		if d.FitBand == FitWeak || d.FitBand == FitPartial {
			d.Recommendations = append(d.Recommendations,
				"Tailor the resume toward the role's core requirements before applying.")
		}

	case IntentExperienceImprove:
		d.Data["qualityScore"] = ctx.QualityScore
		d.Data["improvements"] = ctx.Improvements
		d.Data["hasImprovements"] = len(ctx.Improvements) > 0
		d.Recommendations = append(d.Recommendations, ctx.Improvements...)

	case IntentKeywordSuggestion:
		keywords := append(copyStrings(ctx.MissingCore), ctx.MissingOptional...)
		d.Data["keywords"] = keywords
		d.Data["hasKeywords"] = len(keywords) > 0
		d.Data["noKeywords"] = len(keywords) == 0
		d.Data["matchedSkills"] = ctx.MatchedSkills
		for _, k := range ctx.MissingCore {
			d.Recommendations = append(d.Recommendations,
				fmt.Sprintf("Work the keyword %q into a bullet that shows real usage.", k))
		}

	case IntentFormattingFeedback:
		issues := sortIssues(ctx.Issues)
		d.Data["qualityScore"] = ctx.QualityScore
		d.Data["issues"] = issueMessages(issues)
		d.Data["hasIssues"] = len(issues) > 0
		d.Data["improvements"] = ctx.Improvements
		d.Data["hasImprovements"] = len(ctx.Improvements) > 0
		for _, iss := range issues {
			d.Recommendations = append(d.Recommendations, iss.Message)
		}

	case IntentResumeRewrite:
		d.Data["score"] = ctx.Score
		d.Data["missingCore"] = ctx.MissingCore
		d.Data["hasMissingCore"] = len(ctx.MissingCore) > 0
		d.Data["improvements"] = ctx.Improvements
		d.Data["hasImprovements"] = len(ctx.Improvements) > 0
		d.Recommendations = append(d.Recommendations,
			"Rewrite bullets around measurable outcomes and the role's core skills.")

	case IntentSectionAnalysis:
		issues := sortIssues(ctx.Issues)
		d.Data["qualityScore"] = ctx.QualityScore
		d.Data["sections"] = sectionLines(ctx.Sections)
		d.Data["issues"] = issueMessages(issues)
		d.Data["hasIssues"] = len(issues) > 0
		d.Data["improvements"] = ctx.Improvements
		d.Data["hasImprovements"] = len(ctx.Improvements) > 0
		for _, iss := range issues {
			d.Recommendations = append(d.Recommendations, iss.Message)
		}
	}

	return d
}

func categoryFor(intent Intent) string {
	switch intent {
	case IntentScoreExplanation:
		return "score_explanation"
	case IntentSkillsGap:
		return "skills_gap"
	case IntentJDMatch:
		return "jd_match"
	case IntentExperienceImprove:
		return "experience_improve"
	case IntentKeywordSuggestion:
		return "keyword_suggestion"
	case IntentFormattingFeedback:
		return "formatting_feedback"
	case IntentResumeRewrite:
		return "resume_rewrite"
	case IntentSectionAnalysis:
		return "section_analysis"
	default:
		return string(intent)
	}
}

func skillsGapUrgency(missingCore int) Urgency {
	switch {
	case missingCore > urgencyHighMissing:
		return UrgencyHigh
	case missingCore >= 1:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

func fitBandFor(score int) FitBand {
	switch {
	case score >= fitStrongScore:
		return FitStrong
	case score >= fitGoodScore:
		return FitGood
	case score >= fitPartialScore:
		return FitPartial
	default:
		return FitWeak
	}
}

// sortIssues orders critical issues before warnings, preserving the
// original order within each severity.
func sortIssues(in []types.QualityIssue) []types.QualityIssue {
	out := append([]types.QualityIssue{}, in...)
	sort.SliceStable(out, func(i, j int) bool {
		return severityRank(out[i].Type) < severityRank(out[j].Type)
	})
	return out
}

func severityRank(t types.IssueType) int {
	if t == types.IssueCritical {
		return 0
	}
	return 1
}

func issueMessages(in []types.QualityIssue) []string {
	out := make([]string, 0, len(in))
	for _, iss := range in {
		out = append(out, iss.Message)
	}
	return out
}

func sectionLines(sections map[string]int) []string {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s: %d", k, sections[k]))
	}
	return out
}

// Package analysis composes the skill engines and the structural quality
// analyzer into the top-level resume scan, applying the relevance gate that
// keeps formatting quality from masking a skill mismatch.
package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/Shrinivas-go/ats-backend/internal/rules"
	"github.com/Shrinivas-go/ats-backend/internal/types"
)

// Fixed point budget for structural completeness. The raw total of 40 is
// rescaled linearly to 0-100.
const (
	pointsEmail      = 5
	pointsPhone      = 5
	pointsLinkedIn   = 5
	pointsSummary    = 5
	pointsExperience = 10
	pointsEducation  = 5
	pointsProjects   = 5
	pointsTotal      = 40
)

// weakVerbThreshold: surface a weak-verb note only when occurrences exceed it
const weakVerbThreshold = 3

// DefaultWeakVerbs are the verbs counted by the weak-language check.
var DefaultWeakVerbs = []string{
	"helped",
	"worked",
	"assisted",
	"participated",
	"involved",
	"responsible",
	"handled",
	"supported",
	"tried",
	"used",
}

// QualityAnalyzer scores resume structural completeness independent of any
// skill matching.
type QualityAnalyzer struct {
	weakVerbs []string
}

// NewQualityAnalyzer returns an analyzer with the default weak-verb list.
func NewQualityAnalyzer() *QualityAnalyzer {
	return NewQualityAnalyzerWithVerbs(DefaultWeakVerbs)
}

// NewQualityAnalyzerWithVerbs returns an analyzer counting a custom verb list.
func NewQualityAnalyzerWithVerbs(weakVerbs []string) *QualityAnalyzer {
	return &QualityAnalyzer{weakVerbs: weakVerbs}
}

// Analyze scores contact info and section presence against the fixed point
// budget and surfaces structural issues. Missing email or experience are
// critical; missing phone or education are warnings.
func (q *QualityAnalyzer) Analyze(resume types.ParsedResume) types.QualityResult {
	result := types.QualityResult{
		Sections:     make(map[string]int),
		Issues:       []types.QualityIssue{},
		Improvements: []string{},
	}

	contact := 0
	if strings.TrimSpace(resume.PersonalInfo.Email) != "" {
		contact += pointsEmail
	} else {
		result.Issues = append(result.Issues, types.QualityIssue{
			Type:    types.IssueCritical,
			Message: "No email address found. Recruiters cannot contact you without one.",
		})
	}
	if strings.TrimSpace(resume.PersonalInfo.Phone) != "" {
		contact += pointsPhone
	} else {
		result.Issues = append(result.Issues, types.QualityIssue{
			Type:    types.IssueWarning,
			Message: "No phone number found.",
		})
	}
	if strings.TrimSpace(resume.PersonalInfo.LinkedIn) != "" {
		contact += pointsLinkedIn
	} else {
		result.Improvements = append(result.Improvements, "Add a LinkedIn profile URL to your contact block.")
	}
	result.Sections["contact"] = contact

	raw := contact

	if strings.TrimSpace(resume.Summary) != "" {
		result.Sections["summary"] = pointsSummary
		raw += pointsSummary
	} else {
		result.Sections["summary"] = 0
		result.Improvements = append(result.Improvements, "Add a short professional summary at the top.")
	}

	if strings.TrimSpace(resume.Experience) != "" {
		result.Sections["experience"] = pointsExperience
		raw += pointsExperience
	} else {
		result.Sections["experience"] = 0
		result.Issues = append(result.Issues, types.QualityIssue{
			Type:    types.IssueCritical,
			Message: "No work experience section found.",
		})
	}

	if strings.TrimSpace(resume.Education) != "" {
		result.Sections["education"] = pointsEducation
		raw += pointsEducation
	} else {
		result.Sections["education"] = 0
		result.Issues = append(result.Issues, types.QualityIssue{
			Type:    types.IssueWarning,
			Message: "No education section found.",
		})
	}

	if strings.TrimSpace(resume.Projects) != "" {
		result.Sections["projects"] = pointsProjects
		raw += pointsProjects
	} else {
		result.Sections["projects"] = 0
		result.Improvements = append(result.Improvements, "Add a projects section to showcase hands-on work.")
	}

	if note := q.weakVerbNote(resume.RawText); note != "" {
		result.Improvements = append(result.Improvements, note)
	}

	score := int(math.Floor(float64(raw)/float64(pointsTotal)*100 + 0.5))
	if score > 100 {
		score = 100
	}
	result.Score = score

	return result
}

// weakVerbNote counts whole-word weak-verb occurrences in the raw text and
// returns an improvement note when the count passes the threshold, quoting
// the count and one offending term.
func (q *QualityAnalyzer) weakVerbNote(rawText string) string {
	if rawText == "" {
		return ""
	}
	total := 0
	example := ""
	for _, verb := range q.weakVerbs {
		n := rules.CountWord(rawText, verb)
		if n > 0 && example == "" {
			example = verb
		}
		total += n
	}
	if total <= weakVerbThreshold {
		return ""
	}
	return fmt.Sprintf("Found %d weak verbs (e.g. %q). Replace them with strong action verbs like \"led\", \"built\" or \"delivered\".", total, example)
}

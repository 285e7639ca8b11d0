package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/Shrinivas-go/ats-backend/internal/skills"
	"github.com/Shrinivas-go/ats-backend/internal/types"
)

// Blend weights between the skill score and the quality score
const (
	skillBlendWeight   = 0.7
	qualityBlendWeight = 0.3
)

// The relevance gate: below this skill score, quality cannot lift the
// final score above the ceiling.
const (
	gateSkillScore = 10
	gateCeiling    = 15
)

// notRelevantSummary overrides every other summary when the gate fires.
const notRelevantSummary = "This resume does not match the job's skill requirements. " +
	"Formatting quality cannot compensate for the skill mismatch; focus on gaining or surfacing the required skills first."

// Analyzer runs the full scan: weighted extraction, comparison, scoring,
// quality analysis and the final gated blend.
type Analyzer struct {
	extractor  *skills.Extractor
	normalizer *skills.Normalizer
	quality    *QualityAnalyzer
}

// NewAnalyzer returns an analyzer over the default rule tables.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		extractor:  skills.NewExtractor(),
		normalizer: skills.NewNormalizer(),
		quality:    NewQualityAnalyzer(),
	}
}

// NewAnalyzerWith lets callers substitute individual engines. Nil fields
// fall back to the defaults.
func NewAnalyzerWith(extractor *skills.Extractor, normalizer *skills.Normalizer, quality *QualityAnalyzer) *Analyzer {
	a := NewAnalyzer()
	if extractor != nil {
		a.extractor = extractor
	}
	if normalizer != nil {
		a.normalizer = normalizer
	}
	if quality != nil {
		a.quality = quality
	}
	return a
}

// Analyze produces the complete AnalysisResult for one resume against one
// job description. The result is a pure function of its inputs.
func (a *Analyzer) Analyze(resume types.ParsedResume, jobDescription string) types.AnalysisResult {
	jdSkills := a.extractor.Extract(jobDescription)
	resumeSkills := a.normalizer.Normalize(resume.Skills)
	cmp := skills.Compare(resumeSkills, jdSkills.CoreSkills, jdSkills.OptionalSkills)
	skillResult := skills.Score(cmp)
	qualityResult := a.quality.Analyze(resume)

	blended := int(math.Floor(float64(skillResult.Score)*skillBlendWeight +
		float64(qualityResult.Score)*qualityBlendWeight + 0.5))

	final := blended
	var label, summary string
	if skillResult.Score < gateSkillScore {
		if final > gateCeiling {
			final = gateCeiling
		}
		label = "Not Relevant"
		summary = notRelevantSummary
	} else {
		label = finalLabel(final)
		summary = fmt.Sprintf("Overall match: %d/100 (%s). Skill match %d/100, resume quality %d/100. %s",
			final, label, skillResult.Score, qualityResult.Score, skillResult.Explanation)
	}

	feedback := []string{summary}
	if len(cmp.MissingCoreSkills) > 0 {
		feedback = append(feedback, fmt.Sprintf("Add these required skills if you have them: %s.",
			strings.Join(cmp.MissingCoreSkills, ", ")))
	}
	if len(cmp.MissingOptionalSkills) > 0 {
		feedback = append(feedback, fmt.Sprintf("Preferred skills worth mentioning: %s.",
			strings.Join(cmp.MissingOptionalSkills, ", ")))
	}
	feedback = append(feedback, qualityResult.Improvements...)

	matched := append([]string{}, cmp.MatchedCoreSkills...)
	matched = append(matched, cmp.MatchedOptionalSkills...)
	missing := append([]string{}, cmp.MissingCoreSkills...)

	return types.AnalysisResult{
		Score:         final,
		Label:         label,
		SkillScore:    skillResult.Score,
		QualityScore:  qualityResult.Score,
		MatchedSkills: matched,
		MissingSkills: missing,
		SkillsBreakdown: types.SkillsBreakdown{
			MatchedCore:     cmp.MatchedCoreSkills,
			MissingCore:     cmp.MissingCoreSkills,
			MatchedOptional: cmp.MatchedOptionalSkills,
			MissingOptional: cmp.MissingOptionalSkills,
		},
		Quality:  qualityResult,
		Feedback: feedback,
	}
}

// finalLabel maps the gated final score to its display band.
func finalLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Work"
	}
}

// Package assistant implements the deterministic five-stage query pipeline:
// domain validation, intent classification, context building, the decision
// engine and template rendering. Every stage is a pure function of the query
// and the supplied analysis result; no session state is kept between queries.
package assistant

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Shrinivas-go/ats-backend/internal/rules"
)

// Intent is the classified purpose of a query.
type Intent string

const (
	IntentScoreExplanation   Intent = "SCORE_EXPLANATION"
	IntentSkillsGap          Intent = "SKILLS_GAP"
	IntentJDMatch            Intent = "JD_MATCH"
	IntentExperienceImprove  Intent = "EXPERIENCE_IMPROVE"
	IntentKeywordSuggestion  Intent = "KEYWORD_SUGGESTION"
	IntentFormattingFeedback Intent = "FORMATTING_FEEDBACK"
	IntentResumeRewrite      Intent = "RESUME_REWRITE"
	IntentSectionAnalysis    Intent = "SECTION_ANALYSIS"

	// control pseudo-intents
	IntentClarificationNeeded Intent = "CLARIFICATION_NEEDED"
	IntentUnknown             Intent = "UNKNOWN"
	IntentOutOfScope          Intent = "OUT_OF_SCOPE"
	IntentInvalidInput        Intent = "INVALID_INPUT"
)

// Signal weights and the acceptance threshold for classification.
const (
	keywordWeight       = 0.15
	phraseWeight        = 0.35
	confidenceThreshold = 0.6
)

// IntentDef declares the signals for one intent. Priority is the
// declaration order; lower values win ties.
type IntentDef struct {
	Intent           Intent
	Priority         int
	BaseConfidence   float64 // cap for the computed score
	Keywords         []string
	Phrases          []*regexp.Regexp
	RequiresAnalysis bool // needs an ATS result to answer
	NeedsLLM         bool // deterministic answer is a starting point only
}

func phrases(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

// DefaultIntents is the declared intent table, in priority order.
var DefaultIntents = []IntentDef{
	{
		Intent:         IntentScoreExplanation,
		Priority:       1,
		BaseConfidence: 0.95,
		Keywords:       []string{"score", "rating", "points", "percentage", "why", "low", "high"},
		Phrases: phrases(
			`why.*\b(score|rating)\b`,
			`\b(score|rating)\b.*\b(low|high|bad|good)\b`,
			`explain.*\bscore\b`,
			`what.*\bmy score\b`,
		),
		RequiresAnalysis: true,
	},
	{
		Intent:         IntentSkillsGap,
		Priority:       2,
		BaseConfidence: 0.9,
		Keywords:       []string{"skills", "skill", "missing", "gap", "lacking", "need"},
		Phrases: phrases(
			`\b(missing|lacking)\b.*\bskills?\b`,
			`\bskills?\b.*\b(missing|gap|lack)\b`,
			`what skills`,
			`skill gap`,
		),
		RequiresAnalysis: true,
	},
	{
		Intent:         IntentJDMatch,
		Priority:       3,
		BaseConfidence: 0.9,
		Keywords:       []string{"match", "fit", "job", "role", "qualified", "suitable"},
		Phrases: phrases(
			`\b(match|fit)\b.*\b(job|jd|role|position|description)\b`,
			`\b(job|jd|role|position)\b.*\b(match|fit)\b`,
			`am i (a good fit|qualified|suitable)`,
			`how well do i match`,
		),
		RequiresAnalysis: true,
	},
	{
		Intent:         IntentExperienceImprove,
		Priority:       4,
		BaseConfidence: 0.85,
		Keywords:       []string{"experience", "improve", "better", "bullets", "achievements", "impact"},
		Phrases: phrases(
			`improve.*\bexperience\b`,
			`\bexperience\b.*\b(section|better|stronger)\b`,
			`better bullet`,
			`stronger achievements`,
		),
	},
	{
		Intent:         IntentKeywordSuggestion,
		Priority:       5,
		BaseConfidence: 0.85,
		Keywords:       []string{"keyword", "keywords", "add", "include", "terms"},
		Phrases: phrases(
			`\b(what|which)\b.*\bkeywords?\b`,
			`\bkeywords?\b.*\b(add|include|missing|use)\b`,
			`suggest.*\bkeywords?\b`,
		),
		RequiresAnalysis: true,
	},
	{
		Intent:         IntentFormattingFeedback,
		Priority:       6,
		BaseConfidence: 0.85,
		Keywords:       []string{"format", "formatting", "layout", "structure", "design", "readability"},
		Phrases: phrases(
			`\b(format|formatting|layout|structure)\b.*\b(resume|cv|feedback|issues?|look)\b`,
			`how.*\b(formatted|structured)\b`,
			`formatting feedback`,
		),
		RequiresAnalysis: true,
	},
	{
		Intent:         IntentResumeRewrite,
		Priority:       7,
		BaseConfidence: 0.8,
		Keywords:       []string{"rewrite", "rephrase", "reword", "revise", "polish"},
		Phrases: phrases(
			`\b(rewrite|rephrase|reword|revise)\b.*\b(resume|cv|section|summary|bullets?)\b`,
			`make.*sound (better|stronger)`,
		),
		NeedsLLM: true,
	},
	{
		Intent:         IntentSectionAnalysis,
		Priority:       8,
		BaseConfidence: 0.8,
		Keywords:       []string{"section", "summary", "education", "projects", "review"},
		Phrases: phrases(
			`\b(analyze|review|look at|check)\b.*\b(section|summary|education|projects)\b`,
			`\b(summary|education|projects|experience)\b section`,
		),
		RequiresAnalysis: true,
	},
}

// ambiguousQueries are bare queries that always request clarification,
// skipping scoring entirely.
var ambiguousQueries = map[string]bool{
	"help":    true,
	"fix":     true,
	"fix it":  true,
	"improve": true,
	"better":  true,
	"what":    true,
	"how":     true,
	"?":       true,
}

// isAmbiguous reports whether the query is a bare term too vague to
// score. It is checked before domain validation so that "help" asks for
// clarification rather than being rejected as off-topic.
func isAmbiguous(query string) bool {
	return ambiguousQueries[strings.TrimSpace(strings.ToLower(query))]
}

// Classification is the outcome of intent detection.
type Classification struct {
	Intent     Intent
	Confidence float64
	// Candidates carries up to two highest-scoring intents when the winner
	// is below the acceptance threshold, for the clarification prompt.
	Candidates []Intent
}

// Classifier scores a query against the intent table.
type Classifier struct {
	intents []IntentDef
}

// NewClassifier returns a classifier over the default intent table.
func NewClassifier() *Classifier {
	return NewClassifierWithIntents(DefaultIntents)
}

// NewClassifierWithIntents returns a classifier over a custom table.
func NewClassifierWithIntents(intents []IntentDef) *Classifier {
	return &Classifier{intents: intents}
}

// Lookup returns the definition for an intent, if declared.
func (c *Classifier) Lookup(intent Intent) (IntentDef, bool) {
	for _, def := range c.intents {
		if def.Intent == intent {
			return def, true
		}
	}
	return IntentDef{}, false
}

// Classify detects the intent of a query. Each matched keyword adds 0.15
// and each matched phrase pattern 0.35, capped at the intent's base
// confidence. The highest score wins; ties go to the lower priority value.
// A winner under the threshold yields CLARIFICATION_NEEDED with up to two
// candidates, or UNKNOWN when nothing scored at all.
func (c *Classifier) Classify(query string) Classification {
	if isAmbiguous(query) {
		return Classification{Intent: IntentClarificationNeeded}
	}

	var results []scoredIntent
	for _, def := range c.intents {
		score := c.scoreIntent(query, def)
		if score > 0 {
			results = append(results, scoredIntent{def: def, score: score})
		}
	}

	if len(results) == 0 {
		return Classification{Intent: IntentUnknown}
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.score > best.score {
			best = r
		}
		// equal scores keep the earlier-declared (lower priority) intent
	}

	if best.score < confidenceThreshold {
		candidates := topCandidates(results, 2)
		return Classification{
			Intent:     IntentClarificationNeeded,
			Confidence: best.score,
			Candidates: candidates,
		}
	}

	return Classification{Intent: best.def.Intent, Confidence: best.score}
}

func (c *Classifier) scoreIntent(query string, def IntentDef) float64 {
	score := 0.0
	for _, kw := range def.Keywords {
		if rules.ContainsWord(query, kw) {
			score += keywordWeight
		}
	}
	for _, phrase := range def.Phrases {
		if phrase.MatchString(query) {
			score += phraseWeight
		}
	}
	if score > def.BaseConfidence {
		score = def.BaseConfidence
	}
	return score
}

type scoredIntent struct {
	def   IntentDef
	score float64
}

// topCandidates picks the n highest-scoring intents, score first then
// declaration priority.
func topCandidates(results []scoredIntent, n int) []Intent {
	sorted := append([]scoredIntent{}, results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].score != sorted[j].score {
			return sorted[i].score > sorted[j].score
		}
		return sorted[i].def.Priority < sorted[j].def.Priority
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	candidates := make([]Intent, 0, len(sorted))
	for _, s := range sorted {
		candidates = append(candidates, s.def.Intent)
	}
	return candidates
}

package skills

import (
	"fmt"
	"math"

	"github.com/Shrinivas-go/ats-backend/internal/types"
)

// Core requirements carry 70% of the weight, optional ones 30%. When one
// tier is absent its weight shifts entirely to the other.
const (
	coreWeight     = 0.7
	optionalWeight = 0.3
)

// Qualitative band thresholds for the score explanation
const (
	bandExcellent = 80
	bandGood      = 60
	bandModerate  = 40
)

// Score computes the weighted ATS match percentage from a comparison
// result. With no requirements in either tier it returns the terminal
// zero result instead of dividing by zero. Rounding (half-up) happens
// exactly once, on the blended value.
func Score(cmp types.ComparisonResult) types.ScoreResult {
	matchedCore := len(cmp.MatchedCoreSkills)
	totalCore := matchedCore + len(cmp.MissingCoreSkills)
	matchedOptional := len(cmp.MatchedOptionalSkills)
	totalOptional := matchedOptional + len(cmp.MissingOptionalSkills)

	if totalCore == 0 && totalOptional == 0 {
		return types.ScoreResult{
			Score:       0,
			Explanation: "No skills found in the job description to score against.",
		}
	}

	score := weightedScore(matchedCore, totalCore, matchedOptional, totalOptional)

	explanation := fmt.Sprintf("Matched %d of %d core skills and %d of %d optional skills. %s match.",
		matchedCore, totalCore, matchedOptional, totalOptional, band(score))

	return types.ScoreResult{Score: score, Explanation: explanation}
}

// weightedScore blends per-tier match percentages using the 70/30 split,
// reassigning the full weight to whichever tier exists when the other is
// empty. Callers must not pass two empty tiers.
func weightedScore(matchedCore, totalCore, matchedOptional, totalOptional int) int {
	var coreScore, optionalScore float64
	if totalCore > 0 {
		coreScore = float64(matchedCore) / float64(totalCore) * 100
	}
	if totalOptional > 0 {
		optionalScore = float64(matchedOptional) / float64(totalOptional) * 100
	}

	cw, ow := coreWeight, optionalWeight
	switch {
	case totalCore == 0:
		cw, ow = 0, 1
	case totalOptional == 0:
		cw, ow = 1, 0
	}

	return roundHalfUp(coreScore*cw + optionalScore*ow)
}

// band maps a score to its qualitative label. The thresholds are part of
// the scoring contract.
func band(score int) string {
	switch {
	case score >= bandExcellent:
		return "Excellent"
	case score >= bandGood:
		return "Good"
	case score >= bandModerate:
		return "Moderate"
	case score > 0:
		return "Low"
	default:
		return "None"
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

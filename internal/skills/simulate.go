package skills

import (
	"sort"

	"github.com/Shrinivas-go/ats-backend/internal/types"
)

// SimulationInput carries the requirement sets and the comparison outcome a
// simulation runs over. The skill lists let totals be taken from the
// requirement sets even when a caller passes a partial comparison.
type SimulationInput struct {
	CoreSkills            []string `json:"coreSkills"`
	OptionalSkills        []string `json:"optionalSkills"`
	MatchedCoreSkills     []string `json:"matchedCoreSkills"`
	MissingCoreSkills     []string `json:"missingCoreSkills"`
	MatchedOptionalSkills []string `json:"matchedOptionalSkills"`
	MissingOptionalSkills []string `json:"missingOptionalSkills"`
}

// Simulate recomputes the weighted score once per missing skill, as if
// exactly that one skill were added with everything else unchanged, and
// ranks the additions by score gain. Ties prefer core-tier skills. This is
// a marginal-gain ranking, not a combinatorial search: gains of separate
// entries do not add up.
func Simulate(input SimulationInput) types.SimulationResult {
	matchedCore := len(input.MatchedCoreSkills)
	totalCore := len(input.CoreSkills)
	if totalCore == 0 {
		totalCore = matchedCore + len(input.MissingCoreSkills)
	}
	matchedOptional := len(input.MatchedOptionalSkills)
	totalOptional := len(input.OptionalSkills)
	if totalOptional == 0 {
		totalOptional = matchedOptional + len(input.MissingOptionalSkills)
	}

	result := types.SimulationResult{Improvements: []types.Improvement{}}
	if totalCore == 0 && totalOptional == 0 {
		return result
	}

	current := weightedScore(matchedCore, totalCore, matchedOptional, totalOptional)
	result.CurrentScore = current

	for _, skill := range input.MissingCoreSkills {
		newScore := weightedScore(matchedCore+1, totalCore, matchedOptional, totalOptional)
		result.Improvements = append(result.Improvements, types.Improvement{
			Skill:    skill,
			Tier:     "core",
			NewScore: newScore,
			Gain:     newScore - current,
		})
	}
	for _, skill := range input.MissingOptionalSkills {
		newScore := weightedScore(matchedCore, totalCore, matchedOptional+1, totalOptional)
		result.Improvements = append(result.Improvements, types.Improvement{
			Skill:    skill,
			Tier:     "optional",
			NewScore: newScore,
			Gain:     newScore - current,
		})
	}

	sort.SliceStable(result.Improvements, func(i, j int) bool {
		a, b := result.Improvements[i], result.Improvements[j]
		if a.Gain != b.Gain {
			return a.Gain > b.Gain
		}
		return a.Tier == "core" && b.Tier == "optional"
	})

	return result
}

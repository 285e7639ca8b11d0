package skills

import (
	"strings"

	"github.com/Shrinivas-go/ats-backend/internal/types"
)

// Compare intersects resume skills against the core and optional
// requirement lists.
//
// Inputs are normalized for case and whitespace only; alias resolution
// belongs to the extraction stage, which already works from canonical
// names. Matched/missing lists keep the requirement list's order and are
// deduplicated. Nil inputs are treated as empty.
func Compare(resumeSkills, coreSkills, optionalSkills []string) types.ComparisonResult {
	have := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key != "" {
			have[key] = true
		}
	}

	matchedCore, missingCore := splitByMembership(coreSkills, have)
	matchedOptional, missingOptional := splitByMembership(optionalSkills, have)

	return types.ComparisonResult{
		MatchedCoreSkills:     matchedCore,
		MissingCoreSkills:     missingCore,
		MatchedOptionalSkills: matchedOptional,
		MissingOptionalSkills: missingOptional,
	}
}

// splitByMembership partitions requirements into matched and missing,
// preserving order and dropping blank or duplicate entries.
func splitByMembership(requirements []string, have map[string]bool) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	seen := make(map[string]bool, len(requirements))
	for _, req := range requirements {
		trimmed := strings.TrimSpace(req)
		key := strings.ToLower(trimmed)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if have[key] {
			matched = append(matched, trimmed)
		} else {
			missing = append(missing, trimmed)
		}
	}
	return matched, missing
}

package skills

import (
	"strings"
	"testing"

	"github.com/Shrinivas-go/ats-backend/internal/types"
)

func comparison(matchedCore, missingCore, matchedOptional, missingOptional int) types.ComparisonResult {
	fill := func(n int, prefix string) []string {
		list := make([]string, n)
		for i := range list {
			list[i] = prefix
		}
		return list
	}
	return types.ComparisonResult{
		MatchedCoreSkills:     fill(matchedCore, "mc"),
		MissingCoreSkills:     fill(missingCore, "xc"),
		MatchedOptionalSkills: fill(matchedOptional, "mo"),
		MissingOptionalSkills: fill(missingOptional, "xo"),
	}
}

func TestScoreWeighting(t *testing.T) {
	tests := []struct {
		name string
		cmp  types.ComparisonResult
		want int
	}{
		{"perfect match", comparison(3, 0, 2, 0), 100},
		{"no matches", comparison(0, 3, 0, 2), 0},
		// 2/4 core = 50, 1/2 optional = 50 -> 0.7*50 + 0.3*50 = 50
		{"even split", comparison(2, 2, 1, 1), 50},
		// 1/3 core = 33.33, 0 optional present -> full weight to core -> 33
		{"core only", comparison(1, 2, 0, 0), 33},
		// no core present -> full weight to optional, 1/2 = 50
		{"optional only", comparison(0, 0, 1, 1), 50},
		// 2/3 core = 66.67, 1/3 optional = 33.33 -> 46.67 + 10 = 56.67 -> 57
		{"half-up rounding", comparison(2, 1, 1, 2), 57},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.cmp)
			if got.Score != tt.want {
				t.Errorf("Score = %d, want %d", got.Score, tt.want)
			}
		})
	}
}

func TestScoreNoRequirements(t *testing.T) {
	got := Score(types.ComparisonResult{})

	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}
	if !strings.Contains(got.Explanation, "No skills found") {
		t.Errorf("Explanation = %q, want terminal zero message", got.Explanation)
	}
}

func TestScoreExplanationBands(t *testing.T) {
	tests := []struct {
		cmp  types.ComparisonResult
		band string
	}{
		{comparison(4, 1, 0, 0), "Excellent"}, // 80
		{comparison(3, 2, 0, 0), "Good"},      // 60
		{comparison(2, 3, 0, 0), "Moderate"},  // 40
		{comparison(1, 4, 0, 0), "Low"},       // 20
		{comparison(0, 4, 0, 0), "None"},      // 0
	}

	for _, tt := range tests {
		got := Score(tt.cmp)
		if !strings.Contains(got.Explanation, tt.band) {
			t.Errorf("Score %d: Explanation = %q, want band %q", got.Score, got.Explanation, tt.band)
		}
	}
}

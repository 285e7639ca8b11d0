package skills

import (
	"testing"
)

func TestSimulateRanksByGain(t *testing.T) {
	result := Simulate(SimulationInput{
		CoreSkills:            []string{"Go", "Kubernetes", "Docker"},
		OptionalSkills:        []string{"GraphQL", "Terraform"},
		MatchedCoreSkills:     []string{"Go"},
		MissingCoreSkills:     []string{"Kubernetes", "Docker"},
		MatchedOptionalSkills: []string{},
		MissingOptionalSkills: []string{"GraphQL", "Terraform"},
	})

	// 1/3 core, 0/2 optional -> 0.7*33.33 = 23.33 -> 23
	if result.CurrentScore != 23 {
		t.Errorf("CurrentScore = %d, want 23", result.CurrentScore)
	}

	if len(result.Improvements) != 4 {
		t.Fatalf("Improvements count = %d, want 4", len(result.Improvements))
	}

	// Core additions gain 0.7 * 33.33 = 23.33 points; optional additions
	// gain 0.3 * 50 = 15. Core entries must rank first.
	for i, wantTier := range []string{"core", "core", "optional", "optional"} {
		if result.Improvements[i].Tier != wantTier {
			t.Errorf("Improvements[%d].Tier = %q, want %q", i, result.Improvements[i].Tier, wantTier)
		}
	}

	for i := 1; i < len(result.Improvements); i++ {
		if result.Improvements[i].Gain > result.Improvements[i-1].Gain {
			t.Errorf("Improvements not sorted by gain at index %d", i)
		}
	}

	// Ranking is stable: equal-gain core skills keep input order
	if result.Improvements[0].Skill != "Kubernetes" || result.Improvements[1].Skill != "Docker" {
		t.Errorf("core order = %q, %q; want Kubernetes, Docker",
			result.Improvements[0].Skill, result.Improvements[1].Skill)
	}
}

func TestSimulateGainsAreMarginal(t *testing.T) {
	result := Simulate(SimulationInput{
		CoreSkills:        []string{"Go", "Rust"},
		MatchedCoreSkills: []string{},
		MissingCoreSkills: []string{"Go", "Rust"},
	})

	// Each entry assumes only that one skill is added: both jump 0 -> 50
	for _, imp := range result.Improvements {
		if imp.NewScore != 50 || imp.Gain != 50 {
			t.Errorf("%s: NewScore = %d Gain = %d, want 50/50", imp.Skill, imp.NewScore, imp.Gain)
		}
	}
}

func TestSimulateTotalsFromComparisonWhenListsAbsent(t *testing.T) {
	result := Simulate(SimulationInput{
		MatchedCoreSkills: []string{"Go"},
		MissingCoreSkills: []string{"Rust"},
	})

	if result.CurrentScore != 50 {
		t.Errorf("CurrentScore = %d, want 50", result.CurrentScore)
	}
	if len(result.Improvements) != 1 || result.Improvements[0].NewScore != 100 {
		t.Errorf("Improvements = %+v, want one entry reaching 100", result.Improvements)
	}
}

func TestSimulateEmptyInput(t *testing.T) {
	result := Simulate(SimulationInput{})

	if result.CurrentScore != 0 {
		t.Errorf("CurrentScore = %d, want 0", result.CurrentScore)
	}
	if result.Improvements == nil {
		t.Error("Improvements must be non-nil")
	}
	if len(result.Improvements) != 0 {
		t.Errorf("Improvements = %v, want empty", result.Improvements)
	}
}

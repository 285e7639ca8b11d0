package skills

import (
	"reflect"
	"testing"
)

func TestCompare(t *testing.T) {
	got := Compare(
		[]string{"Go", "docker", "  React  "},
		[]string{"Go", "Kubernetes", "Docker"},
		[]string{"React", "GraphQL"},
	)

	if want := []string{"Go", "Docker"}; !reflect.DeepEqual(got.MatchedCoreSkills, want) {
		t.Errorf("MatchedCoreSkills = %v, want %v", got.MatchedCoreSkills, want)
	}
	if want := []string{"Kubernetes"}; !reflect.DeepEqual(got.MissingCoreSkills, want) {
		t.Errorf("MissingCoreSkills = %v, want %v", got.MissingCoreSkills, want)
	}
	if want := []string{"React"}; !reflect.DeepEqual(got.MatchedOptionalSkills, want) {
		t.Errorf("MatchedOptionalSkills = %v, want %v", got.MatchedOptionalSkills, want)
	}
	if want := []string{"GraphQL"}; !reflect.DeepEqual(got.MissingOptionalSkills, want) {
		t.Errorf("MissingOptionalSkills = %v, want %v", got.MissingOptionalSkills, want)
	}
}

func TestCompareDeduplicatesRequirements(t *testing.T) {
	got := Compare(
		[]string{"Go"},
		[]string{"Go", "go", "GO", "Rust", "rust"},
		nil,
	)

	if want := []string{"Go"}; !reflect.DeepEqual(got.MatchedCoreSkills, want) {
		t.Errorf("MatchedCoreSkills = %v, want %v", got.MatchedCoreSkills, want)
	}
	if want := []string{"Rust"}; !reflect.DeepEqual(got.MissingCoreSkills, want) {
		t.Errorf("MissingCoreSkills = %v, want %v", got.MissingCoreSkills, want)
	}
}

func TestCompareNilInputs(t *testing.T) {
	got := Compare(nil, nil, nil)

	if got.MatchedCoreSkills == nil || got.MissingCoreSkills == nil ||
		got.MatchedOptionalSkills == nil || got.MissingOptionalSkills == nil {
		t.Error("Compare must return non-nil slices for nil inputs")
	}
}

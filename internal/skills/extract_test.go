package skills

import (
	"reflect"
	"testing"
)

func TestExtractClassifiesByTriggerPhrases(t *testing.T) {
	e := NewExtractor()

	jobText := `We are hiring a backend engineer.
Must have experience with Go and PostgreSQL.
Nice to have: Kubernetes and Terraform.`

	got := e.Extract(jobText)

	wantCore := []string{"Go", "PostgreSQL"}
	wantOptional := []string{"Kubernetes", "Terraform"}

	if !reflect.DeepEqual(got.CoreSkills, wantCore) {
		t.Errorf("CoreSkills = %v, want %v", got.CoreSkills, wantCore)
	}
	if !reflect.DeepEqual(got.OptionalSkills, wantOptional) {
		t.Errorf("OptionalSkills = %v, want %v", got.OptionalSkills, wantOptional)
	}
}

func TestExtractUntaggedTextDefaultsToCore(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("Python, Django and Redis")

	wantCore := []string{"Python", "Django", "Redis"}
	if !reflect.DeepEqual(got.CoreSkills, wantCore) {
		t.Errorf("CoreSkills = %v, want %v", got.CoreSkills, wantCore)
	}
	if len(got.OptionalSkills) != 0 {
		t.Errorf("OptionalSkills = %v, want empty", got.OptionalSkills)
	}
}

func TestExtractCoreWinsTier(t *testing.T) {
	e := NewExtractor()

	// Docker appears in a required chunk and a preferred chunk; it must
	// end up core only.
	jobText := `Required: Docker and Go
Preferred: Docker and Kubernetes`

	got := e.Extract(jobText)

	if !contains(got.CoreSkills, "Docker") {
		t.Errorf("CoreSkills = %v, want Docker included", got.CoreSkills)
	}
	if contains(got.OptionalSkills, "Docker") {
		t.Errorf("OptionalSkills = %v, Docker must not appear in both tiers", got.OptionalSkills)
	}
	if !contains(got.OptionalSkills, "Kubernetes") {
		t.Errorf("OptionalSkills = %v, want Kubernetes included", got.OptionalSkills)
	}
}

func TestExtractResolvesAliases(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("Must have k8s and golang experience")

	wantCore := []string{"Go", "Kubernetes"}
	if !reflect.DeepEqual(got.CoreSkills, wantCore) {
		t.Errorf("CoreSkills = %v, want %v", got.CoreSkills, wantCore)
	}
}

func TestExtractWholeWordMatching(t *testing.T) {
	e := NewExtractor()

	// "Going" must not match Go, "docking" must not match Docker
	got := e.Extract("Going forward we are docking the project")

	if len(got.CoreSkills) != 0 || len(got.OptionalSkills) != 0 {
		t.Errorf("Extract matched substrings: core %v optional %v", got.CoreSkills, got.OptionalSkills)
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("")

	if got.CoreSkills == nil || got.OptionalSkills == nil {
		t.Error("Extract must return non-nil slices for empty text")
	}
	if len(got.CoreSkills) != 0 || len(got.OptionalSkills) != 0 {
		t.Errorf("Extract(\"\") = core %v optional %v, want empty", got.CoreSkills, got.OptionalSkills)
	}
}

func TestExtractCustomTables(t *testing.T) {
	e := NewExtractorWithTables(ExtractorTables{
		Skills:           []string{"Erlang"},
		Aliases:          map[string]string{"beam": "Erlang"},
		CoreTriggers:     []string{"essential"},
		OptionalTriggers: []string{"bonus"},
	})

	got := e.Extract("Essential: beam experience. Bonus: nothing known.")

	wantCore := []string{"Erlang"}
	if !reflect.DeepEqual(got.CoreSkills, wantCore) {
		t.Errorf("CoreSkills = %v, want %v", got.CoreSkills, wantCore)
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

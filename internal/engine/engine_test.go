package engine

import (
	"context"
	"reflect"
	"testing"

	"github.com/Shrinivas-go/ats-backend/internal/config"
	"github.com/Shrinivas-go/ats-backend/internal/resume"
)

func TestNewAnalyzerNilTablesUsesDefaults(t *testing.T) {
	a := NewAnalyzer(nil)

	parsed := resume.Parse("Jane\njane@example.com\n\nSkills\nGo, Docker")
	result := a.Analyze(parsed, "Must have Go and Docker")

	if result.SkillScore != 100 {
		t.Errorf("SkillScore = %d, want 100 with default tables", result.SkillScore)
	}
}

func TestNewExtractorCustomSkillsReplaceDefaults(t *testing.T) {
	e := NewExtractor(&config.RuleTables{
		Skills: []string{"Erlang"},
	})

	got := e.Extract("Must have Erlang and Go experience")

	if !containsSkill(got.CoreSkills, "Erlang") {
		t.Errorf("CoreSkills = %v, want Erlang included", got.CoreSkills)
	}
}

func TestNewExtractorCustomTriggers(t *testing.T) {
	e := NewExtractor(&config.RuleTables{
		CoreTriggers:     []string{"unavoidable"},
		OptionalTriggers: []string{"cherry on top"},
	})

	got := e.Extract(`Unavoidable: Go
Cherry on top: Docker`)

	if want := []string{"Go"}; !reflect.DeepEqual(got.CoreSkills, want) {
		t.Errorf("CoreSkills = %v, want %v", got.CoreSkills, want)
	}
	if want := []string{"Docker"}; !reflect.DeepEqual(got.OptionalSkills, want) {
		t.Errorf("OptionalSkills = %v, want %v", got.OptionalSkills, want)
	}
}

func TestNewAnalyzerAliasOverlay(t *testing.T) {
	a := NewAnalyzer(&config.RuleTables{
		Aliases: map[string]string{"gopher": "Go"},
	})

	parsed := resume.Parse("Jane\njane@example.com\n\nSkills\ngopher")
	result := a.Analyze(parsed, "Must have Go")

	// The custom alias resolves, and the default aliases still apply
	if result.SkillScore != 100 {
		t.Errorf("SkillScore = %d, want 100 via custom alias", result.SkillScore)
	}
}

func TestNewAssistantAnswersWithoutElaborator(t *testing.T) {
	asst := NewAssistant(nil, nil)

	result := asst.ProcessQuery(context.Background(), "How do I improve my experience section with better bullets?", nil)

	if !result.Success {
		t.Errorf("ProcessQuery failed: %+v", result)
	}
	if result.Message == "" {
		t.Error("expected a non-empty deterministic answer")
	}
}

func TestNewAssistantCustomDomainKeywords(t *testing.T) {
	asst := NewAssistant(&config.RuleTables{
		DomainKeywords: []string{"quokka"},
	}, nil)

	// In-domain by custom keyword
	inDomain := asst.ProcessQuery(context.Background(), "Tell me about my quokka please", nil)
	if inDomain.Intent == "OUT_OF_SCOPE" {
		t.Errorf("custom keyword query rejected: %+v", inDomain)
	}

	// The off-topic veto list still applies with custom keywords
	offTopic := asst.ProcessQuery(context.Background(), "What is the weather today?", nil)
	if offTopic.Intent != "OUT_OF_SCOPE" {
		t.Errorf("off-topic query accepted: %+v", offTopic)
	}
}

func containsSkill(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

package ai

import (
	"strings"
	"testing"
)

func TestBuildElaborationPrompt(t *testing.T) {
	input := ElaborationInput{
		Query:  "Rewrite my resume",
		Draft:  "A deterministic rewrite outline based on your current score of 72.",
		Intent: "RESUME_REWRITE",
		Facts: map[string]any{
			"score":       72,
			"missingCore": []string{"Kubernetes"},
		},
	}

	prompt := buildElaborationPrompt(input)

	for _, want := range []string{
		`"Rewrite my resume"`,
		"RESUME_REWRITE",
		"deterministic rewrite outline",
		"- missingCore: [\"Kubernetes\"]",
		"- score: 72",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}

	// Facts are rendered in sorted key order for reproducible prompts
	if strings.Index(prompt, "missingCore") > strings.Index(prompt, "score:") {
		t.Error("Facts should be sorted by key")
	}
}

func TestBuildElaborationPromptNoFacts(t *testing.T) {
	prompt := buildElaborationPrompt(ElaborationInput{
		Query:  "help with my resume wording",
		Draft:  "Draft text.",
		Intent: "RESUME_REWRITE",
	})

	if !strings.Contains(prompt, "(none)") {
		t.Errorf("Expected empty facts placeholder, got:\n%s", prompt)
	}
}

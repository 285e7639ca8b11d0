package ai

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// DefaultSystemPrompt constrains the provider to rewording only. The
// scoring pipeline is the source of truth for every number and skill
// name, so the model is never allowed to introduce new facts.
const DefaultSystemPrompt = `You are a writing assistant for an applicant tracking system. You will receive a draft answer about a candidate's resume analysis together with the structured facts it was derived from.

Your only job is to rewrite the draft so it reads naturally and encouragingly. You must:

- Keep every score, skill name, and recommendation exactly as given
- Never invent skills, numbers, or advice that are not in the facts
- Never remove facts that appear in the draft
- Answer in plain prose, no markdown headings or bullet lists
- Stay under 150 words`

const userPromptTemplate = `The user asked: %q

Draft answer (intent %s):
%s

Structured facts:
%s

Rewrite the draft answer following your instructions.`

// buildElaborationPrompt renders the user prompt for an elaboration request.
// Facts are serialized in sorted key order so that prompts are reproducible.
func buildElaborationPrompt(input ElaborationInput) string {
	return fmt.Sprintf(userPromptTemplate, input.Query, input.Intent, input.Draft, formatFacts(input.Facts))
}

func formatFacts(facts map[string]any) string {
	if len(facts) == 0 {
		return "(none)"
	}

	keys := make([]string, 0, len(facts))
	for k := range facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		val, err := json.Marshal(facts[k])
		if err != nil {
			val = []byte(fmt.Sprintf("%q", fmt.Sprintf("%v", facts[k])))
		}
		fmt.Fprintf(&b, "- %s: %s\n", k, val)
	}
	return strings.TrimRight(b.String(), "\n")
}

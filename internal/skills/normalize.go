// Package skills implements the deterministic skill engines: normalization,
// weighted extraction from job text, tiered comparison, scoring and the
// marginal-gain improvement simulation. Every function is a pure transform
// of its inputs; nil and malformed inputs produce well-formed zero results.
package skills

import "strings"

// Normalizer resolves raw skill tokens to canonical names through a static
// alias table. No fuzzy matching: a token that misses the table passes
// through trimmed, with its original casing.
type Normalizer struct {
	aliases map[string]string
}

// NewNormalizer returns a normalizer backed by the default alias table.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithAliases(DefaultAliases)
}

// NewNormalizerWithAliases returns a normalizer backed by a custom table.
// Keys are matched after lowercasing and trimming.
func NewNormalizerWithAliases(aliases map[string]string) *Normalizer {
	return &Normalizer{aliases: aliases}
}

// Canonical resolves a single token. The empty string means the token was
// blank and should be dropped.
func (n *Normalizer) Canonical(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := n.aliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// Normalize maps tokens to canonical skill names, preserving first-seen
// order and deduplicating case-insensitively. Blank entries are filtered
// out. Normalize is idempotent: feeding its output back in returns the
// same sequence.
func (n *Normalizer) Normalize(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		canonical := n.Canonical(token)
		if canonical == "" {
			continue
		}
		key := strings.ToLower(canonical)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, canonical)
	}
	return result
}

// Package rules provides the shared pattern-matching primitives used by the
// skill extractor, the quality analyzer and the assistant's classifiers.
// Rule tables are plain data; the matching algorithm lives here, once.
package rules

import (
	"regexp"
	"strings"
)

// Rule pairs a compiled pattern with the category it signals
type Rule struct {
	Pattern  *regexp.Regexp
	Category string
}

// CompileRules builds a rule table from category -> patterns. Patterns are
// compiled case-insensitively; invalid patterns are programmer error and panic.
func CompileRules(table map[string][]string) []Rule {
	rules := make([]Rule, 0, len(table))
	for category, patterns := range table {
		for _, p := range patterns {
			rules = append(rules, Rule{
				Pattern:  regexp.MustCompile(`(?i)` + p),
				Category: category,
			})
		}
	}
	return rules
}

// MatchCategories returns the set of categories whose pattern matches text,
// in rule-table order, without duplicates.
func MatchCategories(text string, rules []Rule) []string {
	seen := make(map[string]bool)
	var matched []string
	for _, r := range rules {
		if seen[r.Category] {
			continue
		}
		if r.Pattern.MatchString(text) {
			seen[r.Category] = true
			matched = append(matched, r.Category)
		}
	}
	return matched
}

// WordPattern compiles a whole-word, case-insensitive matcher for term.
// A plain \b boundary breaks on terms like "C++" or "Node.js", so word
// boundaries are expressed as non-word characters or string edges.
func WordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|[^\w])` + regexp.QuoteMeta(term) + `([^\w]|$)`)
}

// CountWord counts whole-word, case-insensitive occurrences of term in text.
// The search resumes at each match's trailing boundary rune, so back-to-back
// occurrences separated by a single non-word rune all count.
func CountWord(text, term string) int {
	if strings.TrimSpace(term) == "" {
		return 0
	}

	pattern := WordPattern(term)
	count := 0
	offset := 0
	for offset <= len(text) {
		loc := pattern.FindStringIndex(text[offset:])
		if loc == nil {
			break
		}
		count++
		next := offset + loc[1]
		if next < len(text) {
			next--
		}
		offset = next
	}
	return count
}

// ContainsWord reports whether term appears as a whole word in text.
func ContainsWord(text, term string) bool {
	if strings.TrimSpace(term) == "" {
		return false
	}
	return WordPattern(term).MatchString(text)
}

// ContainsAnyPhrase reports whether any of the phrases appears as a
// case-insensitive substring of text. Trigger phrases are matched as
// substrings: per-chunk classification is the unit of work.
func ContainsAnyPhrase(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if p != "" && strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Shrinivas-go/ats-backend/internal/rules"
	"github.com/Shrinivas-go/ats-backend/internal/types"
)

// chunkSplit breaks job text into line/sentence-like units
var chunkSplit = regexp.MustCompile(`[\n.]`)

// Extractor scans free-form job text for known skill terms and classifies
// each one as core or optional based on the trigger phrases of the chunk it
// appears in. Classification is per-chunk, never per-document.
type Extractor struct {
	coreTriggers     []string
	optionalTriggers []string

	// searchTerms holds every searchable surface form (canonical names plus
	// aliases) with its whole-word pattern, compiled once at construction.
	searchTerms []searchTerm
}

type searchTerm struct {
	canonical string
	pattern   *regexp.Regexp
}

// ExtractorTables is the injected rule data for an Extractor.
type ExtractorTables struct {
	Skills           []string
	Aliases          map[string]string
	CoreTriggers     []string
	OptionalTriggers []string
}

// NewExtractor returns an extractor using the default skill vocabulary and
// trigger phrases.
func NewExtractor() *Extractor {
	return NewExtractorWithTables(ExtractorTables{
		Skills:           DefaultSkills,
		Aliases:          DefaultAliases,
		CoreTriggers:     DefaultCoreTriggers,
		OptionalTriggers: DefaultOptionalTriggers,
	})
}

// NewExtractorWithTables returns an extractor over custom rule tables.
func NewExtractorWithTables(tables ExtractorTables) *Extractor {
	e := &Extractor{
		coreTriggers:     tables.CoreTriggers,
		optionalTriggers: tables.OptionalTriggers,
	}

	// Canonical names first so their matches win representation; aliases
	// after, resolving to the same canonical form.
	added := make(map[string]bool)
	for _, skill := range tables.Skills {
		key := strings.ToLower(skill)
		if key == "" || added[key] {
			continue
		}
		added[key] = true
		e.searchTerms = append(e.searchTerms, searchTerm{
			canonical: skill,
			pattern:   rules.WordPattern(skill),
		})
	}
	aliasKeys := make([]string, 0, len(tables.Aliases))
	for alias := range tables.Aliases {
		aliasKeys = append(aliasKeys, alias)
	}
	// Sorted so term order, and with it output order, is stable
	sort.Strings(aliasKeys)
	for _, alias := range aliasKeys {
		if added[alias] {
			continue
		}
		added[alias] = true
		e.searchTerms = append(e.searchTerms, searchTerm{
			canonical: tables.Aliases[alias],
			pattern:   rules.WordPattern(alias),
		})
	}
	return e
}

// Extract classifies every known skill mentioned in jobText into core or
// optional requirements.
//
// Each chunk (split on newline or period) is tested for core and optional
// trigger phrases; skills found in a triggered chunk join that tier. Skills
// in untriggered chunks are recorded as seen but unassigned. If no chunk
// produced any classification at all, the whole seen set is treated as core:
// an untagged skill list is assumed to be a mandatory list. A skill placed
// in both tiers across different chunks stays core only.
func (e *Extractor) Extract(jobText string) types.SkillSet {
	core := newOrderedSet()
	optional := newOrderedSet()
	seen := newOrderedSet()

	for _, chunk := range chunkSplit.Split(jobText, -1) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		isCore := rules.ContainsAnyPhrase(chunk, e.coreTriggers)
		isOptional := rules.ContainsAnyPhrase(chunk, e.optionalTriggers)

		for _, term := range e.searchTerms {
			if !term.pattern.MatchString(chunk) {
				continue
			}
			seen.add(term.canonical)
			switch {
			case isCore:
				core.add(term.canonical)
			case isOptional:
				optional.add(term.canonical)
			}
		}
	}

	// Untagged job text: treat every seen skill as mandatory.
	if core.len() == 0 && optional.len() == 0 {
		return types.SkillSet{
			CoreSkills:     seen.values(),
			OptionalSkills: []string{},
		}
	}

	// Core wins ties: drop anything core from the optional tier.
	optionalOnly := newOrderedSet()
	for _, skill := range optional.values() {
		if !core.has(skill) {
			optionalOnly.add(skill)
		}
	}

	return types.SkillSet{
		CoreSkills:     core.values(),
		OptionalSkills: optionalOnly.values(),
	}
}

// orderedSet is a case-insensitive string set preserving insertion order
type orderedSet struct {
	keys  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{keys: make(map[string]bool)}
}

func (s *orderedSet) add(v string) {
	key := strings.ToLower(v)
	if s.keys[key] {
		return
	}
	s.keys[key] = true
	s.items = append(s.items, v)
}

func (s *orderedSet) has(v string) bool {
	return s.keys[strings.ToLower(v)]
}

func (s *orderedSet) len() int { return len(s.items) }

func (s *orderedSet) values() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}

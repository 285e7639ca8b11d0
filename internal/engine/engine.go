// Package engine assembles the scoring and assistant pipelines from an
// optional rule table override. CLI commands and HTTP handlers both build
// their engines through here so a rules file behaves identically in both.
package engine

import (
	"github.com/Shrinivas-go/ats-backend/internal/analysis"
	"github.com/Shrinivas-go/ats-backend/internal/assistant"
	"github.com/Shrinivas-go/ats-backend/internal/config"
	"github.com/Shrinivas-go/ats-backend/internal/skills"
)

// NewAnalyzer builds a scoring analyzer. Nil tables, or empty table
// fields, keep the built-in defaults.
func NewAnalyzer(tables *config.RuleTables) *analysis.Analyzer {
	if tables == nil {
		return analysis.NewAnalyzer()
	}

	var extractor *skills.Extractor
	if len(tables.Skills) > 0 || len(tables.Aliases) > 0 ||
		len(tables.CoreTriggers) > 0 || len(tables.OptionalTriggers) > 0 {
		extractor = skills.NewExtractorWithTables(mergeExtractorTables(tables))
	}

	var normalizer *skills.Normalizer
	if len(tables.Aliases) > 0 {
		normalizer = skills.NewNormalizerWithAliases(mergeAliases(tables.Aliases))
	}

	var quality *analysis.QualityAnalyzer
	if len(tables.WeakVerbs) > 0 {
		quality = analysis.NewQualityAnalyzerWithVerbs(tables.WeakVerbs)
	}

	return analysis.NewAnalyzerWith(extractor, normalizer, quality)
}

// NewExtractor builds a standalone skill extractor for the extract
// operation, honoring the same table overrides as NewAnalyzer.
func NewExtractor(tables *config.RuleTables) *skills.Extractor {
	if tables == nil {
		return skills.NewExtractor()
	}
	return skills.NewExtractorWithTables(mergeExtractorTables(tables))
}

// NewAssistant builds the conversational assistant. A nil elaborator
// disables LLM elaboration; responses then stay fully deterministic.
func NewAssistant(tables *config.RuleTables, elaborator assistant.Elaborator) *assistant.Assistant {
	var validator *assistant.DomainValidator
	if tables != nil && len(tables.DomainKeywords) > 0 {
		// Custom keywords replace the defaults; the off-topic veto list
		// is not configurable and always applies.
		validator = assistant.NewDomainValidatorWithTables(tables.DomainKeywords, assistant.DefaultOffTopicPatterns)
	}
	return assistant.NewWith(nil, validator, elaborator)
}

// mergeExtractorTables fills empty override fields with the defaults so a
// rules file can override just one table.
func mergeExtractorTables(tables *config.RuleTables) skills.ExtractorTables {
	out := skills.ExtractorTables{
		Skills:           tables.Skills,
		Aliases:          mergeAliases(tables.Aliases),
		CoreTriggers:     tables.CoreTriggers,
		OptionalTriggers: tables.OptionalTriggers,
	}
	if len(out.Skills) == 0 {
		out.Skills = skills.DefaultSkills
	}
	if len(out.CoreTriggers) == 0 {
		out.CoreTriggers = skills.DefaultCoreTriggers
	}
	if len(out.OptionalTriggers) == 0 {
		out.OptionalTriggers = skills.DefaultOptionalTriggers
	}
	return out
}

// mergeAliases overlays custom aliases on the default alias map.
func mergeAliases(custom map[string]string) map[string]string {
	if len(custom) == 0 {
		return skills.DefaultAliases
	}
	merged := make(map[string]string, len(skills.DefaultAliases)+len(custom))
	for k, v := range skills.DefaultAliases {
		merged[k] = v
	}
	for k, v := range custom {
		merged[k] = v
	}
	return merged
}

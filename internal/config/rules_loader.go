package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxRulesFileSize caps the rule table file to catch obviously wrong paths
// (binaries, dumps) before parsing.
const maxRulesFileSize = 1 << 20

// RuleTables holds the externally configurable rule tables for the scoring
// engine and the assistant. Every field is optional; empty fields keep the
// built-in defaults.
type RuleTables struct {
	Skills           []string          `yaml:"skills"`
	Aliases          map[string]string `yaml:"aliases"`
	CoreTriggers     []string          `yaml:"coreTriggers"`
	OptionalTriggers []string          `yaml:"optionalTriggers"`
	WeakVerbs        []string          `yaml:"weakVerbs"`
	DomainKeywords   []string          `yaml:"domainKeywords"`
}

// LoadRuleTables reads and parses a rule table file. An empty path returns
// nil tables and no error, meaning the built-in defaults apply.
func LoadRuleTables(path string) (*RuleTables, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for rules file '%s': %w", path, err)
	}

	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("rules file not found: %s", absPath)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access rules file '%s': %w", absPath, err)
	}
	if info.Size() > maxRulesFileSize {
		return nil, fmt.Errorf("rules file '%s' exceeds the %d byte limit", absPath, maxRulesFileSize)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file '%s': %w", absPath, err)
	}

	var tables RuleTables
	if err := yaml.Unmarshal(content, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse rules file '%s': %w", absPath, err)
	}

	if err := tables.validate(); err != nil {
		return nil, fmt.Errorf("invalid rules file '%s': %w", absPath, err)
	}

	log.Printf("[CONFIG] Successfully loaded rule tables from file: %s (skills=%d, aliases=%d)",
		absPath, len(tables.Skills), len(tables.Aliases))

	return &tables, nil
}

// validate rejects tables that would silently disable matching.
func (t *RuleTables) validate() error {
	for i, s := range t.Skills {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("skills[%d] is blank", i)
		}
	}
	for alias, canonical := range t.Aliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("alias key for %q is blank", canonical)
		}
		if strings.TrimSpace(canonical) == "" {
			return fmt.Errorf("alias %q maps to a blank canonical name", alias)
		}
	}
	for i, trig := range t.CoreTriggers {
		if strings.TrimSpace(trig) == "" {
			return fmt.Errorf("coreTriggers[%d] is blank", i)
		}
	}
	for i, trig := range t.OptionalTriggers {
		if strings.TrimSpace(trig) == "" {
			return fmt.Errorf("optionalTriggers[%d] is blank", i)
		}
	}
	return nil
}

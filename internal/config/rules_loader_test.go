package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadRuleTables(t *testing.T) {
	path := writeRulesFile(t, `
skills:
  - Erlang
  - Elixir
aliases:
  beam: Erlang
coreTriggers:
  - essential
optionalTriggers:
  - bonus
weakVerbs:
  - dabbled
domainKeywords:
  - resume
`)

	tables, err := LoadRuleTables(path)
	require.NoError(t, err)
	require.NotNil(t, tables)

	assert.Equal(t, []string{"Erlang", "Elixir"}, tables.Skills)
	assert.Equal(t, map[string]string{"beam": "Erlang"}, tables.Aliases)
	assert.Equal(t, []string{"essential"}, tables.CoreTriggers)
	assert.Equal(t, []string{"bonus"}, tables.OptionalTriggers)
	assert.Equal(t, []string{"dabbled"}, tables.WeakVerbs)
	assert.Equal(t, []string{"resume"}, tables.DomainKeywords)
}

func TestLoadRuleTablesEmptyPath(t *testing.T) {
	tables, err := LoadRuleTables("")
	require.NoError(t, err)
	assert.Nil(t, tables, "empty path selects built-in defaults")
}

func TestLoadRuleTablesMissingFile(t *testing.T) {
	_, err := LoadRuleTables(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadRuleTablesInvalidYAML(t *testing.T) {
	path := writeRulesFile(t, "skills: [unclosed")
	_, err := LoadRuleTables(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadRuleTablesPartialFile(t *testing.T) {
	path := writeRulesFile(t, "skills:\n  - Erlang\n")

	tables, err := LoadRuleTables(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Erlang"}, tables.Skills)
	assert.Empty(t, tables.Aliases)
	assert.Empty(t, tables.CoreTriggers)
}

func TestLoadRuleTablesRejectsBlankEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"blank skill", "skills:\n  - \"  \"\n"},
		{"blank alias target", "aliases:\n  beam: \"\"\n"},
		{"blank core trigger", "coreTriggers:\n  - \"\"\n"},
		{"blank optional trigger", "optionalTriggers:\n  - \" \"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRulesFile(t, tt.content)
			_, err := LoadRuleTables(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid rules file")
		})
	}
}

package config

import (
	"testing"

	"github.com/Shrinivas-go/ats-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *errors.Logger {
	logger, _ := errors.New("debug")
	return logger
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	config := &Config{
		Vault: VaultConfig{Enabled: false},
	}

	err := ApplyVaultSecrets(config, newTestLogger())
	assert.NoError(t, err)
}

func TestApplyGeminiKeyToConfig(t *testing.T) {
	config := &Config{}

	applyGeminiKeyToConfig(config, "vault-provided-key")

	assert.Equal(t, "vault-provided-key", config.AI.APIKey)
}

func TestLoadTLSCertificateContent(t *testing.T) {
	config := &Config{}
	tlsData := &VaultSecret{
		Data: map[string]any{
			"cert": "cert-content",
			"key":  "key-content",
			"ca":   "ca-content",
		},
	}

	certCount := loadTLSCertificateContent(config, tlsData, newTestLogger())

	assert.Equal(t, 3, certCount)
	assert.Equal(t, "cert-content", config.Server.TLS.CertContent)
	assert.Equal(t, "key-content", config.Server.TLS.KeyContent)
	assert.Equal(t, "ca-content", config.Server.TLS.CAContent)
}

func TestLoadTLSCertificateContentPartial(t *testing.T) {
	config := &Config{}
	tlsData := &VaultSecret{
		Data: map[string]any{
			"cert": "cert-content",
		},
	}

	certCount := loadTLSCertificateContent(config, tlsData, newTestLogger())

	assert.Equal(t, 1, certCount)
	assert.Equal(t, "cert-content", config.Server.TLS.CertContent)
	assert.Equal(t, "", config.Server.TLS.KeyContent)
	assert.Equal(t, "", config.Server.TLS.CAContent)
}

func TestValidateTLSDeprecatedFields(t *testing.T) {
	tlsData := &VaultSecret{
		Data: map[string]any{
			"cert_file": "/path/to/cert.pem",
		},
	}

	err := validateTLSDeprecatedFields(tlsData, newTestLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no longer supported")
}

func TestParseVersionValue(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		expected    int64
		expectError bool
	}{
		{name: "int64 value", input: int64(42), expected: 42},
		{name: "float64 value", input: float64(42.0), expected: 42},
		{name: "string value", input: "42", expected: 42},
		{name: "invalid string value", input: "not-a-number", expectError: true},
		{name: "unsupported type", input: []string{"42"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVersionValue(tt.input, "test/path")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseInt64(t *testing.T) {
	tests := []struct {
		input       string
		expected    int64
		expectError bool
	}{
		{input: "42", expected: 42},
		{input: "-42", expected: -42},
		{input: "0", expected: 0},
		{input: "not-a-number", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		got, err := parseInt64(tt.input)

		if tt.expectError {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, got)
	}
}

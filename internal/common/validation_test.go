package common

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	supported := []string{"text", "json", "markdown"}

	tests := []struct {
		name      string
		format    string
		supported []string
		wantErr   bool
	}{
		{name: "supported format", format: "json", supported: supported},
		{name: "first in list", format: "text", supported: supported},
		{name: "unsupported format", format: "xml", supported: supported, wantErr: true},
		{name: "case sensitive", format: "JSON", supported: supported, wantErr: true},
		{name: "empty format rejected", format: "", supported: supported, wantErr: true},
		{name: "no restrictions", format: "anything", supported: nil},
		{name: "empty list means unrestricted", format: "xml", supported: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supported)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) = nil, want error", tt.format)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) = %v, want nil", tt.format, err)
			}
		})
	}
}

func TestValidateOutputFormatErrorListsFormats(t *testing.T) {
	err := ValidateOutputFormat("yaml", []string{"text", "json"})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	for _, want := range []string{"yaml", "text", "json"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err.Error(), want)
		}
	}
}

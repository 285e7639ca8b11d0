package skills

import (
	"reflect"
	"testing"
)

func TestCanonical(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		token string
		want  string
	}{
		{"js", "JavaScript"},
		{"  JS  ", "JavaScript"},
		{"golang", "Go"},
		{"K8S", "Kubernetes"},
		{"postgres", "PostgreSQL"},
		{"Erlang", "Erlang"}, // unmapped passes through
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := n.Canonical(tt.token); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestNormalizeDeduplicatesAndOrders(t *testing.T) {
	n := NewNormalizer()

	got := n.Normalize([]string{"js", "Python", "JavaScript", "", "  ", "py", "Rust"})
	want := []string{"JavaScript", "Python", "Rust"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer()

	first := n.Normalize([]string{"js", "node", "k8s", "Erlang"})
	second := n.Normalize(first)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Normalize not idempotent: first %v, second %v", first, second)
	}
}

func TestNormalizeCustomAliases(t *testing.T) {
	n := NewNormalizerWithAliases(map[string]string{"es": "Elasticsearch"})

	got := n.Normalize([]string{"es", "js"})
	want := []string{"Elasticsearch", "js"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeNilInput(t *testing.T) {
	n := NewNormalizer()
	if got := n.Normalize(nil); len(got) != 0 {
		t.Errorf("Normalize(nil) = %v, want empty", got)
	}
}

package assistant

import "testing"

func TestTemplateRender(t *testing.T) {
	tests := []struct {
		name string
		src  string
		data map[string]any
		want string
	}{
		{
			name: "plain text",
			src:  "no tags here",
			data: map[string]any{},
			want: "no tags here",
		},
		{
			name: "variable substitution",
			src:  "score is {{score}} ({{label}})",
			data: map[string]any{"score": 72, "label": "Good"},
			want: "score is 72 (Good)",
		},
		{
			name: "missing variable renders empty",
			src:  "[{{absent}}]",
			data: map[string]any{},
			want: "[]",
		},
		{
			name: "dotted path",
			src:  "{{quality.score}}",
			data: map[string]any{"quality": map[string]any{"score": 55}},
			want: "55",
		},
		{
			name: "dotted path dead end renders empty",
			src:  "[{{quality.missing.deep}}]",
			data: map[string]any{"quality": map[string]any{"score": 55}},
			want: "[]",
		},
		{
			name: "section iterates list with dot",
			src:  "skills:{{#skills}} {{.}};{{/skills}}",
			data: map[string]any{"skills": []string{"Go", "Docker"}},
			want: "skills: Go; Docker;",
		},
		{
			name: "section over empty list renders empty",
			src:  "[{{#skills}}x{{/skills}}]",
			data: map[string]any{"skills": []string{}},
			want: "[]",
		},
		{
			name: "section gated by true bool",
			src:  "{{#present}}shown{{/present}}",
			data: map[string]any{"present": true},
			want: "shown",
		},
		{
			name: "section gated by false bool",
			src:  "[{{#present}}shown{{/present}}]",
			data: map[string]any{"present": false},
			want: "[]",
		},
		{
			name: "section over map opens inner scope",
			src:  "{{#quality}}quality={{score}}{{/quality}}",
			data: map[string]any{"quality": map[string]any{"score": 40}},
			want: "quality=40",
		},
		{
			name: "inner scope shadows outer",
			src:  "{{score}} {{#quality}}{{score}}{{/quality}}",
			data: map[string]any{
				"score":   70,
				"quality": map[string]any{"score": 40},
			},
			want: "70 40",
		},
		{
			name: "outer scope visible inside section",
			src:  "{{#quality}}{{label}}{{/quality}}",
			data: map[string]any{
				"label":   "Good",
				"quality": map[string]any{"score": 40},
			},
			want: "Good",
		},
		{
			name: "missing section renders empty",
			src:  "[{{#nothing}}x{{/nothing}}]",
			data: map[string]any{},
			want: "[]",
		},
		{
			name: "nested sections",
			src:  "{{#groups}}<{{#items}}{{.}},{{/items}}>{{/groups}}",
			data: map[string]any{
				"groups": []any{
					map[string]any{"items": []string{"a", "b"}},
					map[string]any{"items": []string{"c"}},
				},
			},
			want: "<a,b,><c,>",
		},
		{
			name: "bool variable is not printed",
			src:  "[{{flag}}]",
			data: map[string]any{"flag": true},
			want: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseTemplate(tt.src)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			got := tmpl.Render(tt.data)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "unterminated tag", src: "hello {{name"},
		{name: "unclosed section", src: "{{#skills}}a"},
		{name: "unmatched close", src: "a{{/skills}}"},
		{name: "mismatched close", src: "{{#a}}x{{/b}}"},
		{name: "empty tag", src: "{{}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTemplate(tt.src); err == nil {
				t.Errorf("ParseTemplate(%q) expected error, got nil", tt.src)
			}
		})
	}
}

func TestResponseTemplatesParse(t *testing.T) {
	for category, tmpl := range responseTemplates {
		if tmpl == nil {
			t.Errorf("template %q is nil", category)
		}
	}
}

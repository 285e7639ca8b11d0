package rules

import "testing"

func TestCountWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want int
	}{
		{name: "single occurrence", text: "I worked on billing.", term: "worked", want: 1},
		{name: "back to back occurrences", text: "worked worked worked worked", term: "worked", want: 4},
		{name: "comma separated", text: "worked, worked, worked", term: "worked", want: 3},
		{name: "case insensitive", text: "Worked and WORKED", term: "worked", want: 2},
		{name: "substring does not count", text: "networked coworked", term: "worked", want: 0},
		{name: "at text edges", text: "worked hard and worked", term: "worked", want: 2},
		{name: "term with punctuation", text: "C++ and C++ again", term: "C++", want: 2},
		{name: "blank term", text: "worked", term: "  ", want: 0},
		{name: "no occurrence", text: "led the migration", term: "worked", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWord(tt.text, tt.term); got != tt.want {
				t.Errorf("CountWord(%q, %q) = %d, want %d", tt.text, tt.term, got, tt.want)
			}
		})
	}
}

func TestContainsWord(t *testing.T) {
	if !ContainsWord("Go, Docker and Kubernetes", "Go") {
		t.Error("expected whole-word match for Go")
	}
	if ContainsWord("Going to the store", "Go") {
		t.Error("matched Go inside Going")
	}
	if ContainsWord("anything", "") {
		t.Error("empty term must never match")
	}
}

func TestContainsAnyPhrase(t *testing.T) {
	phrases := []string{"must have", "required"}
	if !ContainsAnyPhrase("Candidates MUST HAVE Go experience", phrases) {
		t.Error("expected case-insensitive phrase match")
	}
	if ContainsAnyPhrase("nice to have Go", phrases) {
		t.Error("unexpected phrase match")
	}
}

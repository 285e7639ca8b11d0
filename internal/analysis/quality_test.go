package analysis

import (
	"strings"
	"testing"

	"github.com/Shrinivas-go/ats-backend/internal/types"
)

func completeResume() types.ParsedResume {
	return types.ParsedResume{
		PersonalInfo: types.PersonalInfo{
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Phone:    "+1 555 123 4567",
			LinkedIn: "linkedin.com/in/janesmith",
		},
		Summary:    "Backend engineer.",
		Experience: "Led migration to microservices.",
		Education:  "B.S. Computer Science",
		Projects:   "Open source contributor.",
		Skills:     []string{"Go"},
	}
}

func TestQualityFullBudget(t *testing.T) {
	q := NewQualityAnalyzer()

	got := q.Analyze(completeResume())

	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}
	if len(got.Issues) != 0 {
		t.Errorf("Issues = %v, want none", got.Issues)
	}
}

func TestQualityEmptyResume(t *testing.T) {
	q := NewQualityAnalyzer()

	got := q.Analyze(types.ParsedResume{})

	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}

	criticals := 0
	for _, issue := range got.Issues {
		if issue.Type == types.IssueCritical {
			criticals++
		}
	}
	// Missing email and missing experience are the two critical issues
	if criticals != 2 {
		t.Errorf("critical issues = %d, want 2", criticals)
	}
}

func TestQualitySectionPoints(t *testing.T) {
	q := NewQualityAnalyzer()

	resume := completeResume()
	resume.Experience = ""
	got := q.Analyze(resume)

	// 40 - 10 experience points = 30/40 -> 75
	if got.Score != 75 {
		t.Errorf("Score = %d, want 75", got.Score)
	}
	if got.Sections["experience"] != 0 {
		t.Errorf("experience points = %d, want 0", got.Sections["experience"])
	}
	if got.Sections["contact"] != 15 {
		t.Errorf("contact points = %d, want 15", got.Sections["contact"])
	}
}

func TestQualityWeakVerbNote(t *testing.T) {
	q := NewQualityAnalyzer()

	resume := completeResume()
	resume.RawText = "helped with X. worked on Y. assisted Z. participated in W."
	got := q.Analyze(resume)

	found := false
	for _, imp := range got.Improvements {
		if strings.Contains(imp, "weak verbs") {
			found = true
			if !strings.Contains(imp, "4") {
				t.Errorf("weak verb note = %q, want count 4", imp)
			}
		}
	}
	if !found {
		t.Error("expected a weak verb improvement note")
	}
}

func TestQualityWeakVerbBelowThreshold(t *testing.T) {
	q := NewQualityAnalyzer()

	resume := completeResume()
	resume.RawText = "helped with X. worked on Y."
	got := q.Analyze(resume)

	for _, imp := range got.Improvements {
		if strings.Contains(imp, "weak verbs") {
			t.Errorf("unexpected weak verb note below threshold: %q", imp)
		}
	}
}

package assistant

import (
	"reflect"
	"testing"

	"github.com/Shrinivas-go/ats-backend/internal/types"
)

func TestSkillsGapUrgency(t *testing.T) {
	tests := []struct {
		name        string
		missingCore int
		want        Urgency
	}{
		{name: "no missing core", missingCore: 0, want: UrgencyLow},
		{name: "one missing core", missingCore: 1, want: UrgencyMedium},
		{name: "three missing core", missingCore: 3, want: UrgencyMedium},
		{name: "four missing core", missingCore: 4, want: UrgencyHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skillsGapUrgency(tt.missingCore); got != tt.want {
				t.Errorf("skillsGapUrgency(%d) = %s, want %s", tt.missingCore, got, tt.want)
			}
		})
	}
}

func TestFitBandFor(t *testing.T) {
	tests := []struct {
		score int
		want  FitBand
	}{
		{score: 95, want: FitStrong},
		{score: 80, want: FitStrong},
		{score: 79, want: FitGood},
		{score: 60, want: FitGood},
		{score: 59, want: FitPartial},
		{score: 40, want: FitPartial},
		{score: 39, want: FitWeak},
		{score: 0, want: FitWeak},
	}

	for _, tt := range tests {
		if got := fitBandFor(tt.score); got != tt.want {
			t.Errorf("fitBandFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestSortIssuesCriticalFirst(t *testing.T) {
	in := []types.QualityIssue{
		{Type: types.IssueWarning, Message: "warn a"},
		{Type: types.IssueCritical, Message: "crit a"},
		{Type: types.IssueWarning, Message: "warn b"},
		{Type: types.IssueCritical, Message: "crit b"},
	}

	got := issueMessages(sortIssues(in))
	want := []string{"crit a", "crit b", "warn a", "warn b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortIssues order = %v, want %v", got, want)
	}
	// input untouched
	if in[0].Message != "warn a" {
		t.Errorf("sortIssues mutated its input")
	}
}

func TestDecideSkillsGap(t *testing.T) {
	def, ok := NewClassifier().Lookup(IntentSkillsGap)
	if !ok {
		t.Fatal("SKILLS_GAP not declared")
	}
	ctx := emptyContext(IntentSkillsGap)
	ctx.HasAnalysis = true
	ctx.MissingCore = []string{"Kubernetes", "Terraform", "AWS", "Go"}
	ctx.MissingOptional = []string{"GraphQL"}

	d := Decide(IntentSkillsGap, def, ctx)

	if d.Category != "skills_gap" {
		t.Errorf("Category = %q, want skills_gap", d.Category)
	}
	if d.Urgency != UrgencyHigh {
		t.Errorf("Urgency = %s, want %s", d.Urgency, UrgencyHigh)
	}
	if len(d.Recommendations) != 4 {
		t.Errorf("Recommendations = %d entries, want one per missing core skill", len(d.Recommendations))
	}
	if d.Data["hasMissingOptional"] != true {
		t.Errorf("Data[hasMissingOptional] = %v, want true", d.Data["hasMissingOptional"])
	}
}

func TestDecideJDMatchBands(t *testing.T) {
	def, ok := NewClassifier().Lookup(IntentJDMatch)
	if !ok {
		t.Fatal("JD_MATCH not declared")
	}

	ctx := emptyContext(IntentJDMatch)
	ctx.HasAnalysis = true
	ctx.Score = 85
	ctx.Label = "Excellent"

	d := Decide(IntentJDMatch, def, ctx)
	if d.FitBand != FitStrong {
		t.Errorf("FitBand = %s, want %s", d.FitBand, FitStrong)
	}
	if len(d.Recommendations) != 0 {
		t.Errorf("strong fit should carry no tailoring recommendation, got %v", d.Recommendations)
	}

	ctx.Score = 35
	d = Decide(IntentJDMatch, def, ctx)
	if d.FitBand != FitWeak {
		t.Errorf("FitBand = %s, want %s", d.FitBand, FitWeak)
	}
	if len(d.Recommendations) == 0 {
		t.Errorf("weak fit should recommend tailoring")
	}
}

func TestDecideRewriteNeedsLLM(t *testing.T) {
	def, ok := NewClassifier().Lookup(IntentResumeRewrite)
	if !ok {
		t.Fatal("RESUME_REWRITE not declared")
	}

	d := Decide(IntentResumeRewrite, def, emptyContext(IntentResumeRewrite))
	if !d.NeedsLLM {
		t.Error("NeedsLLM = false, want true for rewrite")
	}
	if d.Category != "resume_rewrite" {
		t.Errorf("Category = %q, want resume_rewrite", d.Category)
	}
}

func TestBuildContextNilResult(t *testing.T) {
	ctx := BuildContext(IntentScoreExplanation, nil)
	if ctx.HasAnalysis {
		t.Error("HasAnalysis = true for nil result")
	}
	if ctx.MatchedSkills == nil || ctx.MissingCore == nil || ctx.Improvements == nil {
		t.Error("collections must be non-nil on an empty context")
	}
}

func TestBuildContextProjection(t *testing.T) {
	result := &types.AnalysisResult{
		Score:        72,
		Label:        "Good",
		SkillScore:   80,
		QualityScore: 55,
		MatchedSkills: []string{
			"Go", "Docker",
		},
		SkillsBreakdown: types.SkillsBreakdown{
			MissingCore:     []string{"Kubernetes"},
			MissingOptional: []string{"GraphQL"},
		},
		Quality: types.QualityResult{
			Score:        55,
			Sections:     map[string]int{"contact": 15, "experience": 10},
			Issues:       []types.QualityIssue{{Type: types.IssueWarning, Message: "Phone number is missing."}},
			Improvements: []string{"Add a LinkedIn profile URL."},
		},
	}

	ctx := BuildContext(IntentScoreExplanation, result)
	if !ctx.HasAnalysis {
		t.Fatal("HasAnalysis = false")
	}
	if ctx.Score != 72 || ctx.SkillScore != 80 || ctx.QualityScore != 55 {
		t.Errorf("score fields = %d/%d/%d, want 72/80/55", ctx.Score, ctx.SkillScore, ctx.QualityScore)
	}
	// score explanation does not consume quality issues
	if len(ctx.Issues) != 0 {
		t.Errorf("Issues projected for score explanation: %v", ctx.Issues)
	}

	ctx = BuildContext(IntentFormattingFeedback, result)
	if len(ctx.Issues) != 1 || len(ctx.Sections) != 2 {
		t.Errorf("formatting projection Issues=%d Sections=%d, want 1 and 2", len(ctx.Issues), len(ctx.Sections))
	}
	// formatting feedback has no use for the blended score
	if ctx.Score != 0 {
		t.Errorf("Score projected for formatting feedback: %d", ctx.Score)
	}
}

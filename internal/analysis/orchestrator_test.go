package analysis

import (
	"reflect"
	"strings"
	"testing"
)

const analyzeJobText = `Must have Go and Kubernetes experience.
Nice to have: Terraform.`

func TestAnalyzeBlendsSkillAndQuality(t *testing.T) {
	a := NewAnalyzer()

	resume := completeResume()
	resume.Skills = []string{"Go", "Kubernetes", "Terraform"}

	got := a.Analyze(resume, analyzeJobText)

	if got.SkillScore != 100 {
		t.Errorf("SkillScore = %d, want 100", got.SkillScore)
	}
	if got.QualityScore != 100 {
		t.Errorf("QualityScore = %d, want 100", got.QualityScore)
	}
	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}
	if got.Label != "Excellent" {
		t.Errorf("Label = %q, want Excellent", got.Label)
	}
}

func TestAnalyzeRelevanceGate(t *testing.T) {
	a := NewAnalyzer()

	// Perfect formatting, zero skill overlap: the gate must cap the final
	// score and flag the resume as not relevant.
	resume := completeResume()
	resume.Skills = []string{"Photoshop"}

	got := a.Analyze(resume, analyzeJobText)

	if got.SkillScore != 0 {
		t.Errorf("SkillScore = %d, want 0", got.SkillScore)
	}
	if got.Score > 15 {
		t.Errorf("Score = %d, want <= 15 under the relevance gate", got.Score)
	}
	if got.Label != "Not Relevant" {
		t.Errorf("Label = %q, want Not Relevant", got.Label)
	}
	if len(got.Feedback) == 0 || !strings.Contains(got.Feedback[0], "does not match") {
		t.Errorf("Feedback = %v, want gate summary first", got.Feedback)
	}
}

func TestAnalyzeSkillsBreakdown(t *testing.T) {
	a := NewAnalyzer()

	resume := completeResume()
	resume.Skills = []string{"golang"}

	got := a.Analyze(resume, analyzeJobText)

	if want := []string{"Go"}; !reflect.DeepEqual(got.SkillsBreakdown.MatchedCore, want) {
		t.Errorf("MatchedCore = %v, want %v", got.SkillsBreakdown.MatchedCore, want)
	}
	if want := []string{"Kubernetes"}; !reflect.DeepEqual(got.SkillsBreakdown.MissingCore, want) {
		t.Errorf("MissingCore = %v, want %v", got.SkillsBreakdown.MissingCore, want)
	}
	if want := []string{"Terraform"}; !reflect.DeepEqual(got.SkillsBreakdown.MissingOptional, want) {
		t.Errorf("MissingOptional = %v, want %v", got.SkillsBreakdown.MissingOptional, want)
	}

	// MissingSkills surfaces core gaps only
	if want := []string{"Kubernetes"}; !reflect.DeepEqual(got.MissingSkills, want) {
		t.Errorf("MissingSkills = %v, want %v", got.MissingSkills, want)
	}
}

func TestAnalyzeFeedbackNamesMissingSkills(t *testing.T) {
	a := NewAnalyzer()

	resume := completeResume()
	resume.Skills = []string{"Go"}

	got := a.Analyze(resume, analyzeJobText)

	var mentionsCore, mentionsOptional bool
	for _, f := range got.Feedback {
		if strings.Contains(f, "Kubernetes") {
			mentionsCore = true
		}
		if strings.Contains(f, "Terraform") {
			mentionsOptional = true
		}
	}
	if !mentionsCore {
		t.Errorf("Feedback = %v, want missing core skill named", got.Feedback)
	}
	if !mentionsOptional {
		t.Errorf("Feedback = %v, want missing optional skill named", got.Feedback)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := NewAnalyzer()

	resume := completeResume()
	resume.Skills = []string{"Go", "Terraform"}

	first := a.Analyze(resume, analyzeJobText)
	second := a.Analyze(resume, analyzeJobText)

	if !reflect.DeepEqual(first, second) {
		t.Error("Analyze is not deterministic for identical inputs")
	}
}

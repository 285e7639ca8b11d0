package assistant

import "testing"

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name          string
		query         string
		wantIntent    Intent
		minConfidence float64
	}{
		{
			name:          "score explanation",
			query:         "Why is my score low?",
			wantIntent:    IntentScoreExplanation,
			minConfidence: 0.6,
		},
		{
			name:          "skills gap",
			query:         "What skills am I missing?",
			wantIntent:    IntentSkillsGap,
			minConfidence: 0.6,
		},
		{
			name:          "jd match",
			query:         "How well do I match the job description?",
			wantIntent:    IntentJDMatch,
			minConfidence: 0.6,
		},
		{
			name:          "keyword suggestion",
			query:         "Which keywords should I add to my resume?",
			wantIntent:    IntentKeywordSuggestion,
			minConfidence: 0.6,
		},
		{
			name:          "rewrite request",
			query:         "Rewrite my resume and make it sound stronger",
			wantIntent:    IntentResumeRewrite,
			minConfidence: 0.6,
		},
		{
			name:       "bare ambiguous query",
			query:      "help",
			wantIntent: IntentClarificationNeeded,
		},
		{
			name:       "ambiguous with whitespace and case",
			query:      "  Fix It  ",
			wantIntent: IntentClarificationNeeded,
		},
		{
			name:       "no signal at all",
			query:      "tell me about my resume",
			wantIntent: IntentUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.query)
			if got.Intent != tt.wantIntent {
				t.Fatalf("Classify(%q).Intent = %s, want %s", tt.query, got.Intent, tt.wantIntent)
			}
			if got.Confidence < tt.minConfidence {
				t.Errorf("Classify(%q).Confidence = %v, want >= %v", tt.query, got.Confidence, tt.minConfidence)
			}
		})
	}
}

func TestClassifyLowConfidenceCandidates(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("add experience")
	if got.Intent != IntentClarificationNeeded {
		t.Fatalf("Intent = %s, want %s", got.Intent, IntentClarificationNeeded)
	}
	if got.Confidence >= confidenceThreshold {
		t.Errorf("Confidence = %v, want below threshold %v", got.Confidence, confidenceThreshold)
	}
	if len(got.Candidates) == 0 || len(got.Candidates) > 2 {
		t.Fatalf("Candidates = %v, want one or two entries", got.Candidates)
	}
	// equal scores, so declaration priority orders the candidates
	if got.Candidates[0] != IntentExperienceImprove {
		t.Errorf("Candidates[0] = %s, want %s", got.Candidates[0], IntentExperienceImprove)
	}
}

func TestClassifyConfidenceCappedAtBase(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("Why is my score so low? Explain the score rating please.")
	if got.Intent != IntentScoreExplanation {
		t.Fatalf("Intent = %s, want %s", got.Intent, IntentScoreExplanation)
	}
	if got.Confidence > 0.95 {
		t.Errorf("Confidence = %v, want capped at 0.95", got.Confidence)
	}
}

func TestDomainValidator(t *testing.T) {
	v := NewDomainValidator()

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "weather question", query: "What is the weather today?", want: false},
		{name: "sports question", query: "Who won the football game?", want: false},
		{name: "joke request", query: "tell me a joke", want: false},
		{name: "resume question", query: "How can I improve my resume?", want: true},
		{name: "score question", query: "Why is my score low?", want: true},
		{name: "skills question", query: "What skills am I missing for this role?", want: true},
		{name: "empty query", query: "", want: false},
		{name: "unrelated question", query: "What is the capital of France?", want: false},
		{
			name:  "off-topic wins over domain keyword",
			query: "What is the weather like at my job interview?",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Validate(tt.query); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

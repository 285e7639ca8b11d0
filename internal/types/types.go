package types

// PersonalInfo holds the contact block extracted from a resume
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
}

// ParsedResume is the pre-parsed resume object the scoring core consumes.
// It is produced by the resume segmentation collaborator (internal/resume)
// or supplied directly by an API caller.
type ParsedResume struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   string       `json:"experience"`
	Education    string       `json:"education"`
	Projects     string       `json:"projects"`
	Skills       []string     `json:"skills"`
	RawText      string       `json:"rawText"`
}

// SkillSet is the weighted requirement set extracted from a job description
type SkillSet struct {
	CoreSkills     []string `json:"coreSkills"`
	OptionalSkills []string `json:"optionalSkills"`
}

// ComparisonResult holds the tiered intersection of resume skills against
// job requirements. The four lists are disjoint; order follows the
// requirement list, not the resume.
type ComparisonResult struct {
	MatchedCoreSkills     []string `json:"matchedCoreSkills"`
	MissingCoreSkills     []string `json:"missingCoreSkills"`
	MatchedOptionalSkills []string `json:"matchedOptionalSkills"`
	MissingOptionalSkills []string `json:"missingOptionalSkills"`
}

// ScoreResult is the weighted ATS match score with its explanation
type ScoreResult struct {
	Score       int    `json:"score"`       // 0-100
	Explanation string `json:"explanation"` // counts per tier plus qualitative band
}

// IssueType classifies quality issues by severity
type IssueType string

const (
	IssueCritical IssueType = "critical"
	IssueWarning  IssueType = "warning"
)

// QualityIssue is a single structural problem found in a resume
type QualityIssue struct {
	Type    IssueType `json:"type"`
	Message string    `json:"message"`
}

// QualityResult scores resume structural completeness, independent of
// skill matching
type QualityResult struct {
	Score        int            `json:"score"` // 0-100
	Sections     map[string]int `json:"sections"`
	Issues       []QualityIssue `json:"issues"`
	Improvements []string       `json:"improvements"`
}

// SkillsBreakdown carries the full tiered comparison inside an AnalysisResult
type SkillsBreakdown struct {
	MatchedCore     []string `json:"matchedCore"`
	MissingCore     []string `json:"missingCore"`
	MatchedOptional []string `json:"matchedOptional"`
	MissingOptional []string `json:"missingOptional"`
}

// AnalysisResult is the top-level output of a scan. Created per request,
// immutable once returned; persistence is the caller's concern.
type AnalysisResult struct {
	Score           int             `json:"score"` // final gated score, 0-100
	Label           string          `json:"label"`
	SkillScore      int             `json:"skillScore"`
	QualityScore    int             `json:"qualityScore"`
	MatchedSkills   []string        `json:"matchedSkills"` // core + optional matches together
	MissingSkills   []string        `json:"missingSkills"` // core misses only
	SkillsBreakdown SkillsBreakdown `json:"skillsBreakdown"`
	Quality         QualityResult   `json:"quality"`
	Feedback        []string        `json:"feedback"` // summary first, then tier recommendations
}

// Improvement is one entry of a marginal-gain simulation: the score the
// resume would reach if exactly this skill were added
type Improvement struct {
	Skill    string `json:"skill"`
	Tier     string `json:"tier"` // "core" or "optional"
	NewScore int    `json:"newScore"`
	Gain     int    `json:"gain"`
}

// SimulationResult ranks missing skills by their one-at-a-time score impact.
// Gains are not additive across entries and the output must not imply they are.
type SimulationResult struct {
	CurrentScore int           `json:"currentScore"`
	Improvements []Improvement `json:"improvements"`
}

// AssistantResponse is the single response shape of the assistant pipeline.
// Failure variants (out of scope, clarification needed, invalid input,
// missing data) are first-class responses with Success=false, never errors.
type AssistantResponse struct {
	Success     bool           `json:"success"`
	Type        string         `json:"type"` // intent name or control pseudo-intent
	Message     string         `json:"message"`
	Intent      string         `json:"intent,omitempty"`
	Confidence  float64        `json:"confidence,omitempty"`
	NeedsLLM    bool           `json:"needsLLM"`
	Suggestions []string       `json:"suggestions"`
	Data        map[string]any `json:"data,omitempty"`
}

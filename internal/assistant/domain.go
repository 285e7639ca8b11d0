package assistant

import (
	"regexp"
	"strings"

	"github.com/Shrinivas-go/ats-backend/internal/rules"
)

// domainDensityThreshold admits a query when at least this share of its
// words are domain keywords.
const domainDensityThreshold = 0.3

// DefaultDomainKeywords are the terms that anchor a query to the
// resume/job domain. One occurrence is enough to admit a query.
var DefaultDomainKeywords = []string{
	"resume", "cv", "job", "jd", "ats", "score", "skill", "skills",
	"keyword", "keywords", "experience", "education", "section",
	"summary", "format", "formatting", "match", "interview", "career",
	"recruiter", "application", "hiring", "qualification", "bullet",
	"rewrite", "improve",
}

// DefaultOffTopicPatterns veto a query outright, independent of any
// keyword score.
var DefaultOffTopicPatterns = []string{
	`\b(weather|temperature|forecast|rain|sunny)\b`,
	`\b(football|cricket|soccer|basketball|tennis|match score of)\b`,
	`\b(recipe|cook|cooking|bake|restaurant)\b`,
	`\b(movie|film|song|music|lyrics|celebrity)\b`,
	`\b(election|president|politics|minister)\b`,
	`\b(stock price|bitcoin|crypto|lottery)\b`,
	`\btell me a joke\b`,
	`\b(capital of|population of)\b`,
}

// DomainValidator gates queries before any intent scoring. An off-topic
// pattern match refuses immediately; otherwise a query is admitted when it
// contains a domain keyword or its keyword density passes the threshold.
type DomainValidator struct {
	keywords []string
	offTopic []*regexp.Regexp
}

// NewDomainValidator returns a validator with the default keyword and
// off-topic tables.
func NewDomainValidator() *DomainValidator {
	return NewDomainValidatorWithTables(DefaultDomainKeywords, DefaultOffTopicPatterns)
}

// NewDomainValidatorWithTables returns a validator over custom tables.
// Off-topic patterns are compiled case-insensitively.
func NewDomainValidatorWithTables(keywords, offTopicPatterns []string) *DomainValidator {
	compiled := make([]*regexp.Regexp, 0, len(offTopicPatterns))
	for _, p := range offTopicPatterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return &DomainValidator{keywords: keywords, offTopic: compiled}
}

// Validate reports whether the query belongs to the resume/job domain.
func (v *DomainValidator) Validate(query string) bool {
	for _, pattern := range v.offTopic {
		if pattern.MatchString(query) {
			return false
		}
	}

	words := strings.Fields(query)
	if len(words) == 0 {
		return false
	}

	hits := 0
	for _, kw := range v.keywords {
		if rules.ContainsWord(query, kw) {
			hits++
		}
	}
	if hits >= 1 {
		return true
	}
	return float64(hits)/float64(len(words)) >= domainDensityThreshold
}

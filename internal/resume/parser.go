// Package resume segments plain-text resumes into the structured form the
// analysis pipeline consumes. It is a line-oriented heuristic parser: it
// finds contact details by pattern and splits the body on recognized
// section headings. Anything it cannot place stays in the raw text.
package resume

import (
	"regexp"
	"strings"

	"github.com/Shrinivas-go/ats-backend/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_-]+`)

	skillSeparators = regexp.MustCompile(`[,;|•·]+`)
	bulletPrefix    = regexp.MustCompile(`^[-*•·]\s*`)
)

// section heading aliases, lowercase
var sectionHeadings = map[string]string{
	"summary":                 "summary",
	"professional summary":    "summary",
	"objective":               "summary",
	"profile":                 "summary",
	"about":                   "summary",
	"experience":              "experience",
	"work experience":         "experience",
	"professional experience": "experience",
	"employment":              "experience",
	"employment history":      "experience",
	"work history":            "experience",
	"education":               "education",
	"academic background":     "education",
	"projects":                "projects",
	"personal projects":       "projects",
	"skills":                  "skills",
	"technical skills":        "skills",
	"core competencies":       "skills",
	"technologies":            "skills",
}

// Parse segments raw resume text. It never fails: unrecognized content is
// simply left out of the structured sections, and RawText always carries
// the full input.
func Parse(raw string) types.ParsedResume {
	parsed := types.ParsedResume{
		Skills:  []string{},
		RawText: raw,
	}

	parsed.PersonalInfo.Email = emailPattern.FindString(raw)
	parsed.PersonalInfo.Phone = strings.TrimSpace(phonePattern.FindString(raw))
	parsed.PersonalInfo.LinkedIn = linkedinPattern.FindString(raw)

	lines := strings.Split(raw, "\n")
	parsed.PersonalInfo.Name = guessName(lines)

	sections := splitSections(lines)
	parsed.Summary = sections["summary"]
	parsed.Experience = sections["experience"]
	parsed.Education = sections["education"]
	parsed.Projects = sections["projects"]
	parsed.Skills = splitSkills(sections["skills"])

	return parsed
}

// guessName takes the first non-empty line that does not look like
// contact data or a section heading.
func guessName(lines []string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.ContainsAny(trimmed, "@0123456789") {
			return ""
		}
		if _, isHeading := sectionHeadings[normalizeHeading(trimmed)]; isHeading {
			return ""
		}
		return trimmed
	}
	return ""
}

// splitSections walks the lines, switching buckets at each recognized
// heading. Text before the first heading belongs to no section.
func splitSections(lines []string) map[string]string {
	bodies := map[string][]string{}
	current := ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if section, ok := sectionHeadings[normalizeHeading(trimmed)]; ok {
			current = section
			continue
		}
		if current == "" || trimmed == "" {
			continue
		}
		bodies[current] = append(bodies[current], trimmed)
	}

	out := make(map[string]string, len(bodies))
	for section, body := range bodies {
		out[section] = strings.Join(body, "\n")
	}
	return out
}

func normalizeHeading(line string) string {
	h := strings.ToLower(strings.TrimSpace(line))
	h = strings.TrimRight(h, ":")
	return strings.TrimSpace(h)
}

// splitSkills tokenizes a skills section body on list separators and
// bullet prefixes. Deduplication and canonicalization happen downstream.
func splitSkills(body string) []string {
	if body == "" {
		return []string{}
	}
	skills := []string{}
	for _, line := range strings.Split(body, "\n") {
		line = bulletPrefix.ReplaceAllString(strings.TrimSpace(line), "")
		for _, token := range skillSeparators.Split(line, -1) {
			token = strings.TrimSpace(token)
			if token != "" {
				skills = append(skills, token)
			}
		}
	}
	return skills
}

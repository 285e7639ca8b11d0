package resume

import (
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `Jane Smith
jane.smith@example.com | +1 (555) 123-4567
linkedin.com/in/janesmith

Summary
Backend engineer with six years building distributed systems.

Experience
- Led migration of a monolith to Go microservices at Acme Corp.
- Reduced p99 latency by 40% by introducing Redis caching.

Education
B.S. Computer Science, State University

Projects
- Open source contributor to a popular HTTP router.

Skills
Go, Docker, Kubernetes | PostgreSQL; REST APIs
- GraphQL
`

func TestParse(t *testing.T) {
	parsed := Parse(sampleResume)

	if parsed.PersonalInfo.Name != "Jane Smith" {
		t.Errorf("Name = %q, want %q", parsed.PersonalInfo.Name, "Jane Smith")
	}
	if parsed.PersonalInfo.Email != "jane.smith@example.com" {
		t.Errorf("Email = %q, want %q", parsed.PersonalInfo.Email, "jane.smith@example.com")
	}
	if parsed.PersonalInfo.Phone == "" {
		t.Error("Phone not detected")
	}
	if parsed.PersonalInfo.LinkedIn != "linkedin.com/in/janesmith" {
		t.Errorf("LinkedIn = %q, want %q", parsed.PersonalInfo.LinkedIn, "linkedin.com/in/janesmith")
	}
	if !strings.Contains(parsed.Summary, "distributed systems") {
		t.Errorf("Summary = %q, want the summary body", parsed.Summary)
	}
	if !strings.Contains(parsed.Experience, "Acme Corp") {
		t.Errorf("Experience = %q, want the experience body", parsed.Experience)
	}
	if !strings.Contains(parsed.Education, "State University") {
		t.Errorf("Education = %q, want the education body", parsed.Education)
	}
	if !strings.Contains(parsed.Projects, "HTTP router") {
		t.Errorf("Projects = %q, want the projects body", parsed.Projects)
	}

	wantSkills := []string{"Go", "Docker", "Kubernetes", "PostgreSQL", "REST APIs", "GraphQL"}
	if !reflect.DeepEqual(parsed.Skills, wantSkills) {
		t.Errorf("Skills = %v, want %v", parsed.Skills, wantSkills)
	}
	if parsed.RawText != sampleResume {
		t.Error("RawText must carry the full input")
	}
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, got string)
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "whitespace only",
			input: "  \n\n  ",
		},
		{
			name:  "no recognizable sections",
			input: "just a paragraph of prose with nothing structured about it",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.input)
			if parsed.Skills == nil {
				t.Error("Skills must be non-nil")
			}
			if parsed.RawText != tt.input {
				t.Error("RawText must carry the input unchanged")
			}
			if parsed.Summary != "" || parsed.Experience != "" {
				t.Errorf("sections should be empty, got Summary=%q Experience=%q", parsed.Summary, parsed.Experience)
			}
		})
	}
}

func TestParseHeadingVariants(t *testing.T) {
	input := "WORK EXPERIENCE:\nBuilt things.\n\nTechnical Skills\nGo, Rust\n"
	parsed := Parse(input)

	if !strings.Contains(parsed.Experience, "Built things.") {
		t.Errorf("Experience = %q, want body under WORK EXPERIENCE:", parsed.Experience)
	}
	if len(parsed.Skills) != 2 {
		t.Errorf("Skills = %v, want two entries", parsed.Skills)
	}
}

func TestGuessNameSkipsContactFirstLine(t *testing.T) {
	parsed := Parse("jane@example.com\nSummary\nHi.")
	if parsed.PersonalInfo.Name != "" {
		t.Errorf("Name = %q, want empty when the resume opens with contact data", parsed.PersonalInfo.Name)
	}
}

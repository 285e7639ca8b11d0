package assistant

// Response templates, keyed by decision category. All data they reference
// comes from the decision engine, so every rendered message is fully
// determined by the analysis result and the query.
var responseTemplates = map[string]*Template{
	"score_explanation": MustParseTemplate(
		"Your resume scored {{score}} out of 100 ({{label}}). " +
			"The skill match contributed {{skillScore}} and resume quality contributed {{qualityScore}}. " +
			"{{matchedCount}} required skills were found in your resume." +
			"{{#hasMissingCore}} The biggest factor holding the score down is the missing core skills:{{#missingCore}} {{.}};{{/missingCore}} adding these would raise it the most.{{/hasMissingCore}}"),

	"skills_gap": MustParseTemplate(
		"Skills gap urgency: {{urgency}}." +
			"{{#hasMissingCore}} Missing core skills:{{#missingCore}} {{.}};{{/missingCore}}{{/hasMissingCore}}" +
			"{{#hasMissingOptional}} Missing optional skills:{{#missingOptional}} {{.}};{{/missingOptional}}{{/hasMissingOptional}}" +
			"{{#noGap}} You already cover every core skill in the job description.{{/noGap}}"),

	"jd_match": MustParseTemplate(
		"Against this job description your resume is a {{fitBand}} with a score of {{score}} ({{label}})." +
			"{{#hasMissingCore}} To strengthen the match, cover:{{#missingCore}} {{.}};{{/missingCore}}{{/hasMissingCore}}"),

	"experience_improve": MustParseTemplate(
		"Your experience section scores {{qualityScore}} on resume quality." +
			"{{#hasImprovements}} Focus on:{{#improvements}} {{.}};{{/improvements}}{{/hasImprovements}}" +
			" Lead each bullet with a strong action verb and a measurable result."),

	"keyword_suggestion": MustParseTemplate(
		"{{#hasKeywords}}Keywords worth adding, in priority order:{{#keywords}} {{.}};{{/keywords}} " +
			"place each one inside a bullet that demonstrates actual use.{{/hasKeywords}}" +
			"{{#noKeywords}}Your resume already covers every skill the job description asks for.{{/noKeywords}}"),

	"formatting_feedback": MustParseTemplate(
		"Resume quality score: {{qualityScore}} out of 100." +
			"{{#hasIssues}} Issues found, most severe first:{{#issues}} {{.}};{{/issues}}{{/hasIssues}}" +
			"{{#hasImprovements}} Suggested improvements:{{#improvements}} {{.}};{{/improvements}}{{/hasImprovements}}"),

	"resume_rewrite": MustParseTemplate(
		"A deterministic rewrite outline based on your current score of {{score}}:" +
			"{{#hasMissingCore}} weave in the missing core skills ({{#missingCore}}{{.}}; {{/missingCore}}),{{/hasMissingCore}}" +
			" restructure bullets as action verb + task + measurable outcome, and keep each bullet under two lines." +
			"{{#hasImprovements}} Also:{{#improvements}} {{.}};{{/improvements}}{{/hasImprovements}}"),

	"section_analysis": MustParseTemplate(
		"Section-by-section breakdown (points earned):{{#sections}} {{.}};{{/sections}}" +
			" Overall quality score: {{qualityScore}}." +
			"{{#hasIssues}} Issues:{{#issues}} {{.}};{{/issues}}{{/hasIssues}}"),

	"clarification_needed": MustParseTemplate(
		"I'm not quite sure what you're asking. Did you mean one of these?{{#candidates}} {{.}};{{/candidates}}"),

	"unknown": MustParseTemplate(
		"I couldn't match that question to anything I can help with. " +
			"Try asking about your score, missing skills, keywords, or formatting."),

	"out_of_scope": MustParseTemplate(
		"I can only help with resume and job application questions. " +
			"Ask me about your ATS score, skills gap, keywords, or resume formatting."),

	"invalid_input": MustParseTemplate(
		"Please type a question about your resume or job application."),

	"missing_data": MustParseTemplate(
		"I need an analysis of your resume against a job description before I can answer that. " +
			"Run an analysis first, then ask again."),
}

package skills

// The tables below are the default rule data for the skill engines. They are
// injected at construction time so tests and deployments can substitute their
// own; nothing in this package mutates them.

// DefaultAliases maps lowercase raw tokens to canonical display names.
// Lookup is exact after lowercasing and trimming. Unmapped tokens pass
// through unchanged, which makes alias misses exact-match failures rather
// than fuzzy guesses.
var DefaultAliases = map[string]string{
	"js":            "JavaScript",
	"javascript":    "JavaScript",
	"ts":            "TypeScript",
	"typescript":    "TypeScript",
	"py":            "Python",
	"python":        "Python",
	"golang":        "Go",
	"go":            "Go",
	"node":          "Node.js",
	"nodejs":        "Node.js",
	"node.js":       "Node.js",
	"react":         "React",
	"reactjs":       "React",
	"react.js":      "React",
	"vue":           "Vue.js",
	"vuejs":         "Vue.js",
	"vue.js":        "Vue.js",
	"angular":       "Angular",
	"angularjs":     "Angular",
	"next":          "Next.js",
	"nextjs":        "Next.js",
	"next.js":       "Next.js",
	"express":       "Express",
	"expressjs":     "Express",
	"express.js":    "Express",
	"k8s":           "Kubernetes",
	"kubernetes":    "Kubernetes",
	"docker":        "Docker",
	"aws":           "AWS",
	"gcp":           "Google Cloud",
	"azure":         "Azure",
	"postgres":      "PostgreSQL",
	"postgresql":    "PostgreSQL",
	"mongo":         "MongoDB",
	"mongodb":       "MongoDB",
	"mysql":         "MySQL",
	"redis":         "Redis",
	"sql":           "SQL",
	"html":          "HTML",
	"html5":         "HTML",
	"css":           "CSS",
	"css3":          "CSS",
	"sass":          "Sass",
	"tailwind":      "Tailwind CSS",
	"tailwindcss":   "Tailwind CSS",
	"java":          "Java",
	"c++":           "C++",
	"cpp":           "C++",
	"c#":            "C#",
	"csharp":        "C#",
	"ruby":          "Ruby",
	"rails":         "Ruby on Rails",
	"php":           "PHP",
	"rust":          "Rust",
	"swift":         "Swift",
	"kotlin":        "Kotlin",
	"graphql":       "GraphQL",
	"rest":          "REST",
	"grpc":          "gRPC",
	"git":           "Git",
	"github":        "GitHub",
	"ci/cd":         "CI/CD",
	"cicd":          "CI/CD",
	"jenkins":       "Jenkins",
	"terraform":     "Terraform",
	"ansible":       "Ansible",
	"linux":         "Linux",
	"bash":          "Bash",
	"ml":            "Machine Learning",
	"ai":            "Artificial Intelligence",
	"nlp":           "NLP",
	"pandas":        "Pandas",
	"numpy":         "NumPy",
	"tensorflow":    "TensorFlow",
	"pytorch":       "PyTorch",
	"django":        "Django",
	"flask":         "Flask",
	"spring":        "Spring Boot",
	"kafka":         "Kafka",
	"rabbitmq":      "RabbitMQ",
	"elasticsearch": "Elasticsearch",
	"jira":          "Jira",
	"agile":         "Agile",
	"scrum":         "Scrum",

	// multi-word variants
	"amazon web services": "AWS",
	"google cloud":        "Google Cloud",
	"ruby on rails":       "Ruby on Rails",
	"spring boot":         "Spring Boot",
	"machine learning":    "Machine Learning",
	"tailwind css":        "Tailwind CSS",
}

// DefaultSkills is the canonical skill vocabulary the extractor scans job
// text for. Aliases of these names are also searched and resolved through
// DefaultAliases.
var DefaultSkills = []string{
	"JavaScript", "TypeScript", "Python", "Go", "Java", "C++", "C#", "Ruby",
	"PHP", "Rust", "Swift", "Kotlin",
	"React", "Vue.js", "Angular", "Next.js", "Node.js", "Express",
	"Django", "Flask", "Spring Boot", "Ruby on Rails",
	"HTML", "CSS", "Sass", "Tailwind CSS",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
	"GraphQL", "REST", "gRPC", "Kafka", "RabbitMQ",
	"Docker", "Kubernetes", "AWS", "Google Cloud", "Azure",
	"Terraform", "Ansible", "Jenkins", "CI/CD", "Git", "GitHub",
	"Linux", "Bash",
	"Machine Learning", "Artificial Intelligence", "NLP",
	"Pandas", "NumPy", "TensorFlow", "PyTorch",
	"Jira", "Agile", "Scrum",
}

// DefaultCoreTriggers mark a chunk as stating mandatory requirements
var DefaultCoreTriggers = []string{
	"required",
	"must have",
	"must-have",
	"essential",
	"mandatory",
	"requirements",
	"proficiency in",
	"proficient in",
	"strong knowledge",
	"expertise in",
}

// DefaultOptionalTriggers mark a chunk as stating preferred extras
var DefaultOptionalTriggers = []string{
	"nice to have",
	"nice-to-have",
	"preferred",
	"bonus",
	"desirable",
	"good to have",
	"familiarity with",
	"a plus",
	"advantageous",
}

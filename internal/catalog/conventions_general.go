package catalog

var generalQuestions = []Question{
	{
		ID:           "git-workflow",
		Category:     "Version Control",
		Question:     "What git workflow should be followed?",
		Description:  "AI sessions produce many small changes; the commit discipline matters.",
		ApplicableTo: []string{"*"},
		Required:     false,
		Options: []Option{
			{
				ID:            "trunk-based",
				Label:         "Trunk-based with small commits",
				Description:   "Commit directly to main in small, tested increments.",
				Recommended:   true,
				GeneratedText: "**Version Control**: Trunk-based development. Small commits, each leaving the project buildable. Commit messages are imperative mood, under 72 characters, describing the change not the session. One task per commit where practical.",
			},
			{
				ID:            "feature-branches",
				Label:         "Feature branches + pull requests",
				Description:   "Each feature or task gets a branch and a PR.",
				GeneratedText: "**Version Control**: One branch per task, named `task-NNN-short-slug`. Open a pull request when the task's definition of done is met. Squash-merge to keep main linear.",
			},
		},
	},
	{
		ID:           "testing-approach",
		Category:     "Testing",
		Question:     "What testing discipline applies?",
		Description:  "State explicitly what must be tested so AI sessions don't skip it.",
		ApplicableTo: []string{"*"},
		Required:     false,
		Options: []Option{
			{
				ID:            "behavior-first",
				Label:         "Behavior tests for every feature",
				Description:   "Each feature ships with tests for its acceptance criteria.",
				Recommended:   true,
				GeneratedText: "**Testing**: Every feature ships with tests covering its acceptance criteria before it is considered done. Test files live next to the code they test. Prefer testing observable behavior over implementation details; do not mock what you can use for real.",
			},
			{
				ID:            "critical-path",
				Label:         "Critical paths only",
				Description:   "Test auth, payments, and data integrity; skip presentational code.",
				GeneratedText: "**Testing**: Test critical paths only: authentication, payment flows, data mutations. Presentational components are exercised manually. When a bug is fixed, a regression test is mandatory.",
			},
		},
	},
	{
		ID:           "comments-docs",
		Category:     "Documentation",
		Question:     "When should code be commented?",
		Description:  "Keeps AI-generated comment noise under control.",
		ApplicableTo: []string{"*"},
		Required:     false,
		Options: []Option{
			{
				ID:            "sparse-comments",
				Label:         "Sparse: invariants and surprises only",
				Description:   "Code should read clearly; comments explain only what code cannot.",
				Recommended:   true,
				GeneratedText: "**Documentation**: Comment only invariants, constraints, and genuine surprises. Never comment what the next line obviously does. Public APIs get a one-line doc comment. Delete commented-out code instead of keeping it.",
			},
			{
				ID:            "thorough-comments",
				Label:         "Thorough: every non-trivial function",
				Description:   "Every exported function and complex block gets an explanation.",
				GeneratedText: "**Documentation**: Every exported function carries a doc comment stating purpose, parameters, and failure modes. Complex blocks get a one-line intent comment above them.",
			},
		},
	},
	{
		ID:           "dependency-policy",
		Category:     "Dependencies",
		Question:     "How freely may new dependencies be added?",
		Description:  "AI assistants love adding packages; set the bar explicitly.",
		ApplicableTo: []string{"*"},
		Required:     false,
		Options: []Option{
			{
				ID:            "conservative",
				Label:         "Conservative: justify every addition",
				Description:   "New dependencies need a stated reason and no lighter alternative.",
				Recommended:   true,
				GeneratedText: "**Dependencies**: Do not add a dependency without checking whether the standard library or an existing dependency covers the need. A new package must be actively maintained and widely used. Never add a package for a single small function.",
			},
			{
				ID:            "pragmatic",
				Label:         "Pragmatic: prefer well-known packages",
				Description:   "Use established packages freely rather than reimplementing.",
				GeneratedText: "**Dependencies**: Prefer well-known packages over hand-rolled implementations. Pin versions. Remove a dependency the moment it stops being used.",
			},
		},
	},
	{
		ID:           "secrets-config",
		Category:     "Configuration",
		Question:     "How are secrets and configuration handled?",
		Description:  "The convention most often violated by generated code.",
		ApplicableTo: []string{"*"},
		Required:     true,
		Options: []Option{
			{
				ID:            "env-vars",
				Label:         "Environment variables + .env.example",
				Description:   "All secrets via env vars; a committed example file documents them.",
				Recommended:   true,
				GeneratedText: "**Configuration**: All secrets and environment-specific values come from environment variables. `.env` is gitignored; `.env.example` documents every variable with a placeholder. Never hardcode keys, tokens, or connection strings, including in tests.",
			},
			{
				ID:            "config-service",
				Label:         "Central config module",
				Description:   "A single typed config module reads and validates all settings at startup.",
				GeneratedText: "**Configuration**: A single config module loads and validates all settings at startup and fails fast on missing values. The rest of the codebase imports config from that module, never from `process.env` directly.",
			},
		},
	},
}

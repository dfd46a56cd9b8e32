package generator

import (
	"fmt"
	"strings"

	"framewright/internal/domain"
)

// RenderPrime produces PRIME.md, the navigator document. Deliberately the
// smallest file in the set: a fixed-budget orientation summary that must
// fit trivially in any context window, so it carries counts, never
// per-entity lists, and cannot grow with feature or task count.
func RenderPrime(s *domain.ProjectState) string {
	purpose := strings.TrimSpace(s.Identity.Purpose)
	if purpose == "" {
		purpose = "_No purpose statement yet._"
	}

	stack := techStackSummary(s.Identity.TechStack)
	if stack == "" {
		stack = "_Not selected yet._"
	}

	dbLine := string(s.Database.Approach)
	if s.Database.Approach == domain.ApproachSkip {
		dbLine = "skipped"
	}

	lines := []string{
		"# " + displayName(s) + " — Start Here",
		"",
		"> Read this file first in every AI session. It orients you in under a minute.",
		"",
		"**Purpose:** " + purpose,
		"",
		"**Stack:** " + stack,
		"",
		fmt.Sprintf("**Scope:** %d feature%s · %d task%s · database %s",
			len(s.Features), plural(len(s.Features)),
			len(s.Tasks), plural(len(s.Tasks)), dbLine),
		"",
		"---",
		"",
		"## Reading Order",
		"",
		"1. [PROJECT.md](PROJECT.md) — what this project is and who it serves",
		"2. [docs/CONVENTIONS-QUICKREF.md](docs/CONVENTIONS-QUICKREF.md) — the rules for every session",
		"3. [docs/ARCHITECTURE.md](docs/ARCHITECTURE.md) — how it is built",
		"4. [features/FEATURES-INDEX.md](features/FEATURES-INDEX.md) — what to build",
		"5. [tasks/TASKS-MASTER.md](tasks/TASKS-MASTER.md) — the work items",
		"",
		"Starting a task? Copy its prompt from [CONTEXT-WINDOW-STARTERS.md](CONTEXT-WINDOW-STARTERS.md).",
		"",
		"---",
		"",
		"*Full overview: [PROJECT.md](PROJECT.md)*",
		"",
	}

	return strings.Join(lines, "\n")
}

package generator

import (
	"fmt"
	"strings"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

// RenderProject produces PROJECT.md, the project summary. This is the one
// document gated by the word-count thresholds; everything here should earn
// its words.
func RenderProject(s *domain.ProjectState) string {
	purpose := strings.TrimSpace(s.Identity.Purpose)
	if purpose == "" {
		purpose = "_No purpose statement defined._"
	}

	lines := []string{
		"# " + displayName(s),
		"",
		purpose,
		"",
		"---",
		"",
		"## Target Users",
		"",
		"> Who uses this, and what problem does it solve for them? Refine this section as the product sharpens.",
		"",
	}

	if s.Identity.ProjectMode == domain.ModeExisting {
		lines = append(lines,
			"_Existing project being brought under AI-assisted development; users are the current user base._",
			"")
	} else {
		lines = append(lines,
			"_To be validated: the primary user is whoever feels the pain described in the purpose above._",
			"")
	}

	lines = append(lines, "## Tech Stack", "")
	bullets := stackBullets(s.Identity.TechStack)
	if len(bullets) > 0 {
		lines = append(lines, bullets...)
	} else {
		lines = append(lines, "_No tech stack selected._")
	}
	for _, extra := range s.Identity.TechStack.Additional {
		if extra != "" {
			lines = append(lines, "- **Additional:** "+extra)
		}
	}
	lines = append(lines, "")

	if s.Architecture.AppType != "" {
		lines = append(lines,
			"## Application Type",
			"",
			catalog.AppTypeLabel(s.Architecture.AppType),
			"")
	}

	lines = append(lines,
		"## Scope at a Glance",
		"",
		fmt.Sprintf("- %d feature%s — see [features/FEATURES-INDEX.md](features/FEATURES-INDEX.md)",
			len(s.Features), plural(len(s.Features))),
		fmt.Sprintf("- %d task%s — see [tasks/TASKS-MASTER.md](tasks/TASKS-MASTER.md)",
			len(s.Tasks), plural(len(s.Tasks))),
		"")

	if s.Identity.ProjectMode == domain.ModeExisting && strings.TrimSpace(s.Identity.ExistingFolderTree) != "" {
		lines = append(lines,
			"## Existing Folder Structure (Imported)",
			"",
			"```",
			strings.TrimSpace(s.Identity.ExistingFolderTree),
			"```",
			"")
	}

	lines = append(lines,
		"## How to Use This Framework",
		"",
		"1. Start every AI session by reading [PRIME.md](PRIME.md).",
		"2. Follow the conventions in [docs/CONVENTIONS.md](docs/CONVENTIONS.md) without exception.",
		"3. Work one task at a time; each task file states its definition of done and boundaries.",
		"",
		"---",
		"",
		"*Navigator: [PRIME.md](PRIME.md) · Conventions: [docs/CONVENTIONS.md](docs/CONVENTIONS.md)*",
		"")

	return strings.Join(lines, "\n")
}

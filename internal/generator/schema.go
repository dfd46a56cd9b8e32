package generator

import (
	"strings"

	"framewright/internal/domain"
)

// RenderSchema produces docs/SCHEMA.md. It is only emitted when the
// database approach is not "skip"; callers honor that rule, but a
// skipped state still renders a minimal stub for direct use.
func RenderSchema(s *domain.ProjectState) string {
	if s.Database.Approach == domain.ApproachSkip {
		return "# Database Schema — " + displayName(s) + "\n\n_No database for this project._\n"
	}

	lines := []string{
		"# Database Schema — " + displayName(s),
		"",
		"---",
		"",
	}

	switch s.Database.Approach {
	case domain.ApproachPlainEnglish:
		if desc := strings.TrimSpace(s.Database.PlainEnglishDescription); desc != "" {
			lines = append(lines, "## Data Model (Plain English)", "", desc, "")
		}
	case domain.ApproachPasteSQL:
		if sql := strings.TrimSpace(s.Database.PastedSchema); sql != "" {
			lines = append(lines, "## Schema (SQL)", "", "```sql", sql, "```", "")
		}
	}

	if existing := strings.TrimSpace(s.Identity.ExistingSchema); existing != "" {
		lines = append(lines, "## Existing Schema (Imported)", "", "```", existing, "```", "")
	}

	if len(s.Database.Tables) > 0 {
		lines = append(lines, "## Tables", "")
		for _, t := range s.Database.Tables {
			lines = append(lines, "### "+t.Name, "")
			if desc := strings.TrimSpace(t.Description); desc != "" {
				lines = append(lines, desc, "")
			}
			if cols := strings.TrimSpace(t.Columns); cols != "" {
				lines = append(lines, "**Columns:**", "", cols, "")
			}
		}
	} else if strings.TrimSpace(s.Database.PlainEnglishDescription) == "" &&
		strings.TrimSpace(s.Database.PastedSchema) == "" &&
		strings.TrimSpace(s.Identity.ExistingSchema) == "" {
		lines = append(lines, "_No schema details captured yet._", "")
	}

	lines = append(lines,
		"---",
		"",
		"*See [ARCHITECTURE.md](ARCHITECTURE.md) for how data flows through the system.*",
		"")

	return strings.Join(lines, "\n")
}

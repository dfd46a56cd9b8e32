package generator

import (
	"fmt"
	"strings"

	"framewright/internal/domain"
)

// RenderFeaturesIndex produces features/FEATURES-INDEX.md
func RenderFeaturesIndex(s *domain.ProjectState) string {
	lines := []string{
		"# Features Index",
		"",
		fmt.Sprintf("> %d feature%s defined.", len(s.Features), plural(len(s.Features))),
		"",
	}

	if len(s.Features) == 0 {
		lines = append(lines, "_No features defined yet._", "")
	} else {
		lines = append(lines,
			"| Feature | Description | Tasks |",
			"|---------|-------------|-------|")
		for _, f := range s.Features {
			desc := firstNonBlankLine(f.Description)
			if desc == "" {
				desc = "—"
			}
			taskCount := len(s.TasksForFeature(f.ID))
			lines = append(lines, fmt.Sprintf("| [%s](%s.md) | %s | %d |",
				f.Name, FeatureSlug(f), desc, taskCount))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"---",
		"",
		"*See [PROJECT.md](../PROJECT.md) for the project overview.*",
		"")

	return strings.Join(lines, "\n")
}

// RenderFeature produces features/<slug>.md for one feature
func RenderFeature(s *domain.ProjectState, f domain.Feature) string {
	lines := []string{
		"# Feature: " + f.Name,
		"",
	}

	if desc := strings.TrimSpace(f.Description); desc != "" {
		lines = append(lines, desc, "")
	}

	lines = append(lines, "## Acceptance Criteria", "")
	if len(f.AcceptanceCriteria) > 0 {
		for _, c := range f.AcceptanceCriteria {
			lines = append(lines, "- "+c)
		}
	} else {
		lines = append(lines, "_No acceptance criteria defined._")
	}
	lines = append(lines, "", "## Business Rules", "")
	if len(f.BusinessRules) > 0 {
		for _, r := range f.BusinessRules {
			lines = append(lines, "- "+r)
		}
	} else {
		lines = append(lines, "_No business rules defined._")
	}
	lines = append(lines, "")

	// Table references are by name; names with no matching table are
	// dropped rather than rendered as dead links.
	var tables []string
	for _, name := range f.RelatedTables {
		if s.TableByName(name) {
			tables = append(tables, name)
		}
	}
	if len(tables) > 0 {
		lines = append(lines, "## Related Tables", "")
		for _, name := range tables {
			lines = append(lines, "- `"+name+"` (see [SCHEMA.md](../docs/SCHEMA.md))")
		}
		lines = append(lines, "")
	}

	relatedTasks := s.TasksForFeature(f.ID)
	if len(relatedTasks) > 0 {
		lines = append(lines, "## Related Tasks", "")
		for _, t := range relatedTasks {
			lines = append(lines, fmt.Sprintf("- [%s: %s](../tasks/%s.md)",
				TaskNumberLabel(t.TaskNumber), t.Name, TaskFileStem(t)))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"---",
		"",
		"*See [Features Index](FEATURES-INDEX.md) | [PROJECT.md](../PROJECT.md)*",
		"")

	return strings.Join(lines, "\n")
}

package generator

import (
	"fmt"
	"strings"

	"framewright/internal/domain"
)

var statusLabels = map[domain.TaskStatus]string{
	domain.StatusNotStarted: "Not started",
	domain.StatusInProgress: "In progress",
	domain.StatusDone:       "Done",
	domain.StatusBlocked:    "Blocked",
}

// StatusLabel renders a task status for display
func StatusLabel(st domain.TaskStatus) string {
	if l, ok := statusLabels[st]; ok {
		return l
	}
	return string(st)
}

// RenderTasksMaster produces tasks/TASKS-MASTER.md
func RenderTasksMaster(s *domain.ProjectState) string {
	lines := []string{
		"# Tasks Master",
		"",
		fmt.Sprintf("> %d task%s defined.", len(s.Tasks), plural(len(s.Tasks))),
		"",
	}

	if len(s.Tasks) == 0 {
		lines = append(lines, "_No tasks defined yet._", "")
	} else {
		lines = append(lines,
			"| ID | Name | Feature(s) | Status |",
			"|----|------|------------|--------|")
		for _, t := range s.Tasks {
			featureCell := "—"
			var names []string
			for _, id := range t.FeatureIDs {
				if f := s.FeatureByID(id); f != nil {
					names = append(names, f.Name)
				}
			}
			if len(names) > 0 {
				featureCell = strings.Join(names, ", ")
			}
			lines = append(lines, fmt.Sprintf("| [%s](%s.md) | %s | %s | %s |",
				TaskNumberLabel(t.TaskNumber), TaskFileStem(t), t.Name, featureCell, StatusLabel(t.Status)))
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

// RenderTask produces tasks/task-NNN[-slug].md for one task
func RenderTask(s *domain.ProjectState, t domain.Task) string {
	title := "# " + TaskNumberLabel(t.TaskNumber)
	if t.Name != "" {
		title += ": " + t.Name
	}
	lines := []string{title, ""}

	var features []domain.Feature
	for _, id := range t.FeatureIDs {
		if f := s.FeatureByID(id); f != nil {
			features = append(features, *f)
		}
	}
	if len(features) > 0 {
		lines = append(lines, "## Related Features", "")
		for _, f := range features {
			lines = append(lines, fmt.Sprintf("- [%s](../features/%s.md)", f.Name, FeatureSlug(f)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## Definition of Done", "")
	if dod := strings.TrimSpace(t.DefinitionOfDone); dod != "" {
		lines = append(lines, dod)
	} else {
		lines = append(lines, "_Not specified._")
	}
	lines = append(lines, "")

	if fb := strings.TrimSpace(t.FileBoundaries); fb != "" {
		lines = append(lines, "## File Boundaries", "", fb, "")
	}
	if oos := strings.TrimSpace(t.OutOfScope); oos != "" {
		lines = append(lines, "## Out of Scope", "", oos, "")
	}

	lines = append(lines,
		"**Status:** "+StatusLabel(t.Status),
		"",
		"---",
		"",
		"*See [Tasks Master](TASKS-MASTER.md) | [PROJECT.md](../PROJECT.md)*",
		"")

	return strings.Join(lines, "\n")
}

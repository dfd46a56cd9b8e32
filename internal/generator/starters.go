package generator

import (
	"fmt"
	"sort"
	"strings"

	"framewright/internal/domain"
)

// RenderContextStarters produces CONTEXT-WINDOW-STARTERS.md: one
// copy-pasteable reading list per task, in task-number order.
func RenderContextStarters(s *domain.ProjectState) string {
	lines := []string{
		"# Context Window Starters — " + displayName(s),
		"",
		"Paste the block for the task you are working on at the start of a",
		"fresh session so the assistant reads the right files in the right",
		"order before touching code.",
		"",
	}

	if len(s.Tasks) == 0 {
		lines = append(lines, "_No tasks defined yet. Add tasks to get per-task starters._", "")
	} else {
		ordered := make([]domain.Task, len(s.Tasks))
		copy(ordered, s.Tasks)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].TaskNumber < ordered[j].TaskNumber
		})
		for _, t := range ordered {
			header := "## " + TaskNumberLabel(t.TaskNumber)
			if t.Name != "" {
				header += ": " + t.Name
			}
			lines = append(lines, header, "", "```")
			for _, step := range starterReadingOrder(s, t) {
				lines = append(lines, step)
			}
			lines = append(lines, "```", "")
		}
	}

	lines = append(lines,
		"---",
		"",
		"*Generated from [PROJECT.md](PROJECT.md); regenerate after changing tasks.*",
		"")

	return strings.Join(lines, "\n")
}

// starterReadingOrder builds the numbered read list for one task. The
// schema document is substituted for the architecture document only when
// the task touches a feature with existing related tables.
func starterReadingOrder(s *domain.ProjectState, t domain.Task) []string {
	steps := []string{
		"1. Read PROJECT.md",
		"2. Read docs/CONVENTIONS-QUICKREF.md",
	}

	dataHeavy := false
	if s.Database.Approach != domain.ApproachSkip {
		for _, id := range t.FeatureIDs {
			f := s.FeatureByID(id)
			if f == nil {
				continue
			}
			for _, name := range f.RelatedTables {
				if s.TableByName(name) {
					dataHeavy = true
				}
			}
		}
	}
	if dataHeavy {
		steps = append(steps, "3. Read docs/SCHEMA.md")
	} else {
		steps = append(steps, "3. Read docs/ARCHITECTURE.md")
	}

	n := 4
	for _, id := range t.FeatureIDs {
		if f := s.FeatureByID(id); f != nil {
			steps = append(steps, fmt.Sprintf("%d. Read %s", n, FeaturePath(*f)))
			n++
		}
	}
	steps = append(steps, fmt.Sprintf("%d. Read %s and begin work", n, TaskPath(t)))
	return steps
}

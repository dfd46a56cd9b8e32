package generator

import (
	"strings"

	"framewright/internal/domain"
)

// RenderConventions produces docs/CONVENTIONS.md: every resolved decision's
// full generated text, grouped by category in catalog order. Decisions
// referencing stale catalog ids are dropped silently; regeneration after a
// catalog update self-heals the document.
func RenderConventions(s *domain.ProjectState, src ConventionSource) string {
	resolved := resolveDecisions(s, src)

	lines := []string{
		"# Conventions",
		"",
		"> These conventions must be followed in all code written for this project.",
		"> Read this file at the start of every coding session.",
		"",
		"---",
		"",
	}

	if len(resolved) == 0 {
		lines = append(lines, "_No conventions configured._", "")
	}

	var lastCategory string
	for _, r := range resolved {
		if r.Category != lastCategory {
			if lastCategory != "" {
				lines = append(lines, "---", "")
			}
			lines = append(lines, "## "+r.Category, "")
			lastCategory = r.Category
		}
		lines = append(lines, r.GeneratedText, "")
	}

	if custom := strings.TrimSpace(s.Conventions.CustomConventions); custom != "" {
		lines = append(lines, "## Additional Conventions", "", custom, "")
	}

	lines = append(lines,
		"---",
		"",
		"*Quick reference: [CONVENTIONS-QUICKREF.md](CONVENTIONS-QUICKREF.md) · Project: [PROJECT.md](../PROJECT.md)*",
		"")

	return strings.Join(lines, "\n")
}

// RenderConventionsQuickRef produces docs/CONVENTIONS-QUICKREF.md: one
// line per decision, the first non-blank line of the chosen option's
// generated text with emphasis stripped, prefixed by its category. A
// summarization rule, not a length truncation.
func RenderConventionsQuickRef(s *domain.ProjectState, src ConventionSource) string {
	resolved := resolveDecisions(s, src)

	lines := []string{
		"# Conventions — Quick Reference",
		"",
		"> The most critical rules for this project. Read this at the start of every session.",
		"> For full detail, see `CONVENTIONS.md`.",
		"",
		"---",
		"",
	}

	if len(resolved) == 0 {
		lines = append(lines, "_No conventions configured._", "")
	}
	for _, r := range resolved {
		rule := firstNonBlankLine(r.GeneratedText)
		if rule == "" {
			rule = r.OptionLabel
		}
		lines = append(lines, "- **"+r.Category+":** "+rule)
	}
	if len(resolved) > 0 {
		lines = append(lines, "")
	}

	if custom := strings.TrimSpace(s.Conventions.CustomConventions); custom != "" {
		lines = append(lines, "**Additional:**", "")
		count := 0
		for _, raw := range strings.Split(custom, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			line = strings.TrimSpace(strings.TrimLeft(line, "-*•"))
			lines = append(lines, "- "+line)
			count++
			if count == 5 {
				break
			}
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"---",
		"",
		"*Full detail: [CONVENTIONS.md](CONVENTIONS.md) · Project: [PROJECT.md](../PROJECT.md)*",
		"")

	return strings.Join(lines, "\n")
}

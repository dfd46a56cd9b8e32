package generator

import (
	"strings"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

// ConventionSource resolves stored decisions against the convention
// catalog. The catalog itself is a swappable external data module; the
// renderers only ever see resolved results.
type ConventionSource interface {
	Resolve(d domain.ConventionDecision) (catalog.ResolvedConvention, bool)
}

// displayName returns the project name or a fallback for untitled projects
func displayName(s *domain.ProjectState) string {
	if s.Identity.Name != "" {
		return s.Identity.Name
	}
	return "Project"
}

// techStackSummary renders the chosen stack as a comma-joined label list
func techStackSummary(ts domain.TechStackSelection) string {
	var parts []string
	if ts.Framework != "" {
		parts = append(parts, catalog.TechLabel("framework", ts.Framework))
	}
	if ts.Styling != "" {
		parts = append(parts, catalog.TechLabel("styling", ts.Styling))
	}
	if ts.Database != "" {
		parts = append(parts, catalog.TechLabel("database", ts.Database))
	}
	if ts.Auth != "" {
		parts = append(parts, catalog.TechLabel("auth", ts.Auth))
	}
	if ts.ComponentLibrary != "" {
		parts = append(parts, catalog.TechLabel("componentLibrary", ts.ComponentLibrary))
	}
	return strings.Join(parts, ", ")
}

// stackBullets renders the chosen stack as labelled markdown bullets,
// omitting unset categories entirely
func stackBullets(ts domain.TechStackSelection) []string {
	var lines []string
	add := func(label, category, id string) {
		if id != "" {
			lines = append(lines, "- **"+label+":** "+catalog.TechLabel(category, id))
		}
	}
	add("Framework", "framework", ts.Framework)
	add("Styling", "styling", ts.Styling)
	add("Database", "database", ts.Database)
	add("Auth", "auth", ts.Auth)
	add("Deployment", "deployment", ts.Deployment)
	add("Components", "componentLibrary", ts.ComponentLibrary)
	return lines
}

// resolveDecisions maps stored decisions through the catalog, dropping
// stale ids, and orders the survivors by catalog position so grouping is
// deterministic regardless of decision insertion order.
func resolveDecisions(s *domain.ProjectState, src ConventionSource) []catalog.ResolvedConvention {
	var resolved []catalog.ResolvedConvention
	for _, d := range s.Conventions.Decisions {
		if r, ok := src.Resolve(d); ok {
			resolved = append(resolved, r)
		}
	}
	// Insertion sort by catalog order; decision lists are small.
	for i := 1; i < len(resolved); i++ {
		for j := i; j > 0 && resolved[j-1].Order > resolved[j].Order; j-- {
			resolved[j-1], resolved[j] = resolved[j], resolved[j-1]
		}
	}
	return resolved
}

// firstNonBlankLine returns the first non-blank line of a markdown
// fragment with heading markers and bold emphasis stripped
func firstNonBlankLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		trimmed = strings.TrimLeft(trimmed, "#")
		trimmed = strings.ReplaceAll(trimmed, "**", "")
		return strings.TrimSpace(trimmed)
	}
	return ""
}

// plural returns "" for 1 and "s" otherwise
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

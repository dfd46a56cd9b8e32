package generator

import (
	"strings"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

// RenderStyling produces docs/STYLING.md
func RenderStyling(s *domain.ProjectState) string {
	lines := []string{
		"# Styling Guide — " + displayName(s),
		"",
		"---",
		"",
		"## Brand Colors",
		"",
	}

	var colorRows []string
	for _, c := range s.Styling.Colors {
		if c.Hex != "" {
			colorRows = append(colorRows, "| "+c.Name+" | `"+c.Hex+"` |")
		}
	}
	if len(colorRows) > 0 {
		lines = append(lines, "| Name | Hex |", "|------|-----|")
		lines = append(lines, colorRows...)
	} else {
		lines = append(lines, "_No colors defined._")
	}
	lines = append(lines, "", "## Typography", "")

	var fontLines []string
	if s.Styling.Fonts.Heading != "" {
		fontLines = append(fontLines, "- **Headings:** "+s.Styling.Fonts.Heading)
	}
	if s.Styling.Fonts.Body != "" {
		fontLines = append(fontLines, "- **Body:** "+s.Styling.Fonts.Body)
	}
	if s.Styling.Fonts.Mono != "" {
		fontLines = append(fontLines, "- **Monospace:** "+s.Styling.Fonts.Mono)
	}
	if len(fontLines) > 0 {
		lines = append(lines, fontLines...)
	} else {
		lines = append(lines, "_No fonts specified._")
	}

	lines = append(lines, "", "## Component Library", "")
	if s.Styling.ComponentLibrary != "" {
		lines = append(lines, catalog.TechLabel("componentLibrary", s.Styling.ComponentLibrary))
	} else {
		lines = append(lines, "_None selected._")
	}
	lines = append(lines, "")

	if notes := strings.TrimSpace(s.Styling.AdditionalNotes); notes != "" {
		lines = append(lines, "## Additional Styling Notes", "", notes, "")
	}

	lines = append(lines,
		"---",
		"",
		"*See [PROJECT.md](../PROJECT.md) for project overview.*",
		"")

	return strings.Join(lines, "\n")
}

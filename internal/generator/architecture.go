package generator

import (
	"strings"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

// RenderArchitecture produces docs/ARCHITECTURE.md. Only enabled layers
// render, in their stored order; disabled layers are omitted entirely.
func RenderArchitecture(s *domain.ProjectState) string {
	appType := catalog.AppTypeLabel(s.Architecture.AppType)
	if s.Architecture.AppType == "" {
		appType = "_Not specified_"
	}

	lines := []string{
		"# Architecture — " + displayName(s),
		"",
		"---",
		"",
		"## Application Type",
		"",
		appType,
		"",
		"## Tech Stack Overview",
		"",
	}

	bullets := stackBullets(s.Identity.TechStack)
	if len(bullets) > 0 {
		lines = append(lines, bullets...)
	} else {
		lines = append(lines, "_No tech stack selected._")
	}
	lines = append(lines, "", "## Architecture Layers", "")

	var enabled []domain.Layer
	for _, l := range s.Architecture.Layers {
		if l.Enabled {
			enabled = append(enabled, l)
		}
	}

	if len(enabled) == 0 {
		lines = append(lines, "_No layers defined._", "")
	}
	for _, layer := range enabled {
		lines = append(lines, "### "+layer.Name, "")
		if len(layer.Technologies) > 0 {
			lines = append(lines, "**Technologies:** "+strings.Join(layer.Technologies, ", "), "")
		}
		if layer.Notes != "" {
			lines = append(lines, layer.Notes, "")
		}
	}

	lines = append(lines,
		"---",
		"",
		"*See [PROJECT.md](../PROJECT.md) for project overview.*",
		"")

	return strings.Join(lines, "\n")
}

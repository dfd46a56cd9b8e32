// Package prompts builds copy-pasteable AI assistant prompts from
// project state. Each builder is a pure function; the wizard surfaces
// these alongside the documents so the user can delegate the heavier
// writing to their assistant.
package prompts

import (
	"fmt"
	"strings"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

func projectName(s *domain.ProjectState) string {
	if s.Identity.Name != "" {
		return s.Identity.Name
	}
	return "My Project"
}

func techStackSummary(ts domain.TechStackSelection) string {
	var parts []string
	add := func(category, id string) {
		if id != "" {
			parts = append(parts, catalog.TechLabel(category, id))
		}
	}
	add("framework", ts.Framework)
	add("styling", ts.Styling)
	add("database", ts.Database)
	add("auth", ts.Auth)
	add("componentLibrary", ts.ComponentLibrary)
	return strings.Join(parts, ", ")
}

// conventionSummary lists decided questions as "Question: Option" bullets,
// skipping stale decisions.
func conventionSummary(s *domain.ProjectState, cat *catalog.Catalog) string {
	var lines []string
	for _, d := range s.Conventions.Decisions {
		if r, ok := cat.Resolve(d); ok {
			lines = append(lines, fmt.Sprintf("- %s: %s", r.Question, r.OptionLabel))
		}
	}
	return strings.Join(lines, "\n")
}

// Conventions builds a prompt asking an assistant to write the full
// conventions document, seeded with the decisions already made.
func Conventions(s *domain.ProjectState, cat *catalog.Catalog) string {
	var enabled []string
	for _, l := range s.Architecture.Layers {
		if l.Enabled {
			enabled = append(enabled, strings.ToLower(l.Name))
		}
	}
	appType := s.Architecture.AppType
	if appType == "" {
		appType = "Web application"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I'm setting up a project framework for AI-assisted development.\n\n")
	fmt.Fprintf(&b, "Project: %s\n", projectName(s))
	fmt.Fprintf(&b, "Tech Stack: %s\n", techStackSummary(s.Identity.TechStack))
	fmt.Fprintf(&b, "Architecture: %s with %s\n\n", appType, strings.Join(enabled, ", "))
	b.WriteString("I need you to write a CONVENTIONS.md file covering code patterns and standards for this project. Format it as markdown with clear sections. Keep it under 1500 words.\n\n")

	if choices := conventionSummary(s, cat); choices != "" {
		fmt.Fprintf(&b, "I've already made these convention decisions:\n%s\n\nExpand on these choices and ", choices)
	}
	b.WriteString(`Cover:
- Component organization
- Data fetching patterns
- Error handling
- Naming conventions for files, components, database tables, API routes
- Any other conventions relevant to this specific tech stack

The audience is an AI assistant that will read this file at the start of every coding session. Write it so that an AI can follow these conventions without ambiguity.`)
	return b.String()
}

// Schema builds a prompt asking an assistant to write the full schema
// document from the plain-english description and sketched tables.
func Schema(s *domain.ProjectState) string {
	var tables []string
	for _, t := range s.Database.Tables {
		if t.Name == "" {
			continue
		}
		desc := "- " + t.Name
		if t.Description != "" {
			desc += ": " + t.Description
		}
		if t.Columns != "" {
			desc += "\n  Columns: " + t.Columns
		}
		tables = append(tables, desc)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I'm setting up a project framework for AI-assisted development.\n\n")
	fmt.Fprintf(&b, "Project: %s\n", projectName(s))
	fmt.Fprintf(&b, "Tech Stack: %s\n\n", techStackSummary(s.Identity.TechStack))

	if desc := s.Database.PlainEnglishDescription; desc != "" {
		fmt.Fprintf(&b, "Here's what I need the database to do:\n%s\n\n", desc)
	}
	if len(tables) > 0 {
		fmt.Fprintf(&b, "I've sketched out these tables:\n%s\n\n", strings.Join(tables, "\n"))
	}
	b.WriteString(`Please write a SCHEMA.md file containing:
1. A complete database schema with all tables, columns, types, and relationships
2. Any indexes or constraints that would be important
3. Notes on any RLS (Row Level Security) policies if applicable

Format as markdown. Use SQL code blocks for the actual schema definitions. Include explanatory notes for complex relationships.`)
	return b.String()
}

// Skeleton builds a prompt asking an assistant to create the initial
// project structure before any feature work begins.
func Skeleton(s *domain.ProjectState) string {
	var layers []string
	for _, l := range s.Architecture.Layers {
		if !l.Enabled {
			continue
		}
		line := "- " + l.Name
		if l.Notes != "" {
			line += ": " + l.Notes
		}
		layers = append(layers, line)
	}
	layersBlock := strings.Join(layers, "\n")
	if layersBlock == "" {
		layersBlock = "- Standard web application layers"
	}

	var features []string
	for _, f := range s.Features {
		desc := f.Description
		if desc == "" {
			desc = "No description"
		}
		features = append(features, fmt.Sprintf("- %s: %s", f.Name, desc))
	}
	featureBlock := strings.Join(features, "\n")
	if featureBlock == "" {
		featureBlock = "- No features defined yet"
	}

	appType := s.Architecture.AppType
	if appType == "" {
		appType = "web-app"
	}

	var b strings.Builder
	b.WriteString("I'm setting up a new project and need you to create the initial file/folder structure (skeleton deployment).\n\n")
	fmt.Fprintf(&b, "Project: %s\n", projectName(s))
	fmt.Fprintf(&b, "Tech Stack: %s\n", techStackSummary(s.Identity.TechStack))
	fmt.Fprintf(&b, "App Type: %s\n\n", appType)
	fmt.Fprintf(&b, "Architecture layers:\n%s\n\n", layersBlock)
	fmt.Fprintf(&b, "Features planned:\n%s\n\n", featureBlock)
	b.WriteString(`Please create:
1. The complete folder structure with placeholder files
2. Configuration files appropriate for the tech stack
3. A basic layout/shell that the feature work can build upon
4. Any authentication scaffolding if auth was selected
5. Database connection setup if applicable

Do NOT implement any features — just create the skeleton that features will be built into. Each file should have a clear comment indicating what will go there.

After creating the skeleton, verify:
- [ ] The project builds and runs without errors
- [ ] All configuration files are correct
- [ ] The folder structure matches the architecture layers
- [ ] A basic "hello world" page renders`)
	return b.String()
}

// Feature builds an implementation prompt for one feature, including its
// rules, tables, and the tasks pointing at it. Returns "" for unknown ids.
func Feature(s *domain.ProjectState, featureID string) string {
	f := s.FeatureByID(featureID)
	if f == nil {
		return ""
	}

	var tasks []string
	for _, t := range s.TasksForFeature(featureID) {
		line := "- " + t.Name
		if t.DefinitionOfDone != "" {
			line += "\n  Done when: " + t.DefinitionOfDone
		}
		tasks = append(tasks, line)
	}

	var rules []string
	for _, r := range f.BusinessRules {
		if strings.TrimSpace(r) != "" {
			rules = append(rules, "- "+r)
		}
	}

	desc := f.Description
	if desc == "" {
		desc = "No description provided."
	}

	var b strings.Builder
	b.WriteString("Read PROJECT.md, then read docs/CONVENTIONS.md.\n\n")
	fmt.Fprintf(&b, "I'm implementing the %q feature.\n\n", f.Name)
	fmt.Fprintf(&b, "Description: %s\n\n", desc)
	if len(rules) > 0 {
		fmt.Fprintf(&b, "Business Rules:\n%s\n\n", strings.Join(rules, "\n"))
	}
	if len(f.RelatedTables) > 0 {
		fmt.Fprintf(&b, "Related Tables: %s\n\n", strings.Join(f.RelatedTables, ", "))
	}
	if len(tasks) > 0 {
		fmt.Fprintf(&b, "Tasks for this feature:\n%s\n\n", strings.Join(tasks, "\n"))
	}
	b.WriteString("Please implement this feature following all conventions in CONVENTIONS.md. After completion, review your work against each business rule listed above.")
	return b.String()
}

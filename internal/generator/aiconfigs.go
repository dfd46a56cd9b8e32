package generator

import (
	"strings"

	"framewright/internal/domain"
)

// conventionsDigest renders a compact bullet list of decided conventions
// for embedding in assistant config files, capped at max entries.
func conventionsDigest(s *domain.ProjectState, src ConventionSource, max int) []string {
	var lines []string
	for _, r := range resolveDecisions(s, src) {
		if len(lines) >= max {
			break
		}
		lines = append(lines, "- **"+r.Category+":** "+firstNonBlankLine(r.GeneratedText))
	}
	return lines
}

// aiConfigBody is the shared skeleton of the three assistant config
// files; each file wraps it in its own preamble.
func aiConfigBody(s *domain.ProjectState, src ConventionSource) []string {
	lines := []string{
		"## Project",
		"",
		"**" + displayName(s) + "**",
	}
	if purpose := strings.TrimSpace(s.Identity.Purpose); purpose != "" {
		lines = append(lines, "", purpose)
	}
	lines = append(lines, "", "## Tech Stack", "")
	if bullets := stackBullets(s.Identity.TechStack); len(bullets) > 0 {
		lines = append(lines, bullets...)
	} else {
		lines = append(lines, "_No stack selected yet._")
	}

	lines = append(lines, "", "## Key Conventions", "")
	if digest := conventionsDigest(s, src, 8); len(digest) > 0 {
		lines = append(lines, digest...)
	} else {
		lines = append(lines, "_No conventions decided yet._")
	}

	lines = append(lines,
		"",
		"## Before You Code",
		"",
		"1. Read PRIME.md for the document map.",
		"2. Read PROJECT.md for scope and stack.",
		"3. Read docs/CONVENTIONS-QUICKREF.md and follow it.",
		"4. Find your task in tasks/TASKS-MASTER.md and stay inside its file boundaries.")
	return lines
}

// RenderClaudeConfig produces CLAUDE.md
func RenderClaudeConfig(s *domain.ProjectState, src ConventionSource) string {
	lines := []string{
		"# CLAUDE.md",
		"",
		"Guidance for Claude when working in this repository.",
		"",
	}
	lines = append(lines, aiConfigBody(s, src)...)
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// RenderCursorRules produces .cursorrules
func RenderCursorRules(s *domain.ProjectState, src ConventionSource) string {
	lines := []string{
		"# Cursor Rules",
		"",
		"Rules for Cursor when working in this repository.",
		"",
	}
	lines = append(lines, aiConfigBody(s, src)...)
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// RenderCopilotInstructions produces .github/copilot-instructions.md
func RenderCopilotInstructions(s *domain.ProjectState, src ConventionSource) string {
	lines := []string{
		"# Copilot Instructions",
		"",
		"Guidance for GitHub Copilot when working in this repository.",
		"",
	}
	lines = append(lines, aiConfigBody(s, src)...)
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

package generator

import (
	"fmt"

	"framewright/internal/domain"
)

// Category groups generated files for display purposes only
type Category string

const (
	CategoryRoot      Category = "root"
	CategoryDocs      Category = "docs"
	CategoryFeatures  Category = "features"
	CategoryTasks     Category = "tasks"
	CategoryAIConfigs Category = "ai-configs"
)

// GeneratedFile is one rendered document. Path is the identity key and the
// zip entry name; Content always ends in a newline unless overridden.
type GeneratedFile struct {
	Path      string
	Filename  string
	Content   string
	WordCount int
	Category  Category
}

// Fixed output paths. These are a compatibility contract with consumers
// told to "read PRIME.md first"; they must never change.
const (
	PathPrime        = "PRIME.md"
	PathProject      = "PROJECT.md"
	PathQuickRef     = "docs/CONVENTIONS-QUICKREF.md"
	PathConventions  = "docs/CONVENTIONS.md"
	PathArchitecture = "docs/ARCHITECTURE.md"
	PathStyling      = "docs/STYLING.md"
	PathSchema       = "docs/SCHEMA.md"
	PathFeatureIndex = "features/FEATURES-INDEX.md"
	PathTaskIndex    = "tasks/TASKS-MASTER.md"
	PathStarters     = "CONTEXT-WINDOW-STARTERS.md"
	PathClaude       = "CLAUDE.md"
	PathCursorRules  = ".cursorrules"
	PathCopilot      = ".github/copilot-instructions.md"
)

// FixedFileCount is the number of files emitted regardless of feature and
// task count. Total output is FixedFileCount + len(features) + len(tasks)
// + 1 for the schema document unless the database approach is "skip".
const FixedFileCount = 12

// Word-count thresholds for the project summary document. Breaches are
// advisory; the caller surfaces them, the generator only reports numbers.
const (
	ProjectWordWarning = 2500
	ProjectWordDanger  = 3000
)

// FeatureSlug returns the slug used for a feature's filename and for every
// link pointing at it. Both sides call this one helper so they can never
// drift. Falls back to "unnamed" for empty slugs.
func FeatureSlug(f domain.Feature) string {
	if f.Slug != "" {
		return f.Slug
	}
	if s := domain.Slugify(f.Name); s != "" {
		return s
	}
	return "unnamed"
}

// FeaturePath returns the output path for a feature document
func FeaturePath(f domain.Feature) string {
	return "features/" + FeatureSlug(f) + ".md"
}

// TaskFileStem returns "task-NNN" or "task-NNN-<name-slug>"; the slug
// suffix is omitted only when the name is empty or all-symbol.
func TaskFileStem(t domain.Task) string {
	stem := fmt.Sprintf("task-%03d", t.TaskNumber)
	if s := domain.Slugify(t.Name); s != "" {
		stem += "-" + s
	}
	return stem
}

// TaskPath returns the output path for a task document
func TaskPath(t domain.Task) string {
	return "tasks/" + TaskFileStem(t) + ".md"
}

// TaskNumberLabel renders "task-NNN" for display
func TaskNumberLabel(n int) string {
	return fmt.Sprintf("task-%03d", n)
}

// FrameworkFolderName derives the "<slug>-framework" folder that names
// the export directory, the top-level zip entry, and the preview tree
// root. Falls back through the project name to "project-framework".
func FrameworkFolderName(s *domain.ProjectState) string {
	slug := s.Identity.Slug
	if slug == "" {
		slug = domain.Slugify(s.Identity.Name)
	}
	if slug == "" {
		slug = "project"
	}
	return slug + "-framework"
}

package generator

import (
	"path"

	"framewright/internal/domain"
)

// GenerateAll renders every output document for the given state, in the
// fixed emission order. It is a pure function of its inputs: the state is
// never mutated and two calls with equal state produce byte-identical
// output. Feature and task documents appear in state order between the
// fixed documents.
func GenerateAll(s *domain.ProjectState, src ConventionSource) []GeneratedFile {
	var files []GeneratedFile
	emit := func(p string, content string, cat Category) {
		files = append(files, GeneratedFile{
			Path:      p,
			Filename:  path.Base(p),
			Content:   content,
			WordCount: CountWords(content),
			Category:  cat,
		})
	}
	render := func(p string, fresh string, cat Category) {
		emit(p, ResolveOverride(p, normalizeTrailingNewline(fresh), s.MarkdownOverrides), cat)
	}

	render(PathPrime, RenderPrime(s), CategoryRoot)
	render(PathProject, RenderProject(s), CategoryRoot)
	render(PathQuickRef, RenderConventionsQuickRef(s, src), CategoryDocs)
	render(PathConventions, RenderConventions(s, src), CategoryDocs)
	render(PathArchitecture, RenderArchitecture(s), CategoryDocs)
	render(PathStyling, RenderStyling(s), CategoryDocs)
	if s.Database.Approach != domain.ApproachSkip {
		render(PathSchema, RenderSchema(s), CategoryDocs)
	}

	render(PathFeatureIndex, RenderFeaturesIndex(s), CategoryFeatures)
	for _, f := range s.Features {
		render(FeaturePath(f), RenderFeature(s, f), CategoryFeatures)
	}

	render(PathTaskIndex, RenderTasksMaster(s), CategoryTasks)
	for _, t := range s.Tasks {
		render(TaskPath(t), RenderTask(s, t), CategoryTasks)
	}

	render(PathStarters, RenderContextStarters(s), CategoryRoot)
	render(PathClaude, RenderClaudeConfig(s, src), CategoryAIConfigs)
	render(PathCursorRules, RenderCursorRules(s, src), CategoryAIConfigs)
	render(PathCopilot, RenderCopilotInstructions(s, src), CategoryAIConfigs)

	return files
}

// FileCount returns the number of files GenerateAll will emit for a
// state without rendering anything.
func FileCount(s *domain.ProjectState) int {
	n := FixedFileCount + len(s.Features) + len(s.Tasks)
	if s.Database.Approach != domain.ApproachSkip {
		n++
	}
	return n
}

// WordCountStatus classifies the project document's word count against
// the advisory thresholds: "ok", "warning", or "danger".
func WordCountStatus(words int) string {
	switch {
	case words > ProjectWordDanger:
		return "danger"
	case words > ProjectWordWarning:
		return "warning"
	default:
		return "ok"
	}
}

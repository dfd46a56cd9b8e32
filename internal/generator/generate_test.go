package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

func newTestState() *domain.ProjectState {
	s := domain.NewProjectState()
	s.Identity.Name = "Acme"
	s.Identity.Slug = "acme"
	s.Identity.Purpose = "Users can log in"
	s.Identity.TechStack.Framework = "nextjs"
	return s
}

func pathsOf(files []GeneratedFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

func fileByPath(t *testing.T, files []GeneratedFile, path string) GeneratedFile {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return f
		}
	}
	t.Fatalf("no generated file at %s", path)
	return GeneratedFile{}
}

func TestGenerateAll_Deterministic(t *testing.T) {
	s := newTestState()
	s.Features = append(s.Features, domain.Feature{ID: "f1", Name: "Login", Slug: "login"})
	s.Tasks = append(s.Tasks, domain.Task{ID: "t1", TaskNumber: 1, Name: "Build login page", FeatureIDs: []string{"f1"}})
	cat := catalog.Default()

	first := GenerateAll(s, cat)
	second := GenerateAll(s, cat)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Path, second[i].Path)
		assert.Equal(t, first[i].Content, second[i].Content, "content differs at %s", first[i].Path)
		assert.Equal(t, first[i].WordCount, second[i].WordCount)
	}
}

func TestGenerateAll_FileCount(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name     string
		mutate   func(*domain.ProjectState)
		expected int
	}{
		{
			name:     "empty state skip database",
			mutate:   func(s *domain.ProjectState) {},
			expected: FixedFileCount,
		},
		{
			name: "database adds schema file",
			mutate: func(s *domain.ProjectState) {
				s.Database.Approach = domain.ApproachPlainEnglish
			},
			expected: FixedFileCount + 1,
		},
		{
			name: "features and tasks add one file each",
			mutate: func(s *domain.ProjectState) {
				s.Features = append(s.Features,
					domain.Feature{ID: "f1", Name: "Login"},
					domain.Feature{ID: "f2", Name: "Search"})
				s.Tasks = append(s.Tasks,
					domain.Task{ID: "t1", TaskNumber: 1, Name: "Build login"},
					domain.Task{ID: "t2", TaskNumber: 2, Name: "Build search"},
					domain.Task{ID: "t3", TaskNumber: 3, Name: "Deploy"})
			},
			expected: FixedFileCount + 5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState()
			tc.mutate(s)
			files := GenerateAll(s, cat)
			assert.Len(t, files, tc.expected)
			assert.Equal(t, tc.expected, FileCount(s))
		})
	}
}

func TestGenerateAll_OverridesAreVerbatim(t *testing.T) {
	s := newTestState()
	s.MarkdownOverrides[PathProject] = "X"

	files := GenerateAll(s, catalog.Default())

	project := fileByPath(t, files, PathProject)
	assert.Equal(t, "X", project.Content, "override must not be normalized")
	assert.Equal(t, 1, project.WordCount)

	prime := fileByPath(t, files, PathPrime)
	assert.NotEqual(t, "X", prime.Content, "override is scoped to its path")
}

func TestGenerateAll_EmptyStateHasNoBlankSections(t *testing.T) {
	s := domain.NewProjectState()

	files := GenerateAll(s, catalog.Default())

	require.Len(t, files, FixedFileCount)
	for _, f := range files {
		assert.NotEmpty(t, strings.TrimSpace(f.Content), "%s rendered empty", f.Path)
	}

	index := fileByPath(t, files, PathFeatureIndex)
	assert.Contains(t, index.Content, "No features defined yet")
	master := fileByPath(t, files, PathTaskIndex)
	assert.Contains(t, master.Content, "No tasks defined yet")
	arch := fileByPath(t, files, PathArchitecture)
	assert.Contains(t, arch.Content, "No layers defined")
	quickref := fileByPath(t, files, PathQuickRef)
	assert.Contains(t, quickref.Content, "No conventions configured")
}

func TestGenerateAll_FreshRendersEndInSingleNewline(t *testing.T) {
	s := newTestState()
	for _, f := range GenerateAll(s, catalog.Default()) {
		assert.True(t, strings.HasSuffix(f.Content, "\n"), "%s missing trailing newline", f.Path)
		assert.False(t, strings.HasSuffix(f.Content, "\n\n"), "%s has extra trailing newlines", f.Path)
	}
}

func TestGenerateAll_CrossLinksMatchEmittedPaths(t *testing.T) {
	s := newTestState()
	s.Features = append(s.Features, domain.Feature{ID: "f1", Name: "User Login!"})
	s.Tasks = append(s.Tasks, domain.Task{ID: "t1", TaskNumber: 7, Name: "Build login page", FeatureIDs: []string{"f1"}})

	files := GenerateAll(s, catalog.Default())
	paths := pathsOf(files)

	assert.Contains(t, paths, "features/user-login.md")
	assert.Contains(t, paths, "tasks/task-007-build-login-page.md")

	feature := fileByPath(t, files, "features/user-login.md")
	assert.Contains(t, feature.Content, "../tasks/task-007-build-login-page.md")

	task := fileByPath(t, files, "tasks/task-007-build-login-page.md")
	assert.Contains(t, task.Content, "../features/user-login.md")

	index := fileByPath(t, files, PathFeatureIndex)
	assert.Contains(t, index.Content, "[User Login!](user-login.md)")

	master := fileByPath(t, files, PathTaskIndex)
	assert.Contains(t, master.Content, "[task-007](task-007-build-login-page.md)")
}

func TestGenerateAll_EndToEnd(t *testing.T) {
	s := newTestState()
	s.Features = append(s.Features, domain.Feature{
		ID:                 "f1",
		Name:               "Login",
		Slug:               "login",
		Description:        "Users can log in",
		AcceptanceCriteria: []string{"User can authenticate"},
	})
	s.Tasks = append(s.Tasks, domain.Task{
		ID:         "t1",
		TaskNumber: 1,
		Name:       "Build login page",
		FeatureIDs: []string{"f1"},
	})

	files := GenerateAll(s, catalog.Default())
	require.Len(t, files, FixedFileCount+2)

	feature := fileByPath(t, files, "features/login.md")
	assert.Contains(t, feature.Content, "Users can log in")
	assert.Contains(t, feature.Content, "User can authenticate")

	index := fileByPath(t, files, PathFeatureIndex)
	assert.Contains(t, index.Content, "| [Login](login.md) | Users can log in | 1 |")

	starters := fileByPath(t, files, PathStarters)
	assert.Contains(t, starters.Content, "task-001")
	assert.Contains(t, starters.Content, "Read features/login.md")
	assert.Contains(t, starters.Content, "Read tasks/task-001-build-login-page.md and begin work")
}

func TestTaskPath(t *testing.T) {
	tests := []struct {
		name     string
		task     domain.Task
		expected string
	}{
		{"named", domain.Task{TaskNumber: 7, Name: "Build login page"}, "tasks/task-007-build-login-page.md"},
		{"unnamed", domain.Task{TaskNumber: 0, Name: ""}, "tasks/task-000.md"},
		{"symbols only", domain.Task{TaskNumber: 3, Name: "!!!"}, "tasks/task-003.md"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TaskPath(tc.task))
		})
	}
}

func TestFeatureSlug_Fallbacks(t *testing.T) {
	assert.Equal(t, "login", FeatureSlug(domain.Feature{Slug: "login", Name: "Other"}))
	assert.Equal(t, "user-login", FeatureSlug(domain.Feature{Name: "User Login!"}))
	assert.Equal(t, "unnamed", FeatureSlug(domain.Feature{Name: "???"}))
}

func TestWordCountStatus(t *testing.T) {
	assert.Equal(t, "ok", WordCountStatus(ProjectWordWarning))
	assert.Equal(t, "warning", WordCountStatus(ProjectWordWarning+1))
	assert.Equal(t, "danger", WordCountStatus(ProjectWordDanger+1))
}

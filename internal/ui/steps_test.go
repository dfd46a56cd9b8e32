package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framewright/internal/catalog"
	"framewright/internal/domain"
	"framewright/internal/services"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "single line",
			input:    "users can log in",
			expected: []string{"users can log in"},
		},
		{
			name:     "blank and padded lines dropped",
			input:    "  first \n\n second\n   \n",
			expected: []string{"first", "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitLines(tt.input))
		})
	}
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, splitCommaList(""))
	assert.Equal(t, []string{"users", "orders"}, splitCommaList(" users , orders ,"))
}

func TestFeaturesStepCommit_FirstFeatureAddsSkeletonTask(t *testing.T) {
	state := domain.NewProjectState()
	step := &featuresStep{collected: []featureDraft{
		{
			name:     "User Login",
			desc:     "Users can log in",
			rules:    "passwords are hashed\n",
			criteria: "login form renders\nsession persists",
			tables:   "users, sessions",
		},
	}}

	step.Commit(state)

	require.Len(t, state.Features, 1)
	f := state.Features[0]
	assert.Equal(t, "user-login", f.Slug)
	assert.Equal(t, []string{"passwords are hashed"}, f.BusinessRules)
	assert.Equal(t, []string{"login form renders", "session persists"}, f.AcceptanceCriteria)
	assert.Equal(t, []string{"users", "sessions"}, f.RelatedTables)

	require.Len(t, state.Tasks, 1)
	assert.Equal(t, 0, state.Tasks[0].TaskNumber)
	assert.Equal(t, domain.SkeletonTaskName, state.Tasks[0].Name)
}

func TestFeaturesStepCommit_SecondRunDoesNotReAddSkeleton(t *testing.T) {
	state := domain.NewProjectState()

	first := &featuresStep{collected: []featureDraft{{name: "Login"}}}
	first.Commit(state)
	require.Len(t, state.Tasks, 1)

	// The user deletes task-000, then adds another feature
	state.Tasks = nil
	second := &featuresStep{collected: []featureDraft{{name: "Billing"}}}
	second.Commit(state)

	assert.Len(t, state.Features, 2)
	assert.Empty(t, state.Tasks)
}

func TestTasksStepCommit_SequentialNumbers(t *testing.T) {
	state := domain.NewProjectState()
	step := &tasksStep{collected: []taskDraft{
		{name: "Build login page"},
		{name: "Wire sessions"},
	}}

	step.Commit(state)

	require.Len(t, state.Tasks, 2)
	assert.Equal(t, 1, state.Tasks[0].TaskNumber)
	assert.Equal(t, 2, state.Tasks[1].TaskNumber)
	assert.Equal(t, domain.StatusNotStarted, state.Tasks[0].Status)
}

func TestArchitectureStepCommit_TogglesWithoutLosingNotes(t *testing.T) {
	state := domain.NewProjectState()
	state.Architecture.Layers = []domain.Layer{
		{ID: "frontend", Name: "Frontend", Enabled: true, Notes: "keep"},
		{ID: "backend", Name: "Backend", Enabled: false},
	}

	step := newArchitectureStep(state)
	step.appType = "api"
	step.enabled = []string{"backend"}
	step.Commit(state)

	assert.Equal(t, "api", state.Architecture.AppType)
	assert.False(t, state.Architecture.Layers[0].Enabled)
	assert.Equal(t, "keep", state.Architecture.Layers[0].Notes)
	assert.True(t, state.Architecture.Layers[1].Enabled)
}

func TestConventionsStepCommit_SkipCustomAndSelected(t *testing.T) {
	state := domain.NewProjectState()
	step := &conventionsStep{
		answers: []conventionAnswer{
			{questionID: "git-workflow", optionID: "trunk-based"},
			{questionID: "testing-approach", optionID: ""},
			{questionID: "error-handling", optionID: customOptionID, custom: "always wrap errors"},
		},
		custom: "tabs, not spaces",
	}

	step.Commit(state)

	require.Len(t, state.Conventions.Decisions, 2)
	assert.Equal(t, "trunk-based", state.Conventions.Decisions[0].SelectedOptionID)
	assert.Equal(t, "error-handling", state.Conventions.Decisions[1].QuestionID)
	assert.Equal(t, "always wrap errors", state.Conventions.Decisions[1].CustomAnswer)
	assert.Equal(t, "tabs, not spaces", state.Conventions.CustomConventions)
}

func TestReviewScreen_ShowsTasksWithStatusLabels(t *testing.T) {
	state := domain.NewProjectState()
	state.Identity.Name = "Acme"
	state.Tasks = []domain.Task{
		{ID: "t2", TaskNumber: 2, Name: "Wire sessions", Status: domain.StatusInProgress},
		{ID: "t1", TaskNumber: 1, Name: "Build login page", Status: domain.StatusDone},
	}

	projects := services.NewProjectService(nil, catalog.Default())
	r := newReviewScreen(state, projects, nil)
	view := r.View()

	assert.Contains(t, view, "task-001 Build login page")
	assert.Contains(t, view, "[Done]")
	assert.Contains(t, view, "[In progress]")
	assert.Less(t,
		strings.Index(view, "task-001 Build login page"),
		strings.Index(view, "task-002 Wire sessions"),
		"task summary must be in task-number order")
}

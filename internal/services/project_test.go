package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

// fakeRepo is an in-memory ports.ProjectRepository for service tests
type fakeRepo struct {
	state *domain.ProjectState
}

func (r *fakeRepo) Load(ctx context.Context) (*domain.ProjectState, error) {
	if r.state == nil {
		return nil, domain.ErrProjectNotFound
	}
	return r.state, nil
}

func (r *fakeRepo) Save(ctx context.Context, state *domain.ProjectState) error {
	r.state = state
	return nil
}

func (r *fakeRepo) Reset(ctx context.Context) error {
	r.state = nil
	return nil
}

func (r *fakeRepo) Close() error { return nil }

func newTestService() (*ProjectService, *fakeRepo) {
	repo := &fakeRepo{}
	return NewProjectService(repo, catalog.Default()), repo
}

func TestLoadOrCreate_CreatesOnEmptyStore(t *testing.T) {
	svc, repo := newTestService()

	state, err := svc.LoadOrCreate(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, state.Meta.ID)
	assert.Same(t, repo.state, state, "new project must be persisted")

	again, err := svc.LoadOrCreate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, state.Meta.ID, again.Meta.ID)
}

func TestSetIdentity_DerivesSlug(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.SetIdentity(context.Background(), "My SaaS App!", "Billing for freelancers", domain.ModeNew))

	assert.Equal(t, "My SaaS App!", repo.state.Identity.Name)
	assert.Equal(t, "my-saas-app", repo.state.Identity.Slug)
	assert.Equal(t, "Billing for freelancers", repo.state.Identity.Purpose)
}

func TestSetTechStack_SeedsLayersOnce(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SetTechStack(ctx, domain.TechStackSelection{Framework: "nextjs"}))
	require.NotEmpty(t, repo.state.Architecture.Layers)
	seeded := len(repo.state.Architecture.Layers)

	// Changing the stack later must not clobber edited layers
	repo.state.Architecture.Layers = repo.state.Architecture.Layers[:2]
	require.NoError(t, svc.SetTechStack(ctx, domain.TechStackSelection{Framework: "python-fastapi"}))
	assert.Len(t, repo.state.Architecture.Layers, 2)
	assert.NotEqual(t, seeded, len(repo.state.Architecture.Layers))
}

func TestSetDecision_UpsertsByQuestion(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SetDecision(ctx, domain.ConventionDecision{
		QuestionID: "component-organization", SelectedOptionID: "by-feature",
	}))
	require.NoError(t, svc.SetDecision(ctx, domain.ConventionDecision{
		QuestionID: "git-workflow", SelectedOptionID: "feature-branches",
	}))
	require.NoError(t, svc.SetDecision(ctx, domain.ConventionDecision{
		QuestionID: "component-organization", SelectedOptionID: "by-type",
	}))

	decisions := repo.state.Conventions.Decisions
	require.Len(t, decisions, 2)
	assert.Equal(t, "git-workflow", decisions[0].QuestionID)
	assert.Equal(t, "component-organization", decisions[1].QuestionID)
	assert.Equal(t, "by-type", decisions[1].SelectedOptionID)
}

func TestAddFeature_FirstFeatureAddsSkeletonTask(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	id, err := svc.AddFeature(ctx, domain.Feature{Name: "User Login"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, repo.state.Features, 1)
	assert.Equal(t, "user-login", repo.state.Features[0].Slug)

	require.Len(t, repo.state.Tasks, 1)
	assert.Equal(t, 0, repo.state.Tasks[0].TaskNumber)
	assert.Equal(t, domain.SkeletonTaskName, repo.state.Tasks[0].Name)

	// Second feature must not add another skeleton task
	_, err = svc.AddFeature(ctx, domain.Feature{Name: "Search"})
	require.NoError(t, err)
	assert.Len(t, repo.state.Tasks, 1)
}

func TestRemoveFeature_DropsTaskReferences(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	fid, err := svc.AddFeature(ctx, domain.Feature{Name: "Login"})
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, domain.Task{Name: "Build login page", FeatureIDs: []string{fid}})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFeature(ctx, fid))

	assert.Empty(t, repo.state.Features)
	for _, task := range repo.state.Tasks {
		assert.NotContains(t, task.FeatureIDs, fid)
	}

	assert.ErrorIs(t, svc.RemoveFeature(ctx, "missing"), domain.ErrFeatureNotFound)
}

func TestAddTask_AssignsSequentialNumbers(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.AddTask(ctx, domain.Task{Name: "First"})
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, domain.Task{Name: "Second"})
	require.NoError(t, err)

	require.Len(t, repo.state.Tasks, 2)
	assert.Equal(t, 1, repo.state.Tasks[0].TaskNumber)
	assert.Equal(t, 2, repo.state.Tasks[1].TaskNumber)
	assert.Equal(t, domain.StatusNotStarted, repo.state.Tasks[0].Status)
}

func TestRemoveTask_NumbersNeverReused(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	id1, err := svc.AddTask(ctx, domain.Task{Name: "First"})
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, domain.Task{Name: "Second"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveTask(ctx, id1))
	_, err = svc.AddTask(ctx, domain.Task{Name: "Third"})
	require.NoError(t, err)

	numbers := []int{}
	for _, task := range repo.state.Tasks {
		numbers = append(numbers, task.TaskNumber)
	}
	assert.Equal(t, []int{2, 3}, numbers)
}

func TestMoveFeature_RenumbersSortOrder(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	idA, err := svc.AddFeature(ctx, domain.Feature{Name: "Alpha"})
	require.NoError(t, err)
	_, err = svc.AddFeature(ctx, domain.Feature{Name: "Beta"})
	require.NoError(t, err)
	_, err = svc.AddFeature(ctx, domain.Feature{Name: "Gamma"})
	require.NoError(t, err)

	require.NoError(t, svc.MoveFeature(ctx, idA, 2))

	names := []string{}
	for _, f := range repo.state.Features {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Beta", "Gamma", "Alpha"}, names)
	for i, f := range repo.state.Features {
		assert.Equal(t, i, f.SortOrder)
	}

	assert.ErrorIs(t, svc.MoveFeature(ctx, "missing", 0), domain.ErrFeatureNotFound)
}

func TestMoveTask_KeepsTaskNumbers(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	id1, err := svc.AddTask(ctx, domain.Task{Name: "First"})
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, domain.Task{Name: "Second"})
	require.NoError(t, err)

	// Position past the end clamps to last
	require.NoError(t, svc.MoveTask(ctx, id1, 5))

	require.Len(t, repo.state.Tasks, 2)
	assert.Equal(t, "Second", repo.state.Tasks[0].Name)
	assert.Equal(t, "First", repo.state.Tasks[1].Name)
	assert.Equal(t, 1, repo.state.Tasks[1].TaskNumber, "reorder must not renumber tasks")
	assert.Equal(t, 0, repo.state.Tasks[0].SortOrder)
	assert.Equal(t, 1, repo.state.Tasks[1].SortOrder)
}

func TestSetStep_HighestNeverDecreases(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SetStep(ctx, 5))
	require.NoError(t, svc.SetStep(ctx, 2))

	assert.Equal(t, 2, repo.state.Meta.CurrentStep)
	assert.Equal(t, 5, repo.state.Meta.HighestStepReached)
}

func TestSetOverride(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SetOverride(ctx, "PROJECT.md", "custom"))
	assert.Equal(t, "custom", repo.state.MarkdownOverrides["PROJECT.md"])

	require.NoError(t, svc.SetOverride(ctx, "PROJECT.md", ""))
	assert.NotContains(t, repo.state.MarkdownOverrides, "PROJECT.md")
}

func TestGenerate_UsesOverrides(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SetIdentity(ctx, "Acme", "Users can log in", domain.ModeNew))
	require.NoError(t, svc.SetOverride(ctx, "PROJECT.md", "X"))

	files, err := svc.Generate(ctx)
	require.NoError(t, err)

	found := false
	for _, f := range files {
		if f.Path == "PROJECT.md" {
			found = true
			assert.Equal(t, "X", f.Content)
		}
	}
	assert.True(t, found)
}

func TestImportState_ReplacesExisting(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SetIdentity(ctx, "Old", "", domain.ModeNew))

	imported := domain.NewProjectState()
	imported.Identity.Name = "Imported"
	require.NoError(t, svc.ImportState(ctx, imported))

	assert.Equal(t, "Imported", repo.state.Identity.Name)
}

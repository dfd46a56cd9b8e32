package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framewright/internal/domain"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestLoad_EmptyStore(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	state := domain.NewProjectState()
	state.Identity.Name = "Acme"
	state.Identity.Slug = "acme"
	state.Identity.Purpose = "Users can log in"
	state.Identity.TechStack.Framework = "nextjs"
	state.Identity.TechStack.Additional = []string{"Redis", "Stripe"}
	state.Architecture.AppType = "web-app"
	state.Architecture.Layers = []domain.Layer{
		{ID: "l1", Name: "Frontend", Enabled: true, Technologies: []string{"React"}},
		{ID: "l2", Name: "Backend", Enabled: false, Notes: "later"},
	}
	state.Conventions.Decisions = []domain.ConventionDecision{
		{QuestionID: "component-organization", SelectedOptionID: "by-feature"},
		{QuestionID: "git-workflow", CustomAnswer: "Trunk-based"},
	}
	state.Database.Approach = domain.ApproachPlainEnglish
	state.Database.PlainEnglishDescription = "Users and orders"
	state.Database.Tables = []domain.Table{
		{ID: "tb1", Name: "users", Description: "Accounts", Columns: "id, email"},
	}
	state.Features = []domain.Feature{
		{
			ID: "f1", Name: "Login", Slug: "login",
			BusinessRules:      []string{"Lock after 5 attempts"},
			AcceptanceCriteria: []string{"User can authenticate"},
			RelatedTables:      []string{"users"},
		},
	}
	state.Tasks = []domain.Task{
		{
			ID: "t1", TaskNumber: 1, Name: "Build login page",
			FeatureIDs: []string{"f1"}, Status: domain.StatusInProgress,
		},
	}
	state.MarkdownOverrides["PROJECT.md"] = "custom content"

	require.NoError(t, repo.Save(ctx, state))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, state.Meta.ID, loaded.Meta.ID)
	assert.Equal(t, "Acme", loaded.Identity.Name)
	assert.Equal(t, []string{"Redis", "Stripe"}, loaded.Identity.TechStack.Additional)
	assert.Equal(t, state.Architecture.Layers, loaded.Architecture.Layers)
	assert.Equal(t, state.Conventions.Decisions, loaded.Conventions.Decisions)
	assert.Equal(t, domain.ApproachPlainEnglish, loaded.Database.Approach)
	assert.Equal(t, state.Database.Tables, loaded.Database.Tables)
	assert.Equal(t, state.Features, loaded.Features)
	assert.Equal(t, state.Tasks, loaded.Tasks)
	assert.Equal(t, "custom content", loaded.MarkdownOverrides["PROJECT.md"])
	assert.Len(t, loaded.Styling.Colors, len(state.Styling.Colors))
}

func TestSave_ReplacesChildRows(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	state := domain.NewProjectState()
	state.Features = []domain.Feature{{ID: "f1", Name: "Login"}}
	require.NoError(t, repo.Save(ctx, state))

	state.Features = []domain.Feature{{ID: "f2", Name: "Search"}}
	state.MarkdownOverrides = map[string]string{}
	require.NoError(t, repo.Save(ctx, state))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Features, 1)
	assert.Equal(t, "Search", loaded.Features[0].Name)
	assert.Empty(t, loaded.MarkdownOverrides)
}

func TestSave_RejectsMissingID(t *testing.T) {
	repo := newTestRepo(t)

	state := domain.NewProjectState()
	state.Meta.ID = ""

	assert.Error(t, repo.Save(context.Background(), state))
	assert.Error(t, repo.Save(context.Background(), nil))
}

func TestReset(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	state := domain.NewProjectState()
	state.Identity.Name = "Acme"
	require.NoError(t, repo.Save(ctx, state))
	require.NoError(t, repo.Reset(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

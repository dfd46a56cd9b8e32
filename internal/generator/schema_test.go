package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"framewright/internal/domain"
)

func TestRenderSchema(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*domain.ProjectState)
		contains    []string
		notContains []string
	}{
		{
			name:     "skip renders one-line stub",
			mutate:   func(s *domain.ProjectState) {},
			contains: []string{"_No database for this project._"},
			notContains: []string{
				"## Data Model", "## Schema (SQL)", "## Tables",
			},
		},
		{
			name: "plain english description and tables both render",
			mutate: func(s *domain.ProjectState) {
				s.Database.Approach = domain.ApproachPlainEnglish
				s.Database.PlainEnglishDescription = "Users place orders."
				s.Database.Tables = []domain.Table{
					{ID: "t1", Name: "users", Description: "Account holders", Columns: "id, email"},
				}
			},
			contains: []string{
				"## Data Model (Plain English)",
				"Users place orders.",
				"## Tables",
				"### users",
				"Account holders",
				"**Columns:**",
				"id, email",
			},
		},
		{
			name: "pasted sql renders fenced",
			mutate: func(s *domain.ProjectState) {
				s.Database.Approach = domain.ApproachPasteSQL
				s.Database.PastedSchema = "CREATE TABLE users (id TEXT);"
			},
			contains: []string{
				"## Schema (SQL)",
				"```sql\nCREATE TABLE users (id TEXT);\n```",
			},
			notContains: []string{"## Data Model"},
		},
		{
			name: "no details yet placeholder",
			mutate: func(s *domain.ProjectState) {
				s.Database.Approach = domain.ApproachPlainEnglish
			},
			contains: []string{"_No schema details captured yet._"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := domain.NewProjectState()
			s.Identity.Name = "Acme"
			tc.mutate(s)

			out := RenderSchema(s)

			assert.True(t, strings.HasPrefix(out, "# Database Schema — Acme"))
			for _, want := range tc.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tc.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderFeature_StaleTableReferencesDropped(t *testing.T) {
	s := domain.NewProjectState()
	s.Database.Approach = domain.ApproachPlainEnglish
	s.Database.Tables = []domain.Table{{ID: "t1", Name: "users"}}
	f := domain.Feature{
		ID:            "f1",
		Name:          "Login",
		RelatedTables: []string{"users", "ghost"},
	}
	s.Features = []domain.Feature{f}

	out := RenderFeature(s, f)

	assert.Contains(t, out, "## Related Tables")
	assert.Contains(t, out, "`users`")
	assert.NotContains(t, out, "ghost", "a table name with no matching table must not render")
}

func TestRenderFeature_AllReferencesStaleOmitsSection(t *testing.T) {
	s := domain.NewProjectState()
	f := domain.Feature{
		ID:            "f1",
		Name:          "Login",
		RelatedTables: []string{"ghost"},
	}
	s.Features = []domain.Feature{f}

	out := RenderFeature(s, f)

	assert.NotContains(t, out, "## Related Tables")
}

package projfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framewright/internal/domain"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	s := domain.NewProjectState()
	s.Identity.Name = "Acme"
	s.Identity.Slug = "acme"
	s.Identity.TechStack.Framework = "nextjs"
	s.Architecture.Layers = []domain.Layer{
		{ID: "l1", Name: "Frontend", Enabled: true, Technologies: []string{"React"}},
	}
	s.Conventions.Decisions = []domain.ConventionDecision{
		{QuestionID: "component-organization", SelectedOptionID: "by-feature"},
	}
	s.Database.Approach = domain.ApproachPasteSQL
	s.Database.PastedSchema = "CREATE TABLE users (id INTEGER);"
	s.Features = []domain.Feature{
		{ID: "f1", Name: "Login", Slug: "login", AcceptanceCriteria: []string{"User can authenticate"}},
	}
	s.Tasks = []domain.Task{
		{ID: "t1", TaskNumber: 1, Name: "Build login page", FeatureIDs: []string{"f1"}, Status: domain.StatusNotStarted},
	}
	s.MarkdownOverrides["PROJECT.md"] = "custom"

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))

	loaded, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, s.Meta.ID, loaded.Meta.ID)
	assert.Equal(t, s.Identity, loaded.Identity)
	assert.Equal(t, s.Architecture, loaded.Architecture)
	assert.Equal(t, s.Conventions, loaded.Conventions)
	assert.Equal(t, s.Database, loaded.Database)
	assert.Equal(t, s.Features, loaded.Features)
	assert.Equal(t, s.Tasks, loaded.Tasks)
	assert.Equal(t, s.MarkdownOverrides, loaded.MarkdownOverrides)
}

func TestDecode_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not yaml", "{{{"},
		{"wrong version", "format_version: 99\nproject:\n  id: abc\n"},
		{"missing id", "format_version: 1\nproject:\n  name: Acme\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

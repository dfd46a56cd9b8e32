package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framewright/internal/domain"
)

func TestNew_DeduplicatesByID(t *testing.T) {
	c := New([]Question{
		{ID: "a", Category: "First"},
		{ID: "b", Category: "Second"},
		{ID: "a", Category: "Duplicate"},
	})

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "First", all[0].Category, "first occurrence wins")
	assert.Equal(t, "b", all[1].ID)
}

func TestForStack_FiltersAndKeepsOrder(t *testing.T) {
	c := Default()

	questions := c.ForStack("python-fastapi")
	require.NotEmpty(t, questions)

	ids := make(map[string]bool)
	for _, q := range questions {
		assert.False(t, ids[q.ID], "no duplicate ids for a stack")
		ids[q.ID] = true
		assert.True(t, applicableTo(q, "python-fastapi"))
	}
	assert.True(t, ids["project-structure"])
	assert.True(t, ids["git-workflow"], "general questions apply to every stack")
}

func TestForStack_UnknownFrameworkGetsGeneralOnly(t *testing.T) {
	c := Default()
	for _, q := range c.ForStack("cobol-cics") {
		assert.Contains(t, q.ApplicableTo, "*")
	}
}

func TestResolve_KnownDecision(t *testing.T) {
	c := Default()

	r, ok := c.Resolve(domain.ConventionDecision{
		QuestionID:       "api-style",
		SelectedOptionID: "rest-resource",
	})

	require.True(t, ok)
	assert.Equal(t, "API Design", r.Category)
	assert.Contains(t, r.GeneratedText, "RESTful")
	assert.Equal(t, "RESTful resource-based routes", r.OptionLabel)
}

func TestResolve_StaleIDsDropped(t *testing.T) {
	c := Default()

	_, ok := c.Resolve(domain.ConventionDecision{QuestionID: "removed-question"})
	assert.False(t, ok)

	_, ok = c.Resolve(domain.ConventionDecision{
		QuestionID:       "api-style",
		SelectedOptionID: "removed-option",
	})
	assert.False(t, ok)
}

func TestResolve_CustomAnswer(t *testing.T) {
	c := Default()

	r, ok := c.Resolve(domain.ConventionDecision{
		QuestionID:   "api-style",
		CustomAnswer: "GraphQL only, single /graphql endpoint.",
	})

	require.True(t, ok)
	assert.Equal(t, "Custom", r.OptionLabel)
	assert.Equal(t, "GraphQL only, single /graphql endpoint.", r.GeneratedText)
}

func TestTechLabel_FallsBackToRawID(t *testing.T) {
	assert.Equal(t, "Next.js", TechLabel("framework", "nextjs"))
	assert.Equal(t, "discontinued-tech", TechLabel("framework", "discontinued-tech"))
	assert.Equal(t, "whatever", TechLabel("unknown-category", "whatever"))
}

func TestDefaultsForStack_NextJS(t *testing.T) {
	d := DefaultsForStack(domain.TechStackSelection{
		Framework: "nextjs",
		Styling:   "tailwind",
		Database:  "postgresql",
		Auth:      "clerk",
	})

	assert.Equal(t, "web-app", d.AppType)

	byID := make(map[string]domain.Layer)
	for _, l := range d.Layers {
		byID[l.ID] = l
	}
	assert.True(t, byID["frontend"].Enabled)
	assert.Contains(t, byID["frontend"].Technologies, "Tailwind CSS")
	assert.True(t, byID["backend"].Enabled)
	assert.True(t, byID["database"].Enabled)
	assert.Contains(t, byID["database"].Technologies, "PostgreSQL")
	assert.True(t, byID["auth"].Enabled)
	assert.False(t, byID["realtime"].Enabled)
}

func TestDefaultsForStack_BackendOnly(t *testing.T) {
	d := DefaultsForStack(domain.TechStackSelection{Framework: "python-fastapi"})

	assert.Equal(t, "api", d.AppType)
	for _, l := range d.Layers {
		if l.ID == "frontend" {
			assert.False(t, l.Enabled)
		}
	}
}

package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

func TestConventions_IncludesDecisions(t *testing.T) {
	s := domain.NewProjectState()
	s.Identity.Name = "Acme"
	s.Identity.TechStack.Framework = "nextjs"
	s.Conventions.Decisions = []domain.ConventionDecision{
		{QuestionID: "component-organization", SelectedOptionID: "by-feature"},
		{QuestionID: "no-such-question", SelectedOptionID: "x"},
	}

	prompt := Conventions(s, catalog.Default())

	assert.Contains(t, prompt, "Project: Acme")
	assert.Contains(t, prompt, "I've already made these convention decisions:")
	assert.NotContains(t, prompt, "no-such-question")
	assert.Contains(t, prompt, "Keep it under 1500 words")
}

func TestConventions_NoDecisions(t *testing.T) {
	s := domain.NewProjectState()

	prompt := Conventions(s, catalog.Default())

	assert.Contains(t, prompt, "Project: My Project")
	assert.NotContains(t, prompt, "already made these convention decisions")
}

func TestSchema_IncludesTablesAndDescription(t *testing.T) {
	s := domain.NewProjectState()
	s.Identity.Name = "Acme"
	s.Database.Approach = domain.ApproachPlainEnglish
	s.Database.PlainEnglishDescription = "Store users and their orders"
	s.Database.Tables = []domain.Table{
		{Name: "users", Description: "Registered accounts", Columns: "id, email"},
		{Name: ""},
	}

	prompt := Schema(s)

	assert.Contains(t, prompt, "Store users and their orders")
	assert.Contains(t, prompt, "- users: Registered accounts")
	assert.Contains(t, prompt, "Columns: id, email")
}

func TestSkeleton_FallbacksForEmptyState(t *testing.T) {
	s := domain.NewProjectState()

	prompt := Skeleton(s)

	assert.Contains(t, prompt, "- Standard web application layers")
	assert.Contains(t, prompt, "- No features defined yet")
	assert.Contains(t, prompt, "App Type: web-app")
}

func TestFeature(t *testing.T) {
	s := domain.NewProjectState()
	s.Features = append(s.Features, domain.Feature{
		ID:            "f1",
		Name:          "Login",
		Description:   "Users can log in",
		BusinessRules: []string{"Lock after 5 failed attempts", "  "},
		RelatedTables: []string{"users"},
	})
	s.Tasks = append(s.Tasks, domain.Task{
		ID: "t1", TaskNumber: 1, Name: "Build login page",
		FeatureIDs:       []string{"f1"},
		DefinitionOfDone: "Form submits and redirects",
	})

	prompt := Feature(s, "f1")

	assert.Contains(t, prompt, `"Login" feature`)
	assert.Contains(t, prompt, "- Lock after 5 failed attempts")
	assert.Contains(t, prompt, "Related Tables: users")
	assert.Contains(t, prompt, "Done when: Form submits and redirects")

	assert.Empty(t, Feature(s, "missing"))
}

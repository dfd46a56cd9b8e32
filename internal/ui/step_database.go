package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"framewright/internal/domain"
)

// databaseStep picks the schema approach and collects its source text
type databaseStep struct {
	formStep

	approach    string
	description string
	pasted      string
}

func newDatabaseStep(state *domain.ProjectState) *databaseStep {
	s := &databaseStep{
		approach:    string(state.Database.Approach),
		description: state.Database.PlainEnglishDescription,
		pasted:      state.Database.PastedSchema,
	}
	if s.approach == "" {
		s.approach = string(domain.ApproachSkip)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Database schema").
				Description("How should the schema document be sourced?").
				Options(
					huh.NewOption("Describe it in plain English", string(domain.ApproachPlainEnglish)),
					huh.NewOption("Paste SQL DDL", string(domain.ApproachPasteSQL)),
					huh.NewOption("No database / skip", string(domain.ApproachSkip)),
				).
				Value(&s.approach),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Describe your data").
				Description("The entities, their fields, and how they relate. An AI session turns this into a concrete schema.").
				Value(&s.description),
		).WithHideFunc(func() bool { return s.approach != string(domain.ApproachPlainEnglish) }),
		huh.NewGroup(
			huh.NewText().
				Title("Paste your SQL").
				Description("CREATE TABLE statements, included verbatim in SCHEMA.md.").
				Value(&s.pasted),
		).WithHideFunc(func() bool { return s.approach != string(domain.ApproachPasteSQL) }),
	)
	return s
}

func (s *databaseStep) Update(msg tea.Msg) (wizardStep, tea.Cmd) {
	return s, s.handle(msg)
}

func (s *databaseStep) Commit(state *domain.ProjectState) {
	state.Database.Approach = domain.DatabaseApproach(s.approach)
	state.Database.PlainEnglishDescription = s.description
	state.Database.PastedSchema = s.pasted
}

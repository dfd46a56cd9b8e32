package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"framewright/internal/domain"
)

// deploymentStep configures the skeleton deployment guide
type deploymentStep struct {
	formStep

	enabled   bool
	structure string
	notes     string
}

func newDeploymentStep(state *domain.ProjectState) *deploymentStep {
	s := &deploymentStep{
		enabled:   state.Deployment.Enabled,
		structure: state.Deployment.SkeletonStructure,
		notes:     state.Deployment.Notes,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Plan a skeleton deployment?").
				Description("A task-000 walkthrough that stands the project up end to end before any feature work.").
				Value(&s.enabled).
				Affirmative("Yes").
				Negative("No"),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Skeleton structure").
				Description("The folder and file layout the skeleton should create.").
				Value(&s.structure),
			huh.NewText().
				Title("Deployment notes").
				Description("Hosting, environment variables, CI, anything the first deploy needs.").
				Value(&s.notes),
		).WithHideFunc(func() bool { return !s.enabled }),
	)
	return s
}

func (s *deploymentStep) Update(msg tea.Msg) (wizardStep, tea.Cmd) {
	return s, s.handle(msg)
}

func (s *deploymentStep) Commit(state *domain.ProjectState) {
	state.Deployment.Enabled = s.enabled
	state.Deployment.SkeletonStructure = s.structure
	state.Deployment.Notes = s.notes
}

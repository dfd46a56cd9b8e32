package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"framewright/internal/domain"
	"framewright/internal/logging"
	"framewright/internal/services"
	"framewright/internal/theme"
	"framewright/version"
)

// Wizard step indices. The review screen sits past the last form step.
const (
	stepIdentity = iota + 1
	stepArchitecture
	stepStyling
	stepConventions
	stepDatabase
	stepFeatures
	stepTasks
	stepDeployment
	stepReview

	stepCount = stepDeployment
)

var stepTitles = map[int]string{
	stepIdentity:     "Project Identity",
	stepArchitecture: "Architecture",
	stepStyling:      "Styling",
	stepConventions:  "Conventions",
	stepDatabase:     "Database",
	stepFeatures:     "Features",
	stepTasks:        "Tasks",
	stepDeployment:   "Deployment",
	stepReview:       "Review & Export",
}

// wizardStep is one interactive wizard screen. When Done reports true the
// root model commits the step into the project state and advances.
type wizardStep interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (wizardStep, tea.Cmd)
	View() string
	Done() bool
	Cancelled() bool
	Commit(state *domain.ProjectState)
}

// Model is the root wizard model. It owns the project state, walks the
// steps in order, and persists after every completed step.
type Model struct {
	projects *services.ProjectService
	export   *services.ExportService
	state    *domain.ProjectState

	step    int
	current wizardStep
	review  *reviewScreen

	width   int
	height  int
	err     error
	quit    bool
	saveErr error
}

// NewModel creates the wizard model, resuming at the persisted step
func NewModel(projects *services.ProjectService, export *services.ExportService, state *domain.ProjectState) *Model {
	m := &Model{
		projects: projects,
		export:   export,
		state:    state,
		step:     state.Meta.CurrentStep,
	}
	if m.step < stepIdentity || m.step > stepReview {
		m.step = stepIdentity
	}
	m.enterStep(m.step)
	return m
}

// enterStep builds the screen for the given step from current state
func (m *Model) enterStep(step int) {
	m.step = step
	m.review = nil
	m.current = nil

	switch step {
	case stepIdentity:
		m.current = newIdentityStep(m.state)
	case stepArchitecture:
		m.current = newArchitectureStep(m.state)
	case stepStyling:
		m.current = newStylingStep(m.state)
	case stepConventions:
		m.current = newConventionsStep(m.state, m.projects.Catalog())
	case stepDatabase:
		m.current = newDatabaseStep(m.state)
	case stepFeatures:
		m.current = newFeaturesStep(m.state)
	case stepTasks:
		m.current = newTasksStep(m.state)
	case stepDeployment:
		m.current = newDeploymentStep(m.state)
	case stepReview:
		m.review = newReviewScreen(m.state, m.projects, m.export)
	}
}

func (m *Model) Init() tea.Cmd {
	if m.review != nil {
		return m.review.Init()
	}
	return m.current.Init()
}

// saveCmd persists the current state asynchronously
func (m *Model) saveCmd() tea.Cmd {
	state := m.state
	return func() tea.Msg {
		err := m.projects.Save(context.Background(), state)
		if err != nil {
			logging.Logger.Error("Failed to save wizard state", "error", err)
		}
		return savedMsg{err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case savedMsg:
		m.saveErr = msg.err
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
	}

	if m.review != nil {
		review, cmd := m.review.Update(msg)
		m.review = review
		if m.review.editRequested {
			m.enterStep(stepIdentity)
			return m, m.current.Init()
		}
		if m.review.quitRequested {
			m.quit = true
			return m, tea.Quit
		}
		return m, cmd
	}

	step, cmd := m.current.Update(msg)
	m.current = step

	if m.current.Cancelled() {
		// Esc walks back one step; from the first step it exits
		if m.step == stepIdentity {
			m.quit = true
			return m, tea.Quit
		}
		m.enterStep(m.step - 1)
		return m, m.current.Init()
	}

	if m.current.Done() {
		m.current.Commit(m.state)
		m.state.Meta.CurrentStep = m.step + 1
		if m.state.Meta.CurrentStep > m.state.Meta.HighestStepReached {
			m.state.Meta.HighestStepReached = m.state.Meta.CurrentStep
		}
		saveCmd := m.saveCmd()
		m.enterStep(m.step + 1)
		return m, tea.Batch(saveCmd, m.Init())
	}

	return m, cmd
}

func (m *Model) View() string {
	if m.quit {
		return ""
	}

	header := theme.AppNameStyle.Render("framewright") + " " +
		theme.VersionStyle.Render(version.Version) + "  " +
		theme.TaglineStyle.Render(version.Tagline) + "\n" +
		theme.StepStyle.Render(m.stepLabel()) + "\n\n"

	var body string
	if m.review != nil {
		body = m.review.View()
	} else if m.current != nil {
		body = m.current.View()
	}

	if m.saveErr != nil {
		body += "\n" + theme.BudgetDangerStyle.Render(fmt.Sprintf("Save failed: %v", m.saveErr))
	}

	return header + body
}

func (m *Model) stepLabel() string {
	title := stepTitles[m.step]
	if m.step == stepReview {
		return title
	}
	return fmt.Sprintf("Step %d of %d — %s", m.step, stepCount, title)
}

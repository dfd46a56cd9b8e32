package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"framewright/internal/domain"
)

type taskDraft struct {
	name       string
	featureIDs []string
	dod        string
	boundaries string
	outOfScope string
	addAnother bool
}

// tasksStep collects tasks in a repeating sub-form, linking each to
// the features already in the state. Numbers are assigned on Commit.
type tasksStep struct {
	form      *huh.Form
	features  []domain.Feature
	draft     taskDraft
	collected []taskDraft
	done      bool
	cancelled bool
}

func newTasksStep(state *domain.ProjectState) *tasksStep {
	s := &tasksStep{features: state.Features}
	s.form = s.newDraftForm()
	return s
}

func (s *tasksStep) newDraftForm() *huh.Form {
	s.draft = taskDraft{}

	fields := []huh.Field{
		huh.NewInput().
			Title("Task name").
			Description("Leave empty to finish adding tasks.").
			Value(&s.draft.name),
	}

	if len(s.features) > 0 {
		opts := make([]huh.Option[string], 0, len(s.features))
		for _, f := range s.features {
			opts = append(opts, huh.NewOption(f.Name, f.ID))
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Related features").
			Options(opts...).
			Value(&s.draft.featureIDs))
	}

	fields = append(fields,
		huh.NewText().
			Title("Definition of done").
			Description("How does an AI session know this task is finished?").
			Value(&s.draft.dod),
		huh.NewText().
			Title("File boundaries").
			Description("Which files and directories this task may touch.").
			Value(&s.draft.boundaries),
		huh.NewText().
			Title("Out of scope").
			Value(&s.draft.outOfScope),
		huh.NewConfirm().
			Title("Add another task?").
			Value(&s.draft.addAnother).
			Affirmative("Yes").
			Negative("No, continue"),
	)

	return huh.NewForm(huh.NewGroup(fields...))
}

func (s *tasksStep) Init() tea.Cmd { return s.form.Init() }

func (s *tasksStep) Update(msg tea.Msg) (wizardStep, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		s.cancelled = true
		return s, nil
	}

	f, cmd := s.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		s.form = form
	}

	if s.form.State == huh.StateCompleted {
		if strings.TrimSpace(s.draft.name) != "" {
			s.collected = append(s.collected, s.draft)
		}
		if s.draft.addAnother && strings.TrimSpace(s.draft.name) != "" {
			s.form = s.newDraftForm()
			return s, s.form.Init()
		}
		s.done = true
	}
	return s, cmd
}

func (s *tasksStep) View() string {
	if s.done || s.cancelled {
		return ""
	}
	return s.form.View()
}

func (s *tasksStep) Done() bool      { return s.done }
func (s *tasksStep) Cancelled() bool { return s.cancelled }

func (s *tasksStep) Commit(state *domain.ProjectState) {
	for _, d := range s.collected {
		state.Tasks = append(state.Tasks, domain.Task{
			ID:               uuid.New().String(),
			TaskNumber:       domain.NextTaskNumber(state.Tasks),
			Name:             d.name,
			FeatureIDs:       d.featureIDs,
			DefinitionOfDone: strings.TrimSpace(d.dod),
			FileBoundaries:   strings.TrimSpace(d.boundaries),
			OutOfScope:       strings.TrimSpace(d.outOfScope),
			Status:           domain.StatusNotStarted,
			SortOrder:        len(state.Tasks),
		})
	}
}

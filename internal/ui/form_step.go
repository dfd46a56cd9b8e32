package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formStep is the shared base for huh-backed wizard steps: esc cancels,
// form completion marks the step done.
type formStep struct {
	form      *huh.Form
	done      bool
	cancelled bool
}

func (s *formStep) Init() tea.Cmd {
	return s.form.Init()
}

// handle advances the embedded form and updates done/cancelled flags
func (s *formStep) handle(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		s.cancelled = true
		return nil
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}
	if s.form.State == huh.StateCompleted {
		s.done = true
	}
	return cmd
}

func (s *formStep) View() string {
	if s.done || s.cancelled {
		return ""
	}
	return s.form.View()
}

func (s *formStep) Done() bool      { return s.done }
func (s *formStep) Cancelled() bool { return s.cancelled }

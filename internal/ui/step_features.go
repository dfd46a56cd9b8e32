package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"framewright/internal/domain"
)

// splitLines turns a multiline field into trimmed, non-empty lines
func splitLines(v string) []string {
	var out []string
	for _, line := range strings.Split(v, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitCommaList turns "users, orders" into trimmed entries
func splitCommaList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

type featureDraft struct {
	name       string
	desc       string
	rules      string
	criteria   string
	tables     string
	addAnother bool
}

// featuresStep collects features one at a time in a repeating sub-form.
// Drafts are only applied to the state in Commit, so cancelling the step
// discards everything entered during it.
type featuresStep struct {
	form      *huh.Form
	draft     featureDraft
	collected []featureDraft
	done      bool
	cancelled bool
}

func newFeaturesStep(state *domain.ProjectState) *featuresStep {
	s := &featuresStep{}
	s.form = s.newDraftForm()
	return s
}

func (s *featuresStep) newDraftForm() *huh.Form {
	s.draft = featureDraft{}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Feature name").
			Description("Leave empty to finish adding features.").
			Value(&s.draft.name),
		huh.NewText().
			Title("Description").
			Value(&s.draft.desc),
		huh.NewText().
			Title("Business rules").
			Description("One rule per line.").
			Value(&s.draft.rules),
		huh.NewText().
			Title("Acceptance criteria").
			Description("One criterion per line.").
			Value(&s.draft.criteria),
		huh.NewInput().
			Title("Related tables").
			Description("Comma-separated table names, if any.").
			Value(&s.draft.tables),
		huh.NewConfirm().
			Title("Add another feature?").
			Value(&s.draft.addAnother).
			Affirmative("Yes").
			Negative("No, continue"),
	))
}

func (s *featuresStep) Init() tea.Cmd { return s.form.Init() }

func (s *featuresStep) Update(msg tea.Msg) (wizardStep, tea.Cmd) {
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

func (s *featuresStep) View() string {
	if s.done || s.cancelled {
		return ""
	}
	return s.form.View()
}

func (s *featuresStep) Done() bool      { return s.done }
func (s *featuresStep) Cancelled() bool { return s.cancelled }

func (s *featuresStep) Commit(state *domain.ProjectState) {
	wasEmpty := len(state.Features) == 0

	for _, d := range s.collected {
		state.Features = append(state.Features, domain.Feature{
			ID:                 uuid.New().String(),
			Name:               d.name,
			Slug:               domain.Slugify(d.name),
			Description:        strings.TrimSpace(d.desc),
			BusinessRules:      splitLines(d.rules),
			AcceptanceCriteria: splitLines(d.criteria),
			RelatedTables:      splitCommaList(d.tables),
			SortOrder:          len(state.Features),
		})
	}

	if wasEmpty && len(state.Features) > 0 {
		domain.EnsureSkeletonTask(state)
	}
}

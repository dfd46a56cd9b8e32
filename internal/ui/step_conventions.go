package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

// customOptionID marks "write my own" answers in the select widgets
const customOptionID = "__custom__"

type conventionAnswer struct {
	questionID string
	optionID   string
	custom     string
}

// conventionsStep walks the catalog questions for the chosen framework,
// one group per question, with a free-text custom answer escape hatch.
type conventionsStep struct {
	formStep

	answers []conventionAnswer
	custom  string
}

func newConventionsStep(state *domain.ProjectState, cat *catalog.Catalog) *conventionsStep {
	questions := cat.ForStack(state.Identity.TechStack.Framework)

	prior := make(map[string]domain.ConventionDecision, len(state.Conventions.Decisions))
	for _, d := range state.Conventions.Decisions {
		prior[d.QuestionID] = d
	}

	s := &conventionsStep{
		answers: make([]conventionAnswer, len(questions)),
		custom:  state.Conventions.CustomConventions,
	}

	groups := make([]*huh.Group, 0, len(questions)+1)
	for i, q := range questions {
		s.answers[i].questionID = q.ID
		if d, ok := prior[q.ID]; ok {
			s.answers[i].optionID = d.SelectedOptionID
			s.answers[i].custom = d.CustomAnswer
			if d.CustomAnswer != "" {
				s.answers[i].optionID = customOptionID
			}
		}

		opts := make([]huh.Option[string], 0, len(q.Options)+2)
		opts = append(opts, huh.NewOption("Skip this one", ""))
		for _, o := range q.Options {
			label := o.Label
			if o.Recommended {
				label += " (recommended)"
			}
			opts = append(opts, huh.NewOption(label, o.ID))
		}
		opts = append(opts, huh.NewOption("Write my own", customOptionID))

		a := &s.answers[i]
		groups = append(groups,
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(q.Question).
					Description(q.Description).
					Options(opts...).
					Value(&a.optionID),
			).Title(q.Category),
			huh.NewGroup(
				huh.NewText().
					Title("Your convention").
					Value(&a.custom),
			).WithHideFunc(func() bool { return a.optionID != customOptionID }))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewText().
			Title("Custom conventions").
			Description("Anything the catalog didn't cover, in plain markdown.").
			Value(&s.custom),
	))

	s.form = huh.NewForm(groups...)
	return s
}

func (s *conventionsStep) Update(msg tea.Msg) (wizardStep, tea.Cmd) {
	return s, s.handle(msg)
}

func (s *conventionsStep) Commit(state *domain.ProjectState) {
	decisions := make([]domain.ConventionDecision, 0, len(s.answers))
	for _, a := range s.answers {
		switch a.optionID {
		case "":
			// skipped
		case customOptionID:
			if a.custom != "" {
				decisions = append(decisions, domain.ConventionDecision{
					QuestionID:   a.questionID,
					CustomAnswer: a.custom,
				})
			}
		default:
			decisions = append(decisions, domain.ConventionDecision{
				QuestionID:       a.questionID,
				SelectedOptionID: a.optionID,
			})
		}
	}
	state.Conventions.Decisions = decisions
	state.Conventions.CustomConventions = s.custom
}

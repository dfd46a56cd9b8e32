package catalog

import "framewright/internal/domain"

// Question is one convention question with its pre-written answer options
type Question struct {
	ID           string
	Category     string
	Question     string
	Description  string
	ApplicableTo []string
	Required     bool
	Options      []Option
}

// Option is one answer to a convention question. GeneratedText is the
// markdown fragment emitted into CONVENTIONS.md when chosen.
type Option struct {
	ID            string
	Label         string
	Description   string
	Recommended   bool
	GeneratedText string
}

// ResolvedConvention is a decision joined with its catalog question and
// option. Order is the question's position in catalog order, used by the
// renderer to group categories deterministically.
type ResolvedConvention struct {
	QuestionID    string
	Category      string
	Question      string
	OptionLabel   string
	GeneratedText string
	Order         int
}

// Catalog is the static convention-question catalog. It is a swappable
// data module; the generator consumes it through the resolution methods
// only.
type Catalog struct {
	questions []Question
	byID      map[string]int
}

// Default returns the built-in catalog: stack-specific questions first,
// then general ones, deduplicated by id with first occurrence winning.
func Default() *Catalog {
	all := make([]Question, 0,
		len(nextjsQuestions)+len(fastapiQuestions)+len(generalQuestions))
	all = append(all, nextjsQuestions...)
	all = append(all, fastapiQuestions...)
	all = append(all, generalQuestions...)
	return New(all)
}

// New builds a catalog from an ordered question list, deduplicated by id
func New(questions []Question) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(questions))}
	for _, q := range questions {
		if _, seen := c.byID[q.ID]; seen {
			continue
		}
		c.byID[q.ID] = len(c.questions)
		c.questions = append(c.questions, q)
	}
	return c
}

// All returns every question in catalog order
func (c *Catalog) All() []Question {
	return c.questions
}

// ForStack returns the questions applicable to the given framework id,
// in catalog order. Unknown framework ids yield only questions marked
// applicable to every stack ("*").
func (c *Catalog) ForStack(frameworkID string) []Question {
	var out []Question
	for _, q := range c.questions {
		if applicableTo(q, frameworkID) {
			out = append(out, q)
		}
	}
	return out
}

func applicableTo(q Question, frameworkID string) bool {
	for _, id := range q.ApplicableTo {
		if id == "*" || id == frameworkID {
			return true
		}
	}
	return false
}

// Resolve joins a stored decision with its catalog question and option.
// A decision referencing an unknown question or option id resolves false
// and is omitted from output (the deliberate stale-id policy). A decision
// with a custom answer and no selected option resolves to the custom text.
func (c *Catalog) Resolve(d domain.ConventionDecision) (ResolvedConvention, bool) {
	idx, ok := c.byID[d.QuestionID]
	if !ok {
		return ResolvedConvention{}, false
	}
	q := c.questions[idx]

	if d.SelectedOptionID == "" {
		if d.CustomAnswer == "" {
			return ResolvedConvention{}, false
		}
		return ResolvedConvention{
			QuestionID:    q.ID,
			Category:      q.Category,
			Question:      q.Question,
			OptionLabel:   "Custom",
			GeneratedText: d.CustomAnswer,
			Order:         idx,
		}, true
	}

	for _, o := range q.Options {
		if o.ID == d.SelectedOptionID {
			return ResolvedConvention{
				QuestionID:    q.ID,
				Category:      q.Category,
				Question:      q.Question,
				OptionLabel:   o.Label,
				GeneratedText: o.GeneratedText,
				Order:         idx,
			}, true
		}
	}
	return ResolvedConvention{}, false
}

// TechLabel returns the display label for a tech option, falling back to
// the raw id when the catalog no longer carries it
func TechLabel(categoryID, optionID string) string {
	for _, c := range TechCategories {
		if c.ID != categoryID {
			continue
		}
		for _, o := range c.Options {
			if o.ID == optionID {
				return o.Label
			}
		}
	}
	return optionID
}

// AppTypeLabel returns the display label for an app type id, falling back
// to the raw id
func AppTypeLabel(id string) string {
	for _, t := range AppTypes {
		if t.ID == id {
			return t.Label
		}
	}
	return id
}

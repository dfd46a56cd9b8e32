package ui

import (
	"fmt"
	"regexp"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func validateHex(v string) error {
	if v == "" {
		return nil
	}
	if !hexColorRe.MatchString(v) {
		return fmt.Errorf("use #RRGGBB format")
	}
	return nil
}

// stylingStep edits the brand palette, fonts, and component library
type stylingStep struct {
	formStep

	colors []domain.BrandColor
	hexes  []string

	heading string
	body    string
	mono    string

	components string
	notes      string
}

func newStylingStep(state *domain.ProjectState) *stylingStep {
	colors := make([]domain.BrandColor, len(state.Styling.Colors))
	copy(colors, state.Styling.Colors)

	components := state.Styling.ComponentLibrary
	if components == "" {
		components = state.Identity.TechStack.ComponentLibrary
	}

	s := &stylingStep{
		colors:     colors,
		hexes:      make([]string, len(colors)),
		heading:    state.Styling.Fonts.Heading,
		body:       state.Styling.Fonts.Body,
		mono:       state.Styling.Fonts.Mono,
		components: components,
		notes:      state.Styling.AdditionalNotes,
	}

	colorFields := make([]huh.Field, 0, len(colors))
	for i := range colors {
		s.hexes[i] = colors[i].Hex
		colorFields = append(colorFields,
			huh.NewInput().
				Title(colors[i].Name).
				Placeholder("#RRGGBB").
				Value(&s.hexes[i]).
				Validate(validateHex))
	}

	s.form = huh.NewForm(
		huh.NewGroup(colorFields...).Title("Brand colors"),
		huh.NewGroup(
			huh.NewInput().Title("Heading font").Placeholder("Inter").Value(&s.heading),
			huh.NewInput().Title("Body font").Placeholder("Inter").Value(&s.body),
			huh.NewInput().Title("Monospace font").Placeholder("JetBrains Mono").Value(&s.mono),
		).Title("Fonts"),
		huh.NewGroup(
			techSelect("Component library", catalog.ComponentLibraryOptions, &s.components),
			huh.NewText().
				Title("Additional styling notes").
				Description("Spacing scale, border radius, dark mode policy, anything else.").
				Value(&s.notes),
		),
	)
	return s
}

func (s *stylingStep) Update(msg tea.Msg) (wizardStep, tea.Cmd) {
	return s, s.handle(msg)
}

func (s *stylingStep) Commit(state *domain.ProjectState) {
	colors := make([]domain.BrandColor, len(s.colors))
	copy(colors, s.colors)
	for i := range colors {
		if s.hexes[i] != "" {
			colors[i].Hex = s.hexes[i]
		}
	}
	state.Styling.Colors = colors
	state.Styling.Fonts = domain.FontSelection{Heading: s.heading, Body: s.body, Mono: s.mono}
	state.Styling.ComponentLibrary = s.components
	state.Styling.AdditionalNotes = s.notes
}

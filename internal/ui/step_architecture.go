package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

// architectureStep picks the app type and which layers the project has.
// Layer notes and technologies survive toggling; only Enabled changes here.
type architectureStep struct {
	formStep

	appType string
	enabled []string
	notes   string

	layers []domain.Layer
}

func newArchitectureStep(state *domain.ProjectState) *architectureStep {
	layers := state.Architecture.Layers
	if len(layers) == 0 {
		layers = catalog.DefaultsForStack(state.Identity.TechStack).Layers
	}

	s := &architectureStep{
		appType: state.Architecture.AppType,
		layers:  layers,
	}
	for _, l := range layers {
		if l.Enabled {
			s.enabled = append(s.enabled, l.ID)
		}
	}

	appTypes := make([]huh.Option[string], 0, len(catalog.AppTypes))
	for _, at := range catalog.AppTypes {
		appTypes = append(appTypes, huh.NewOption(at.Label, at.ID))
	}

	layerOpts := make([]huh.Option[string], 0, len(layers))
	for _, l := range layers {
		layerOpts = append(layerOpts, huh.NewOption(l.Name, l.ID))
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Application type").
			Options(appTypes...).
			Value(&s.appType),
		huh.NewMultiSelect[string]().
			Title("Layers").
			Description("Toggle the layers this project actually has.").
			Options(layerOpts...).
			Value(&s.enabled),
	))
	return s
}

func (s *architectureStep) Update(msg tea.Msg) (wizardStep, tea.Cmd) {
	return s, s.handle(msg)
}

func (s *architectureStep) Commit(state *domain.ProjectState) {
	state.Architecture.AppType = s.appType

	on := make(map[string]bool, len(s.enabled))
	for _, id := range s.enabled {
		on[id] = true
	}
	layers := make([]domain.Layer, len(s.layers))
	copy(layers, s.layers)
	for i := range layers {
		layers[i].Enabled = on[layers[i].ID]
	}
	state.Architecture.Layers = layers
}

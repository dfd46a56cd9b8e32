package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"framewright/internal/catalog"
	"framewright/internal/domain"
)

// identityStep collects name, purpose, mode, and the tech stack
type identityStep struct {
	formStep

	name     string
	purpose  string
	existing bool

	framework  string
	styling    string
	database   string
	auth       string
	deployment string
	components string

	folderTree string
}

func techSelect(title string, options []catalog.TechOption, value *string) *huh.Select[string] {
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.ID))
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(value)
}

func newIdentityStep(state *domain.ProjectState) *identityStep {
	s := &identityStep{
		name:       state.Identity.Name,
		purpose:    state.Identity.Purpose,
		existing:   state.Identity.ProjectMode == domain.ModeExisting,
		framework:  state.Identity.TechStack.Framework,
		styling:    state.Identity.TechStack.Styling,
		database:   state.Identity.TechStack.Database,
		auth:       state.Identity.TechStack.Auth,
		deployment: state.Identity.TechStack.Deployment,
		components: state.Identity.TechStack.ComponentLibrary,
		folderTree: state.Identity.ExistingFolderTree,
	}

	basics := huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Value(&s.name).
			DescriptionFunc(func() string {
				if s.name != "" {
					return fmt.Sprintf("Slug: %s", domain.Slugify(s.name))
				}
				return ""
			}, &s.name).
			Validate(func(v string) error {
				if v == "" {
					return fmt.Errorf("project name required")
				}
				return nil
			}),
		huh.NewText().
			Title("Purpose").
			Description("One or two sentences: what does this project do, and for whom?").
			Value(&s.purpose),
		huh.NewConfirm().
			Title("Existing codebase?").
			Description("Pick Yes to document a project that already has code.").
			Value(&s.existing).
			Affirmative("Yes").
			Negative("No"),
	)

	existing := huh.NewGroup(
		huh.NewText().
			Title("Existing folder structure").
			Description("Paste the output of `tree -L 2` (or similar) from the project root.").
			Value(&s.folderTree),
	).WithHideFunc(func() bool { return !s.existing })

	stack := huh.NewGroup(
		techSelect("Framework", catalog.FrameworkOptions, &s.framework),
		techSelect("Styling", catalog.StylingOptions, &s.styling),
		techSelect("Database", catalog.DatabaseOptions, &s.database),
		techSelect("Auth", catalog.AuthOptions, &s.auth),
		techSelect("Deployment", catalog.DeploymentOptions, &s.deployment),
		techSelect("Component library", catalog.ComponentLibraryOptions, &s.components),
	)

	s.form = huh.NewForm(basics, existing, stack)
	return s
}

func (s *identityStep) Update(msg tea.Msg) (wizardStep, tea.Cmd) {
	return s, s.handle(msg)
}

func (s *identityStep) Commit(state *domain.ProjectState) {
	state.Identity.Name = s.name
	state.Identity.Slug = domain.Slugify(s.name)
	state.Identity.Purpose = s.purpose
	if s.existing {
		state.Identity.ProjectMode = domain.ModeExisting
		state.Identity.ExistingFolderTree = s.folderTree
	} else {
		state.Identity.ProjectMode = domain.ModeNew
		state.Identity.ExistingFolderTree = ""
	}

	state.Identity.TechStack.Framework = s.framework
	state.Identity.TechStack.Styling = s.styling
	state.Identity.TechStack.Database = s.database
	state.Identity.TechStack.Auth = s.auth
	state.Identity.TechStack.Deployment = s.deployment
	state.Identity.TechStack.ComponentLibrary = s.components

	// Seed layers from the stack defaults the first time through
	defaults := catalog.DefaultsForStack(state.Identity.TechStack)
	if state.Architecture.AppType == "" {
		state.Architecture.AppType = defaults.AppType
	}
	if len(state.Architecture.Layers) == 0 {
		state.Architecture.Layers = defaults.Layers
	}
}

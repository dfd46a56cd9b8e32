package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"framewright/internal/logging"
	"framewright/internal/ui"
)

// RunCmd starts the wizard TUI
type RunCmd struct{}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	defer cli.Close()

	state, err := cli.Container.ProjectService.LoadOrCreate(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}

	logging.Logger.Info("Starting wizard",
		"project_id", state.Meta.ID,
		"step", state.Meta.CurrentStep)

	model := ui.NewModel(cli.Container.ProjectService, cli.Container.ExportService, state)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}

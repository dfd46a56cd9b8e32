package ui

import "github.com/charmbracelet/bubbles/key"

// reviewKeyMap holds the review-screen key bindings
type reviewKeyMap struct {
	Edit      key.Binding
	ExportDir key.Binding
	ExportZip key.Binding
	Quit      key.Binding
}

func newReviewKeyMap() reviewKeyMap {
	return reviewKeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit answers"),
		),
		ExportDir: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "export to folder"),
		),
		ExportZip: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "export zip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.ExportDir, k.ExportZip, k.Quit}
}

func (k reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

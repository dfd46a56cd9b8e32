package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// File tree styles
var (
	FileStyle = lipgloss.NewStyle().
			Foreground(ColorFile)

	FolderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorFolder)

	WordCountStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Word-count budget styles
var (
	BudgetDangerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorDanger)

	BudgetOKStyle = lipgloss.NewStyle().
			Foreground(ColorOK)

	BudgetWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)
)

// Task status styles
var (
	StatusBlockedStyle = lipgloss.NewStyle().
				Foreground(ColorBlocked)

	StatusDoneStyle = lipgloss.NewStyle().
			Foreground(ColorDone)

	StatusInProgressStyle = lipgloss.NewStyle().
				Foreground(ColorInProgress)

	StatusNotStartedStyle = lipgloss.NewStyle().
				Foreground(ColorNotStarted)
)

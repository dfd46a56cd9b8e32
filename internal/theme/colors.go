package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Task status colors
const (
	ColorBlocked    Color = "1" // Red
	ColorDone       Color = "2" // Green
	ColorInProgress Color = "3" // Yellow
	ColorNotStarted Color = "8" // Gray
)

// UI semantic colors
const (
	ColorDanger    Color = "196" // Bright red - word-count danger
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange - word-count warning
)

// Accent colors
const (
	ColorFile    Color = "250" // Tree file entries
	ColorFolder  Color = "33"  // Blue - tree folders
	ColorOK      Color = "46"  // Green - checks passed
	ColorSpinner Color = "205" // Pink
)

package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Session state colors
const (
	ColorRunning  Color = "2"   // Green - timer running
	ColorSynced   Color = "8"   // Gray - acknowledged by the remote
	ColorUnsynced Color = "214" // Orange - waiting for upload
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Score colors, low to high
const (
	ColorScoreHigh Color = "46"  // Green
	ColorScoreLow  Color = "203" // Salmon
	ColorScoreMid  Color = "226" // Yellow
)

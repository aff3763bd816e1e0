package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Main CLI styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Session state styles
var (
	RunningStyle = lipgloss.NewStyle().
			Foreground(ColorRunning).
			Bold(true)

	SyncedStyle = lipgloss.NewStyle().
			Foreground(ColorSynced)

	UnsyncedStyle = lipgloss.NewStyle().
			Foreground(ColorUnsynced)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// BoxStyle frames the status summary
var BoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPrimary).
	Padding(0, 1)

// SyncBadge renders the synced flag of a session
func SyncBadge(synced bool) string {
	if synced {
		return SyncedStyle.Render("synced")
	}
	return UnsyncedStyle.Render("pending")
}

// ScoreStyle picks a color for an efficiency score (0..100)
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 66:
		return lipgloss.NewStyle().Foreground(ColorScoreHigh)
	case score >= 33:
		return lipgloss.NewStyle().Foreground(ColorScoreMid)
	default:
		return lipgloss.NewStyle().Foreground(ColorScoreLow)
	}
}

// FormatScore renders an optional score with its color
func FormatScore(score *float64) string {
	if score == nil {
		return MutedStyle.Render("-")
	}
	return ScoreStyle(*score).Render(fmt.Sprintf("%.2f", *score))
}

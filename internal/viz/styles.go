package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are rebuilt from CurrentTheme on every frame so theme cycling takes
// effect immediately.
type styles struct {
	court  lipgloss.Style
	panel  lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	score  lipgloss.Style
	flash  lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
	paused lipgloss.Style
}

func themeStyles(t Theme) styles {
	return styles{
		court: lipgloss.NewStyle().
			Foreground(t.Court).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		panel: lipgloss.NewStyle().Padding(0, 2).Width(40),
		title: lipgloss.NewStyle().Foreground(t.Score).Bold(true),
		label: lipgloss.NewStyle().Foreground(t.Label).Width(12),
		value: lipgloss.NewStyle().Foreground(t.Court),
		score: lipgloss.NewStyle().Foreground(t.Score).Bold(true),
		flash: lipgloss.NewStyle().Foreground(t.Court).Background(t.Score).Bold(true),
		graph: lipgloss.NewStyle().Foreground(t.Graph).MarginTop(1),
		help:  lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		paused: lipgloss.NewStyle().
			Foreground(t.Score).
			Bold(true).
			Blink(true),
	}
}

// ProgressBar renders how far the current rally is toward the best one.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

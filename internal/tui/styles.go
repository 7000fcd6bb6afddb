package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ppiankov/spectrabench/internal/models"
)

// Severity colors
var (
	colorError   = lipgloss.Color("#FF0000")
	colorWarning = lipgloss.Color("#FF8800")
	colorInfo    = lipgloss.Color("#00FF00")
	colorMuted   = lipgloss.Color("#888888")
	colorAccent  = lipgloss.Color("#7B68EE")
	colorBorder  = lipgloss.Color("#444444")
)

// Panel styles
var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	styleDetailPanel = lipgloss.NewStyle().
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderTop(true).
				BorderForeground(colorBorder)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleSearchPrompt = lipgloss.NewStyle().
				Foreground(colorAccent).Bold(true)
)

// severityStyle returns the lipgloss style for a severity label.
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case models.SeverityError:
		return lipgloss.NewStyle().Foreground(colorError).Bold(true)
	case models.SeverityWarning:
		return lipgloss.NewStyle().Foreground(colorWarning)
	case models.SeverityInfo:
		return lipgloss.NewStyle().Foreground(colorInfo)
	default:
		return lipgloss.NewStyle()
	}
}

package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"fieldmap/internal/diagnostic"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	severityTags = map[diagnostic.Severity]lipgloss.Style{
		diagnostic.SeverityError:   lipgloss.NewStyle().Foreground(colorError),
		diagnostic.SeverityWarning: lipgloss.NewStyle().Foreground(colorWarning),
		diagnostic.SeverityInfo:    mutedStyle,
	}
)

func severityTag(s diagnostic.Severity) string {
	return severityTags[s].Render(s.String())
}

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/structureguard/structguard/model"
)

var (
	// Colors
	colorRed     = lipgloss.Color("#FF5555")
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorOrange  = lipgloss.Color("#FFB86C")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")
	colorPanel   = lipgloss.Color("#44475A")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	valueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle     = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle     = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(colorGreen)
	headerStyle   = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite)
	helpStyle     = lipgloss.NewStyle().Foreground(colorGray)
	dimStyle      = lipgloss.NewStyle().Foreground(colorGray)
	orangeStyle   = lipgloss.NewStyle().Foreground(colorOrange)
)

// statusStyle colors a sensor status tier.
func statusStyle(status model.SensorStatus) lipgloss.Style {
	switch status {
	case model.StatusCritical:
		return critStyle
	case model.StatusWarning:
		return warnStyle
	case model.StatusOffline:
		return dimStyle
	default:
		return okStyle
	}
}

// severityStyle colors an alert severity.
func severityStyle(sev model.AlertSeverity) lipgloss.Style {
	switch sev {
	case model.SeverityCritical:
		return critStyle
	case model.SeverityWarning:
		return warnStyle
	default:
		return orangeStyle
	}
}

// healthStyle colors a 0-100 health score (high is good).
func healthStyle(score int) lipgloss.Style {
	switch {
	case score < 40:
		return critStyle
	case score < 70:
		return warnStyle
	default:
		return okStyle
	}
}

// riskStyle colors a 0-100 failure-risk score (high is bad).
func riskStyle(risk int) lipgloss.Style {
	switch {
	case risk > 60:
		return critStyle
	case risk > 35:
		return warnStyle
	default:
		return okStyle
	}
}

package ui

import (
	"fmt"
	"strings"

	"github.com/structureguard/structguard/model"
)

// renderAnalytics shows the predictive view: failure-risk gauge, fatigue
// accumulation per sensor, remaining-life projections, and maintenance
// recommendations.
func renderAnalytics(snap *model.Snapshot, an *model.Analysis) string {
	var sb strings.Builder

	if an == nil {
		return dimStyle.Render(" Waiting for first analysis...")
	}

	sb.WriteString(" " + titleStyle.Render("Failure Risk Score") + "\n")
	sb.WriteString(fmt.Sprintf(" %s %s\n\n",
		bar(float64(an.FailureRisk), 40, riskStyle(an.FailureRisk)),
		riskStyle(an.FailureRisk).Render(fmt.Sprintf("%d/100", an.FailureRisk))))

	sb.WriteString(" " + titleStyle.Render("Fatigue Accumulation") + "\n")
	for _, f := range an.Fatigue {
		sb.WriteString(fmt.Sprintf(" %s %s %s\n",
			styledPad(dimStyle.Render(f.SensorID), 7),
			bar(float64(f.Pct), 30, statusStyle(f.Status)),
			statusStyle(f.Status).Render(fmt.Sprintf("%3d%%", f.Pct))))
	}
	sb.WriteString("\n")

	sb.WriteString(" " + titleStyle.Render("Remaining Useful Life") + "\n")
	if len(an.RemainingLife) == 0 {
		sb.WriteString(dimStyle.Render(" All sensors nominal — no degraded components.") + "\n")
	} else {
		for _, le := range an.RemainingLife {
			style := warnStyle
			if le.RemainingDays <= 30 {
				style = critStyle
			}
			sb.WriteString(fmt.Sprintf(" %s %s %s\n",
				styledPad(dimStyle.Render(le.SensorID), 7),
				styledPad(valueStyle.Render(truncate(le.Name, 28)), 29),
				style.Render(fmt.Sprintf("~%d days", le.RemainingDays))))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(" " + titleStyle.Render("Maintenance Recommendations") + "\n")
	for _, rec := range an.Recommendations {
		label := priorityLabel(rec.Priority)
		sb.WriteString(fmt.Sprintf(" %s %s\n", label, valueStyle.Render(rec.Action)))
		sb.WriteString(fmt.Sprintf("          %s\n", dimStyle.Render(rec.Deadline)))
	}

	return sb.String()
}

func priorityLabel(p model.AlertSeverity) string {
	switch p {
	case model.SeverityCritical:
		return critStyle.Render(styledPad("[URGENT]", 9))
	case model.SeverityWarning:
		return warnStyle.Render(styledPad("[HIGH]", 9))
	default:
		return orangeStyle.Render(styledPad("[ROUTINE]", 9))
	}
}

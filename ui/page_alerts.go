package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/structureguard/structguard/model"
)

// renderAlerts shows the alert feed newest first. The highlighted alert can
// be acknowledged with 'a'; acknowledged entries render dimmed.
func renderAlerts(snap *model.Snapshot, selected int, now time.Time) string {
	var sb strings.Builder

	unacked := 0
	for _, a := range snap.Alerts {
		if !a.Acknowledged {
			unacked++
		}
	}
	sb.WriteString(fmt.Sprintf(" %s %s\n\n",
		titleStyle.Render("Alert Feed"),
		dimStyle.Render(fmt.Sprintf("%d alerts, %d unacknowledged", len(snap.Alerts), unacked))))

	if len(snap.Alerts) == 0 {
		sb.WriteString(dimStyle.Render(" No alerts."))
		return sb.String()
	}

	for i, a := range snap.Alerts {
		cursor := " "
		if i == selected {
			cursor = selectedStyle.Render("▸")
		}

		sev := severityStyle(a.Severity).Render(strings.ToUpper(string(a.Severity)))
		ack := dimStyle.Render("· unacked")
		if a.Acknowledged {
			ack = okStyle.Render("✓ acked")
		}

		sb.WriteString(fmt.Sprintf("%s %s %s %s %s\n", cursor,
			styledPad(sev, 9),
			styledPad(dimStyle.Render(a.SensorID), 7),
			styledPad(dimStyle.Render(timeAgo(a.Timestamp, now)), 9),
			ack))

		msg := a.Message
		style := valueStyle
		if a.Acknowledged {
			style = dimStyle
		}
		sb.WriteString("     " + style.Render(msg) + "\n\n")
	}

	sb.WriteString(helpStyle.Render(" j/k: select  a: acknowledge"))
	return sb.String()
}

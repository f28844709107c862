package ui

import (
	"fmt"
	"strings"

	"github.com/structureguard/structguard/model"
)

// renderSensors shows the selectable sensor table plus a detail panel with
// the rolling history chart for the highlighted sensor.
func renderSensors(snap *model.Snapshot, selected, width, height int) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf(" %-7s %-26s %-14s %-10s %-12s %-8s %s",
		"ID", "NAME", "LOCATION", "STATUS", "VALUE", "HEALTH", "TREND")))
	sb.WriteString("\n")

	for i, s := range snap.Sensors {
		line := fmt.Sprintf(" %-7s %-26s %-14s %s %s %s %s",
			s.ID,
			truncate(s.Name, 26),
			truncate(s.Location, 14),
			styledPad(statusStyle(s.Status).Render(strings.ToUpper(s.Status.String())), 11),
			styledPad(valueStyle.Render(fmt.Sprintf("%.2f %s", s.Value, s.Unit)), 13),
			styledPad(healthStyle(s.HealthScore).Render(fmt.Sprintf("%3d", s.HealthScore)), 9),
			sparkline(s.Data, 12))
		if i == selected {
			line = selectedStyle.Render("▸") + line[1:]
		}
		sb.WriteString(line + "\n")
	}

	if selected >= 0 && selected < len(snap.Sensors) {
		s := snap.Sensors[selected]
		sb.WriteString("\n")
		sb.WriteString(renderSensorDetail(s, width, height))
	}

	return sb.String()
}

// renderSensorDetail is the per-sensor panel: metadata plus the 24-point
// history chart scaled against the safety threshold.
func renderSensorDetail(s model.Sensor, width, height int) string {
	var sb strings.Builder

	usagePct := s.Usage() * 100
	sb.WriteString(renderKVBox(s.ID+" — "+s.Name, []kv{
		{"Type", string(s.Type)},
		{"Location", s.Location},
		{"Reading", fmt.Sprintf("%.2f %s", s.Value, s.Unit)},
		{"Threshold", fmt.Sprintf("%.2f %s (%.1f%% used)", s.Threshold, s.Unit, usagePct)},
		{"Status", strings.ToUpper(s.Status.String())},
		{"Health score", fmt.Sprintf("%d/100", s.HealthScore)},
	}, 52))
	sb.WriteString("\n")

	chartH := height - 22
	if chartH < 5 {
		chartH = 5
	}
	if chartH > 10 {
		chartH = 10
	}
	chartW := width - 4
	if chartW > 90 {
		chartW = 90
	}
	label := fmt.Sprintf("%s (%s), last %d readings", s.Name, s.Unit, len(s.Data))
	sb.WriteString(areaChart(s.Data, label, chartW, chartH, s.Threshold, usageChartColor(s.Threshold)))

	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/structureguard/structguard/model"
)

// renderOverview shows the asset summary, the overall-health gauge, the
// sensor status strip, and a compact card per sensor.
func renderOverview(snap *model.Snapshot, width int) string {
	var sb strings.Builder

	asset := snap.Asset
	sb.WriteString(renderKVBox(asset.Name, []kv{
		{"Asset ID", asset.ID},
		{"Type", asset.Type},
		{"Location", asset.Location},
		{"Built", fmt.Sprintf("%d", asset.BuiltYear)},
		{"Last inspection", asset.LastInspection},
	}, 52))

	healthBar := bar(float64(asset.OverallHealth), 30, healthStyle(asset.OverallHealth))
	sb.WriteString(fmt.Sprintf("\n %s %s %s\n",
		styledPad(dimStyle.Render("Overall health:"), 18),
		healthBar,
		healthStyle(asset.OverallHealth).Render(fmt.Sprintf("%d/100", asset.OverallHealth))))
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		styledPad(dimStyle.Render("Active sensors:"), 18),
		valueStyle.Render(fmt.Sprintf("%d of %d", asset.ActiveSensors, asset.SensorCount))))
	critStr := fmt.Sprintf("%d unacknowledged", asset.CriticalAlerts)
	if asset.CriticalAlerts > 0 {
		sb.WriteString(fmt.Sprintf(" %s %s\n", styledPad(dimStyle.Render("Critical alerts:"), 18), critStyle.Render(critStr)))
	} else {
		sb.WriteString(fmt.Sprintf(" %s %s\n", styledPad(dimStyle.Render("Critical alerts:"), 18), okStyle.Render("none")))
	}

	// Status strip
	counts := snap.CountByStatus()
	sb.WriteString("\n ")
	for _, st := range []model.SensorStatus{model.StatusNormal, model.StatusWarning, model.StatusCritical, model.StatusOffline} {
		sb.WriteString(statusStyle(st).Render(fmt.Sprintf("● %d %s", counts[st], st)))
		sb.WriteString("   ")
	}
	sb.WriteString("\n\n")

	// Sensor cards, two columns when the terminal allows
	cards := make([]string, 0, len(snap.Sensors))
	for _, s := range snap.Sensors {
		cards = append(cards, renderSensorCard(s))
	}
	if width >= 110 {
		half := (len(cards) + 1) / 2
		left := strings.Join(cards[:half], "\n")
		right := strings.Join(cards[half:], "\n")
		sb.WriteString(joinColumns(left, right, 56))
	} else {
		sb.WriteString(strings.Join(cards, "\n"))
	}

	return sb.String()
}

// renderSensorCard is the compact one-box view of a sensor.
func renderSensorCard(s model.Sensor) string {
	var sb strings.Builder
	innerW := 50
	sb.WriteString(boxTop(s.ID+" "+s.Name, innerW) + "\n")

	usagePct := s.Usage() * 100
	sb.WriteString(boxRow(fmt.Sprintf("%s %s   %s",
		styledPad(statusStyle(s.Status).Render(strings.ToUpper(s.Status.String())), 10),
		styledPad(valueStyle.Render(fmt.Sprintf("%.2f %s", s.Value, s.Unit)), 16),
		dimStyle.Render(fmt.Sprintf("limit %.2f", s.Threshold))), innerW) + "\n")
	sb.WriteString(boxRow(fmt.Sprintf("%s %s",
		bar(usagePct, 26, statusStyle(s.Status)),
		dimStyle.Render(fmt.Sprintf("%.0f%% of threshold", usagePct))), innerW) + "\n")
	sb.WriteString(boxRow(fmt.Sprintf("%s %s",
		styledPad(dimStyle.Render("health"), 7),
		healthStyle(s.HealthScore).Render(fmt.Sprintf("%3d", s.HealthScore))), innerW) + "\n")
	sb.WriteString(boxBot(innerW))
	return sb.String()
}

// renderLastUpdate formats the staleness line for the status bar.
func renderLastUpdate(snap *model.Snapshot, now time.Time) string {
	if snap == nil {
		return ""
	}
	return fmt.Sprintf("tick %d · updated %s", snap.Tick, timeAgo(snap.Timestamp, now))
}

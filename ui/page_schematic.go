package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/structureguard/structguard/model"
)

// bridgeArt is the elevation view of the monitored bridge. Sensor markers
// are overlaid at fixed positions on top of this grid.
var bridgeArt = []string{
	``,
	`          ┃                                ┃`,
	`         ╱┃╲                              ╱┃╲`,
	`        ╱ ┃ ╲                            ╱ ┃ ╲`,
	`       ╱  ┃  ╲                          ╱  ┃  ╲`,
	`      ╱   ┃   ╲                        ╱   ┃   ╲`,
	` ════╪════╧════╪════════════════════════╪════╧════╪════`,
	`     │         │                        │         │`,
	`     │         │                        │         │`,
	`     │         │                        │         │`,
	`~~~~~┴~~~~~~~~~┴~~~~~~~~~~~~~~~~~~~~~~~~┴~~~~~~~~~┴~~~~~`,
}

// sensorMarks maps sensor ids to (row, col) positions on bridgeArt,
// following the layout of the physical installation.
var sensorMarks = map[string][2]int{
	"S-001": {6, 28}, // main span midpoint
	"S-002": {6, 20}, // main span quarter
	"S-003": {9, 42}, // pier 2 base
	"S-004": {5, 30}, // deck center
	"S-005": {3, 36}, // cable 4 anchor
	"S-006": {10, 11}, // foundation north
	"S-007": {7, 8},  // bearing 1 east
	"S-008": {8, 46}, // pier 1 south face
}

// renderSchematic draws the bridge elevation with status-colored sensor
// markers and a legend tied to the current selection.
func renderSchematic(snap *model.Snapshot, selected int) string {
	statusByID := make(map[string]model.SensorStatus, len(snap.Sensors))
	for _, s := range snap.Sensors {
		statusByID[s.ID] = s.Status
	}
	selectedID := ""
	if selected >= 0 && selected < len(snap.Sensors) {
		selectedID = snap.Sensors[selected].ID
	}

	type mark struct {
		id  string
		col int
	}
	marksByRow := make(map[int][]mark)
	for id, pos := range sensorMarks {
		if _, known := statusByID[id]; !known {
			continue
		}
		marksByRow[pos[0]] = append(marksByRow[pos[0]], mark{id: id, col: pos[1]})
	}
	for _, row := range marksByRow {
		sort.Slice(row, func(i, j int) bool { return row[i].col < row[j].col })
	}

	var sb strings.Builder
	sb.WriteString(" " + titleStyle.Render("Bridge Schematic") + "  " +
		dimStyle.Render("j/k selects a sensor, markers follow live status") + "\n\n")

	for rowIdx, line := range bridgeArt {
		runes := []rune(line)
		marks := marksByRow[rowIdx]

		col := 0
		var out strings.Builder
		out.WriteString(" ")
		for _, mk := range marks {
			for col < mk.col && col < len(runes) {
				out.WriteString(dimStyle.Render(string(runes[col])))
				col++
			}
			// Pad if the mark sits beyond the art line
			for col < mk.col {
				out.WriteString(" ")
				col++
			}
			glyph := "●"
			if mk.id == selectedID {
				glyph = "◉"
			}
			out.WriteString(statusStyle(statusByID[mk.id]).Render(glyph))
			if col < len(runes) {
				col++
			}
		}
		for col < len(runes) {
			out.WriteString(dimStyle.Render(string(runes[col])))
			col++
		}
		sb.WriteString(out.String() + "\n")
	}

	sb.WriteString("\n")
	for i, s := range snap.Sensors {
		cursor := " "
		if i == selected {
			cursor = selectedStyle.Render("▸")
		}
		sb.WriteString(fmt.Sprintf("%s %s %s %s %s\n", cursor,
			statusStyle(s.Status).Render("●"),
			styledPad(valueStyle.Render(s.ID), 7),
			styledPad(dimStyle.Render(truncate(s.Location, 22)), 23),
			statusStyle(s.Status).Render(fmt.Sprintf("%.2f %s", s.Value, s.Unit))))
	}

	return sb.String()
}

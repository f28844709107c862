package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/structureguard/structguard/model"
)

// areaChart renders a sensor history as an area chart with Y-axis labels and
// sub-cell resolution using fractional block characters.
//
//	Cable Stay Tension #4 (MPa)                 now: 388.4
//	420│
//	340│          ████
//	260│        ████████       ██
//	180│    ████████████████████████
//	100│████████████████████████████████████████
//	   └────────────────────────────────────────
//	   09:30                               15:30
func areaChart(data []model.TimeSeriesPoint, label string, width, height int, threshold float64,
	colorFn func(float64) lipgloss.Style) string {

	if height < 2 {
		height = 2
	}

	values := make([]float64, len(data))
	minVal, maxVal := 0.0, threshold
	for i, p := range data {
		values[i] = p.Value
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	if maxVal <= minVal {
		maxVal = minVal + 1
	}

	axisW := 7 // e.g. "  420.0│"
	chartW := width - axisW - 1
	if chartW < 10 {
		chartW = 10
	}

	resampled := resampleData(values, chartW)

	// Sub-block characters for fractional fill within a cell
	subBlocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var sb strings.Builder

	last := float64(0)
	if len(resampled) > 0 {
		last = resampled[len(resampled)-1]
	}
	sb.WriteString(titleStyle.Render(label))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  now: %.2f", last)))
	sb.WriteString("\n")

	rangeVal := maxVal - minVal

	for row := height - 1; row >= 0; row-- {
		yVal := minVal + (float64(row+1)/float64(height))*rangeVal
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%6.1f", yVal)))
		sb.WriteString(dimStyle.Render("│"))

		for col := 0; col < len(resampled); col++ {
			val := resampled[col]
			normalized := (val - minVal) / rangeVal * float64(height)

			cellBottom := float64(row)
			cellTop := float64(row + 1)

			var ch rune
			if normalized >= cellTop {
				ch = '█'
			} else if normalized <= cellBottom {
				ch = ' '
			} else {
				fraction := normalized - cellBottom
				idx := int(fraction * 8)
				if idx >= len(subBlocks) {
					idx = len(subBlocks) - 1
				}
				if idx < 0 {
					idx = 0
				}
				ch = subBlocks[idx]
			}

			if ch == ' ' {
				sb.WriteRune(' ')
			} else {
				sb.WriteString(colorFn(val).Render(string(ch)))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(dimStyle.Render(strings.Repeat(" ", axisW-1) + "└" + strings.Repeat("─", len(resampled))))
	sb.WriteString("\n")

	if len(data) > 1 {
		left := data[0].Timestamp.Format("15:04")
		right := data[len(data)-1].Timestamp.Format("15:04")
		gap := len(resampled) - len(left) - len(right)
		if gap < 1 {
			gap = 1
		}
		sb.WriteString(dimStyle.Render(strings.Repeat(" ", axisW-1) + left + strings.Repeat(" ", gap) + right))
	}

	return sb.String()
}

// resampleData reduces or returns data to fit targetWidth columns.
func resampleData(data []float64, targetWidth int) []float64 {
	if len(data) == 0 {
		return data
	}
	if len(data) <= targetWidth {
		return data
	}
	result := make([]float64, targetWidth)
	for i := 0; i < targetWidth; i++ {
		// Average the bucket of source values that map to this column
		srcStart := i * len(data) / targetWidth
		srcEnd := (i + 1) * len(data) / targetWidth
		if srcEnd > len(data) {
			srcEnd = len(data)
		}
		if srcStart >= srcEnd {
			srcStart = srcEnd - 1
			if srcStart < 0 {
				srcStart = 0
			}
		}
		sum := float64(0)
		count := 0
		for j := srcStart; j < srcEnd; j++ {
			sum += data[j]
			count++
		}
		if count > 0 {
			result[i] = sum / float64(count)
		}
	}
	return result
}

// usageChartColor colors chart cells by their distance from the threshold.
func usageChartColor(threshold float64) func(float64) lipgloss.Style {
	return func(val float64) lipgloss.Style {
		usage := val / threshold
		switch {
		case usage > 0.9:
			return critStyle
		case usage > 0.7:
			return warnStyle
		default:
			return okStyle
		}
	}
}

// sparkline renders a compact one-line history for table rows.
func sparkline(data []model.TimeSeriesPoint, width int) string {
	if len(data) == 0 || width < 1 {
		return ""
	}
	values := make([]float64, len(data))
	minV, maxV := data[0].Value, data[0].Value
	for i, p := range data {
		values[i] = p.Value
		if p.Value < minV {
			minV = p.Value
		}
		if p.Value > maxV {
			maxV = p.Value
		}
	}
	if maxV == minV {
		maxV = minV + 1
	}
	resampled := resampleData(values, width)
	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	var sb strings.Builder
	for _, v := range resampled {
		idx := int((v - minV) / (maxV - minV) * float64(len(blocks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		sb.WriteRune(blocks[idx])
	}
	return sb.String()
}

// timeAgo formats how long ago a timestamp was, coarsely.
func timeAgo(t time.Time, now time.Time) string {
	mins := int(now.Sub(t).Minutes())
	if mins < 1 {
		return "just now"
	}
	if mins < 60 {
		return fmt.Sprintf("%dm ago", mins)
	}
	hrs := mins / 60
	if hrs < 24 {
		return fmt.Sprintf("%dh ago", hrs)
	}
	return fmt.Sprintf("%dd ago", hrs/24)
}

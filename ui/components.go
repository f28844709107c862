package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// kv is one key-value row inside a box.
type kv struct {
	Key string
	Val string
}

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// ─── BOX DRAWING HELPERS ─────────────────────────────────────────────────────

// boxTop renders the top border of a rounded box with an optional title.
func boxTop(title string, innerW int) string {
	if title == "" {
		return " " + dimStyle.Render("╭"+strings.Repeat("─", innerW+2)+"╮")
	}
	label := " " + title + " "
	fill := innerW + 2 - lipgloss.Width(label) - 1
	if fill < 0 {
		fill = 0
	}
	return " " + dimStyle.Render("╭─") + titleStyle.Render(label) + dimStyle.Render(strings.Repeat("─", fill)+"╮")
}

// boxBot renders the bottom border of a rounded box.
func boxBot(innerW int) string {
	return " " + dimStyle.Render("╰"+strings.Repeat("─", innerW+2)+"╯")
}

// boxRow renders one content line inside a box, padded to innerW.
func boxRow(content string, innerW int) string {
	visW := lipgloss.Width(content)
	pad := innerW - visW
	if pad < 0 {
		pad = 0
	}
	return " " + dimStyle.Render("│") + " " + content + strings.Repeat(" ", pad) + " " + dimStyle.Render("│")
}

// renderKVBox renders key-value pairs inside a titled box.
func renderKVBox(title string, details []kv, innerW int) string {
	var sb strings.Builder
	sb.WriteString(boxTop(title, innerW) + "\n")
	for _, d := range details {
		content := fmt.Sprintf("%s %s",
			styledPad(dimStyle.Render(d.Key+":"), 18),
			valueStyle.Render(d.Val))
		sb.WriteString(boxRow(content, innerW) + "\n")
	}
	sb.WriteString(boxBot(innerW) + "\n")
	return sb.String()
}

// bar renders a percentage bar colored by the given style.
func bar(pct float64, width int, style lipgloss.Style) string {
	if width < 1 {
		width = 10
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return style.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}

// joinColumns joins two pre-rendered blocks side by side, padding the left
// block to a fixed width.
func joinColumns(left, right string, leftW int) string {
	ll := strings.Split(left, "\n")
	rl := strings.Split(right, "\n")
	n := len(ll)
	if len(rl) > n {
		n = len(rl)
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(ll) {
			l = ll[i]
		}
		if i < len(rl) {
			r = rl[i]
		}
		sb.WriteString(styledPad(l, leftW))
		sb.WriteString(" ")
		sb.WriteString(r)
		if i < n-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

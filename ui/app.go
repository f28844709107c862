package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/structureguard/structguard/engine"
	"github.com/structureguard/structguard/model"
)

// Page identifies the current screen.
type Page int

const (
	PageOverview Page = iota
	PageSensors
	PageAlerts
	PageSchematic
	PageAnalytics
	pageCount
)

var pageNames = []string{"Overview", "Sensors", "Alerts", "Schematic", "Analytics"}

type tickMsg time.Time

type simMsg struct {
	snap *model.Snapshot
	an   *model.Analysis
}

type ackMsg struct {
	snap *model.Snapshot
}

// Model is the bubbletea model.
type Model struct {
	ticker   engine.Ticker
	engine   *engine.Engine // nil in replay mode
	interval time.Duration
	width    int
	height   int

	// Data
	snap *model.Snapshot
	an   *model.Analysis

	// Navigation
	page      Page
	showHelp  bool
	selSensor int
	selAlert  int

	// Auto-refresh control
	paused bool

	// Status feedback
	statusMsg  string
	statusTime time.Time
}

// NewModel creates a new TUI model over a live or replayed data source.
func NewModel(ticker engine.Ticker, interval time.Duration) Model {
	m := Model{
		ticker:   ticker,
		engine:   ticker.Base(),
		interval: interval,
	}
	if m.engine != nil {
		m.snap = m.engine.Snapshot()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), simulateOnce(m.ticker))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func simulateOnce(ticker engine.Ticker) tea.Cmd {
	return func() tea.Msg {
		snap, an := ticker.Tick()
		return simMsg{snap: snap, an: an}
	}
}

func acknowledgeCmd(eng *engine.Engine, alertID string) tea.Cmd {
	return func() tea.Msg {
		return ackMsg{snap: eng.Acknowledge(alertID)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
		case " ":
			m.paused = !m.paused
			if !m.paused {
				return m, tea.Batch(tick(m.interval), simulateOnce(m.ticker))
			}
		case "n":
			// Step one frame while paused (replay inspection)
			if m.paused {
				return m, simulateOnce(m.ticker)
			}
		case "[", "]":
			if p, ok := m.ticker.(*engine.Player); ok {
				step := 10
				if msg.String() == "[" {
					step = -10
				}
				if snap, an := p.Seek(p.Index() + step); snap != nil {
					m.snap = snap
					m.an = an
				}
			}
		case "tab":
			m.page = (m.page + 1) % pageCount
		case "shift+tab":
			m.page = (m.page - 1 + pageCount) % pageCount
		case "1":
			m.page = PageOverview
		case "2":
			m.page = PageSensors
		case "3":
			m.page = PageAlerts
		case "4":
			m.page = PageSchematic
		case "5":
			m.page = PageAnalytics
		case "b", "esc":
			m.page = PageOverview
		case "j", "down":
			m.moveSelection(1)
		case "k", "up":
			m.moveSelection(-1)
		case "a":
			if m.page == PageAlerts && m.snap != nil && m.selAlert < len(m.snap.Alerts) {
				if m.engine == nil {
					m.statusMsg = "Replay mode — acknowledge disabled"
					m.statusTime = time.Now()
					return m, nil
				}
				alert := m.snap.Alerts[m.selAlert]
				m.statusMsg = fmt.Sprintf("Acknowledged %s", alert.ID)
				m.statusTime = time.Now()
				return m, acknowledgeCmd(m.engine, alert.ID)
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		if m.paused {
			return m, nil
		}
		return m, tea.Batch(tick(m.interval), simulateOnce(m.ticker))
	case simMsg:
		if msg.snap == nil {
			// Replay exhausted; hold the last frame.
			m.paused = true
			m.statusMsg = "End of recording"
			m.statusTime = time.Now()
			return m, nil
		}
		if !m.paused || m.snap == nil {
			m.snap = msg.snap
			m.an = msg.an
			m.clampSelection()
		}
	case ackMsg:
		m.snap = msg.snap
		m.clampSelection()
	}
	return m, nil
}

// moveSelection moves the cursor of whichever page has one.
func (m *Model) moveSelection(delta int) {
	if m.snap == nil {
		return
	}
	switch m.page {
	case PageSensors, PageSchematic:
		m.selSensor = clamp(m.selSensor+delta, 0, len(m.snap.Sensors)-1)
	case PageAlerts:
		m.selAlert = clamp(m.selAlert+delta, 0, len(m.snap.Alerts)-1)
	}
}

func (m *Model) clampSelection() {
	if m.snap == nil {
		return
	}
	m.selSensor = clamp(m.selSensor, 0, len(m.snap.Sensors)-1)
	m.selAlert = clamp(m.selAlert, 0, len(m.snap.Alerts)-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	if m.width == 0 {
		return "Loading..."
	}
	if m.snap == nil {
		return "Running first simulation tick..."
	}

	var content string
	switch m.page {
	case PageOverview:
		content = renderOverview(m.snap, m.width)
	case PageSensors:
		content = renderSensors(m.snap, m.selSensor, m.width, m.height)
	case PageAlerts:
		content = renderAlerts(m.snap, m.selAlert, time.Now())
	case PageSchematic:
		content = renderSchematic(m.snap, m.selSensor)
	case PageAnalytics:
		content = renderAnalytics(m.snap, m.an)
	}

	// Trim to viewport height (leave room for status bar)
	lines := strings.Split(content, "\n")
	maxLines := m.height - 2
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	content = strings.Join(lines, "\n")

	return content + "\n" + m.renderStatusBar()
}

func (m Model) renderStatusBar() string {
	var tabs []string
	for i, name := range pageNames {
		label := fmt.Sprintf("%d:%s", i+1, name)
		if Page(i) == m.page {
			tabs = append(tabs, headerStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, dimStyle.Render(" "+label+" "))
		}
	}
	left := strings.Join(tabs, "")

	if m.paused {
		left += "  " + critStyle.Render("[PAUSED]")
	}
	if m.statusMsg != "" && time.Since(m.statusTime) < 5*time.Second {
		left += "  " + okStyle.Render(m.statusMsg)
	}
	if m.snap != nil {
		left += "  " + dimStyle.Render(renderLastUpdate(m.snap, time.Now()))
	}

	help := helpStyle.Render("a:ack  space:pause  ?:help  q:quit")

	leftW := lipgloss.Width(left)
	helpW := lipgloss.Width(help)
	if leftW+helpW+1 <= m.width {
		return left + strings.Repeat(" ", m.width-leftW-helpW) + help
	}
	return left
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("StructureGuard — Structural Health Monitoring Console"))
	sb.WriteString("\n\n")
	sb.WriteString(headerStyle.Render("Navigation"))
	sb.WriteString("\n")
	sb.WriteString("  1         Overview (asset summary, sensor cards)\n")
	sb.WriteString("  2         Sensors (table + history chart)\n")
	sb.WriteString("  3         Alerts (feed, acknowledge)\n")
	sb.WriteString("  4         Schematic (bridge elevation with live markers)\n")
	sb.WriteString("  5         Analytics (risk, fatigue, remaining life)\n")
	sb.WriteString("  Tab       Next page, Shift+Tab previous\n")
	sb.WriteString("  b / Esc   Back to overview\n")
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("Controls"))
	sb.WriteString("\n")
	sb.WriteString("  j/k       Move selection (sensors, alerts, schematic)\n")
	sb.WriteString("  a         Acknowledge the selected alert\n")
	sb.WriteString("  Space     Pause/resume the simulation feed\n")
	sb.WriteString("  n         Step one frame while paused\n")
	sb.WriteString("  [ / ]     Replay seek -10 / +10 frames\n")
	sb.WriteString("  ?         Toggle this help\n")
	sb.WriteString("  q/Ctrl+C  Quit\n")
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Press any key to close"))
	return sb.String()
}

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const panelWidth = 22

var (
	tabActive   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	tabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	panelStyle  = lipgloss.NewStyle().Width(panelWidth).PaddingLeft(1)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("7"))
	liveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// layout describes where the game view's pieces land on screen. The mouse
// handler and the renderer must agree on it exactly.
type layout struct {
	boardW, boardH int // board interior in cells
	boardX, boardY int // terminal position of the interior's top-left cell
}

func (m Model) layout() layout {
	lay := layout{
		// Tab bar is one row; the board border eats one cell on each side.
		boardW: m.width - panelWidth - 2,
		boardH: m.height - 3,
		boardX: panelWidth + 1,
		boardY: 2,
	}
	if lay.boardW < 1 {
		lay.boardW = 1
	}
	if lay.boardH < 1 {
		lay.boardH = 1
	}
	return lay
}

// View renders the active tab.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	var body string
	switch m.tab {
	case tabLogs:
		body = m.logsView(lay)
	default:
		board := boardStyle.Render(m.boardView(lay.boardW, lay.boardH))
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.panelView(), board)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.tabsView(), body)
}

func (m Model) tabsView() string {
	names := []string{"Game", "Logs"}
	parts := make([]string, len(names))
	for i, name := range names {
		style := tabInactive
		if viewTab(i) == m.tab {
			style = tabActive
		}
		parts[i] = style.Render(fmt.Sprintf("[%d] %s", i+1, name))
	}
	return " " + strings.Join(parts, " • ")
}

func (m Model) panelView() string {
	lines := []string{
		fmt.Sprintf("generation  %d", m.game.Generation),
		fmt.Sprintf("population  %d", m.game.Board.Population()),
		fmt.Sprintf("tick rate   %s", m.tickRate),
		fmt.Sprintf("state       %s", m.state),
		fmt.Sprintf("origin      %s", m.origin),
		fmt.Sprintf("step time   %s", m.stepTime),
		"",
		"space  run/pause",
		"n      single step",
		"r      reset",
		"u/d    slower/faster",
		"hjkl   pan",
		"click  toggle cell",
		"q      quit",
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// boardView renders exactly h rows of w cells, with board y growing upward.
func (m Model) boardView(w, h int) string {
	rows := make([][]rune, h)
	for i := range rows {
		row := make([]rune, w)
		for j := range row {
			row[j] = ' '
		}
		rows[i] = row
	}

	origin := m.windowOrigin(w, h)
	for _, d := range m.game.Board.Window(origin, w, h) {
		rows[h-1-int(d.Y)][int(d.X)] = '█'
	}

	lines := make([]string, h)
	for i, row := range rows {
		lines[i] = liveStyle.Render(string(row))
	}
	return strings.Join(lines, "\n")
}

func (m Model) logsView(lay layout) string {
	lines := m.log.Tail(lay.boardH + 2)
	if len(lines) == 0 {
		lines = []string{"no log entries"}
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(strings.Join(lines, "\n"))
}

// Package app implements the terminal frontend as a Bubble Tea program:
// a tabbed Game/Logs view over one simulation session, stepped once per
// tick while running.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plmwd/game-of-life/internal/config"
	"github.com/plmwd/game-of-life/internal/logging"
	"github.com/plmwd/game-of-life/pkg/life"
)

// runState tracks whether the simulation advances on ticks.
type runState int

const (
	stateStopped runState = iota
	statePaused
	stateRunning
)

func (s runState) String() string {
	switch s {
	case statePaused:
		return "paused"
	case stateRunning:
		return "running"
	default:
		return "stopped"
	}
}

// toggle moves stopped and paused to running, and running to paused.
func (s runState) toggle() runState {
	if s == stateRunning {
		return statePaused
	}
	return stateRunning
}

// viewTab selects which tab is shown.
type viewTab int

const (
	tabGame viewTab = iota
	tabLogs
)

// tickMsg asks for one simulation step.
type tickMsg time.Time

const tickRateStep = 50 * time.Millisecond

// Model is the Bubble Tea model for the whole terminal app. The session is
// owned exclusively by the model; Bubble Tea serializes all Update calls.
type Model struct {
	cfg  config.Config
	game *life.Game
	log  *logging.Logger

	// origin is the board point at the center of the game view.
	origin   life.Point
	tickRate time.Duration
	state    runState
	tab      viewTab

	width, height int
	stepTime      time.Duration
}

// New builds the initial model around a starting board. The logger may be
// nil.
func New(cfg config.Config, board *life.Board, logger *logging.Logger) Model {
	g := life.NewGame()
	g.Board = board
	return Model{
		cfg:      cfg,
		game:     g,
		log:      logger,
		tickRate: time.Duration(cfg.TickMs) * time.Millisecond,
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tick(m.tickRate)
}

// Update dispatches terminal events and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		if m.state == stateRunning {
			start := time.Now()
			m.game.Step()
			m.stepTime = time.Since(start)
		}
		return m, tick(m.tickRate)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1":
		m.tab = tabGame
	case "2":
		m.tab = tabLogs
	case " ", "space":
		m.state = m.state.toggle()
		m.log.Printf("state -> %s", m.state)
	case "n":
		if m.state != stateRunning {
			start := time.Now()
			m.game.Step()
			m.stepTime = time.Since(start)
		}
	case "u":
		m.tickRate += tickRateStep
	case "d":
		if m.tickRate > tickRateStep {
			m.tickRate -= tickRateStep
		}
	case "h", "left":
		m.origin.Dx(-1)
	case "l", "right":
		m.origin.Dx(1)
	case "j", "down":
		m.origin.Dy(-1)
	case "k", "up":
		m.origin.Dy(1)
	case "r":
		board, err := m.cfg.StartBoard()
		if err != nil {
			m.log.Printf("reset failed: %v", err)
			break
		}
		m.state = stateStopped
		m.game.Reset()
		m.game.Board = board
		m.origin = life.Point{}
		m.log.Printf("reset to pattern %q", m.cfg.Pattern)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.tab != tabGame || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if p, ok := m.boardPoint(msg.X, msg.Y); ok {
		m.game.Board.Toggle(p)
		m.log.Printf("toggled %s", p)
	}
	return m, nil
}

// windowOrigin returns the board point at the bottom-left of a w x h view
// centered on m.origin.
func (m Model) windowOrigin(w, h int) life.Point {
	return m.origin.Sub(life.Pt(int64(w/2), int64(h/2)))
}

// boardPoint translates terminal coordinates into board space. The second
// return is false when the position is outside the board view.
func (m Model) boardPoint(x, y int) (life.Point, bool) {
	lay := m.layout()
	sx, sy := x-lay.boardX, y-lay.boardY
	if sx < 0 || sx >= lay.boardW || sy < 0 || sy >= lay.boardH {
		return life.Point{}, false
	}
	origin := m.windowOrigin(lay.boardW, lay.boardH)
	// Screen rows grow downward, board y grows upward.
	return origin.Add(life.Pt(int64(sx), int64(lay.boardH-1-sy))), true
}

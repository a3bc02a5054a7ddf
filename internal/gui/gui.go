//go:build ebiten

// Package gui implements the pixel frontend on ebiten. The terminal
// frontend in internal/app is the default; this build needs the 'ebiten'
// tag.
package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plmwd/game-of-life/internal/config"
	"github.com/plmwd/game-of-life/internal/core"
	"github.com/plmwd/game-of-life/internal/render"
	"github.com/plmwd/game-of-life/pkg/life"
)

// Game adapts a life session to the ebiten.Game interface.
type Game struct {
	cfg      config.Config
	game     *life.Game
	viewport *render.Viewport
	painter  *render.GridPainter
	timer    *core.FixedStep

	// origin is the board point at the center of the viewport.
	origin   life.Point
	onColor  color.Color
	offColor color.Color
	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game over the provided session with a viewW x viewH cell
// viewport. The session starts paused.
func New(cfg config.Config, session *life.Game, viewW, viewH, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	vp := render.NewViewport(viewW, viewH)
	w, h := vp.Size()
	tps := 1000 / cfg.TickMs
	if tps < 1 {
		tps = 1
	}
	return &Game{
		cfg:      cfg,
		game:     session,
		viewport: vp,
		painter:  render.NewGridPainter(w, h),
		timer:    core.NewFixedStep(tps),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		paused:   true,
	}
}

// Update handles input and advances the simulation at the timer's rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if board, err := g.cfg.StartBoard(); err == nil {
			g.game.Reset()
			g.game.Board = board
			g.origin = life.Point{}
			g.paused = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.timer.SetTPS(g.timer.TPS() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.timer.SetTPS(g.timer.TPS() - 1)
	}
	g.handlePan()
	g.handleClick()

	if step := g.timer.ShouldStep(); (step && !g.paused) || g.tickOnce {
		g.game.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handlePan() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) || inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.origin.Dx(-4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.origin.Dx(4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.origin.Dy(-4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.origin.Dy(4)
	}
}

func (g *Game) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	w, h := g.viewport.Size()
	cx, cy := mx/g.scale, my/g.scale
	if cx < 0 || cx >= w || cy < 0 || cy >= h {
		return
	}
	// Screen rows grow downward, board y grows upward.
	p := g.windowOrigin().Add(life.Pt(int64(cx), int64(h-1-cy)))
	g.game.Board.Toggle(p)
}

func (g *Game) windowOrigin() life.Point {
	w, h := g.viewport.Size()
	return g.origin.Sub(life.Pt(int64(w/2), int64(h/2)))
}

// Draw renders the viewport and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := g.viewport.Rasterize(g.game.Board, g.windowOrigin())
	g.painter.Blit(screen, cells, g.onColor, g.offColor, g.scale)
	drawHUD(screen, g)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.viewport.Size()
	return w * g.scale, h * g.scale
}

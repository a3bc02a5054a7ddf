//go:build ebiten

package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// drawHUD paints session info in the top-left corner of the screen.
func drawHUD(screen *ebiten.Image, g *Game) {
	state := "running"
	if g.paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("generation %d", g.game.Generation),
		fmt.Sprintf("population %d", g.game.Board.Population()),
		fmt.Sprintf("%d tps, %s", g.timer.TPS(), state),
		fmt.Sprintf("origin %s", g.origin),
	}

	face := basicfont.Face7x13
	clr := color.RGBA{R: 120, G: 220, B: 120, A: 255}
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 16+i*14, clr)
	}
}

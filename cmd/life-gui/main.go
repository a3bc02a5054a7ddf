//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plmwd/game-of-life/internal/config"
	"github.com/plmwd/game-of-life/internal/gui"
	"github.com/plmwd/game-of-life/pkg/life"
)

func main() {
	cfg := config.Default()
	var (
		cfgFile      string
		viewW, viewH int
		scale        int
	)
	flag.StringVar(&cfgFile, "config", "", "path to a YAML config file")
	flag.IntVar(&viewW, "view-width", 128, "viewport width in cells")
	flag.IntVar(&viewH, "view-height", 96, "viewport height in cells")
	flag.IntVar(&scale, "scale", 6, "pixel scale multiplier")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Load(flag.CommandLine, cfgFile); err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	board, err := cfg.StartBoard()
	if err != nil {
		log.Fatalf("build start board: %v", err)
	}
	session := life.NewGame()
	session.Board = board

	game := gui.New(cfg, session, viewW, viewH, scale)
	ebiten.SetWindowTitle("game-of-life")
	ebiten.SetWindowSize(viewW*scale, viewH*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

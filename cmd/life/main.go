package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plmwd/game-of-life/internal/app"
	"github.com/plmwd/game-of-life/internal/config"
	"github.com/plmwd/game-of-life/internal/logging"
)

func main() {
	cfg := config.Default()
	var cfgFile string
	flag.StringVar(&cfgFile, "config", "", "path to a YAML config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Load(flag.CommandLine, cfgFile); err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := logging.Open("")
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logger.Close()

	board, err := cfg.StartBoard()
	if err != nil {
		log.Fatalf("build start board: %v", err)
	}
	logger.Printf("starting: pattern=%q tick=%dms population=%d", cfg.Pattern, cfg.TickMs, board.Population())

	p := tea.NewProgram(app.New(cfg, board, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

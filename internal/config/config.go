// Package config resolves application settings from defaults, an optional
// YAML file and command-line flags, in that order of precedence.
package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plmwd/game-of-life/internal/core"
	"github.com/plmwd/game-of-life/internal/patterns"
	"github.com/plmwd/game-of-life/pkg/life"
)

// SoupPattern selects a random fill instead of a named pattern.
const SoupPattern = "soup"

// Config holds the settings shared by both frontends.
type Config struct {
	TickMs      int     `yaml:"tick_ms"`
	Pattern     string  `yaml:"pattern"`
	PatternFile string  `yaml:"pattern_file"`
	Seed        int64   `yaml:"seed"`
	Density     float64 `yaml:"density"`
	SoupWidth   int     `yaml:"soup_width"`
	SoupHeight  int     `yaml:"soup_height"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		TickMs:     750,
		Pattern:    "default",
		Seed:       42,
		Density:    0.3,
		SoupWidth:  48,
		SoupHeight: 32,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.TickMs, "tick", c.TickMs, "milliseconds per generation")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, `named start pattern, or "soup" for a random fill`)
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "grid-text file to load the start board from")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell density of the random soup")
	fs.IntVar(&c.SoupWidth, "soup-width", c.SoupWidth, "width of the random soup region")
	fs.IntVar(&c.SoupHeight, "soup-height", c.SoupHeight, "height of the random soup region")
}

// Load overlays the YAML file at path onto c and then re-applies any flags
// the user set explicitly, keeping flag > file > default precedence. An
// empty path is a no-op.
func (c *Config) Load(fs *flag.FlagSet, path string) error {
	if path == "" {
		return nil
	}
	set := map[string]string{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	for name, value := range set {
		if err := fs.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.TickMs < 10 {
		return fmt.Errorf("tick_ms must be at least 10, got %d", c.TickMs)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be in [0, 1], got %g", c.Density)
	}
	if c.SoupWidth <= 0 || c.SoupHeight <= 0 {
		return fmt.Errorf("soup dimensions must be positive, got %dx%d", c.SoupWidth, c.SoupHeight)
	}
	return nil
}

// StartBoard builds the starting board described by the configuration. A
// pattern file wins over a pattern name; the name "soup" fills a region
// around the origin using the configured seed and density.
func (c *Config) StartBoard() (*life.Board, error) {
	if c.PatternFile != "" {
		data, err := os.ReadFile(c.PatternFile)
		if err != nil {
			return nil, err
		}
		return life.Parse(string(data))
	}
	if c.Pattern == SoupPattern {
		b := life.NewBoard()
		anchor := life.Pt(-int64(c.SoupWidth/2), -int64(c.SoupHeight/2))
		core.FillRegion(core.NewRNG(c.Seed), b, anchor, c.SoupWidth, c.SoupHeight, c.Density)
		return b, nil
	}
	return patterns.Get(c.Pattern)
}

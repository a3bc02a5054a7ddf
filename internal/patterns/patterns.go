// Package patterns is a registry of named starting boards written in the
// grid notation the life parser reads.
package patterns

import (
	"fmt"
	"sort"
	"strings"

	"github.com/plmwd/game-of-life/pkg/life"
)

var registry = map[string]string{}

// Register adds a pattern text under the provided name.
func Register(name, text string) {
	if name == "" || text == "" {
		return
	}
	registry[name] = text
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get parses the named pattern into a fresh board.
func Get(name string) (*life.Board, error) {
	text, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return life.Parse(text)
}

func init() {
	Register("default", "x..x.\n....x\nx...x\n.xxxx")
	Register("glider", ".x.\n..x\nxxx")
	Register("blinker", "xxx")
	Register("toad", ".xxx\nxxx.")
	Register("beacon", "xx..\nxx..\n..xx\n..xx")
	Register("rpentomino", ".xx\nxx.\n.x.")
}

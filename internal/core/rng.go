package core

import (
	"math/rand/v2"

	"github.com/plmwd/game-of-life/pkg/life"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillRegion births cells inside the w x h rectangle anchored at origin with
// the given live density. Cells that are already alive stay alive.
func FillRegion(r *RNG, b *life.Board, origin life.Point, w, h int, density float64) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Chance(density) {
				b.Birth(origin.Add(life.Pt(int64(x), int64(y))))
			}
		}
	}
}

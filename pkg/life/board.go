// Package life implements a sparse, unbounded Conway's Game of Life:
// a live-cell set board, fixed-order neighbor enumeration, a grid-text
// parser/formatter and a generation stepper.
package life

import "iter"

// Cell is the answer to asking the board about a position. It is produced
// transiently by Query and Neighbors and never stored.
type Cell struct {
	Pos   Point
	Alive bool
}

// neighborOffsets is the Moore neighborhood in counterclockwise order
// starting due right. Neighbors yields cells in exactly this order.
var neighborOffsets = [8]Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Board is a sparse set of live cells on an unbounded plane. Dead cells are
// implicit: a point is alive iff it is a member of the set. A Board is not
// safe for concurrent use and must not be mutated while a sequence returned
// by Neighbors, All or Window is being consumed.
type Board struct {
	cells map[Point]struct{}
}

// NewBoard returns a board with the given cells alive.
func NewBoard(pts ...Point) *Board {
	b := &Board{cells: make(map[Point]struct{}, len(pts))}
	for _, p := range pts {
		b.cells[p] = struct{}{}
	}
	return b
}

// Query reports the state of the cell at p. It is total: any position not in
// the live set is dead.
func (b *Board) Query(p Point) Cell {
	_, ok := b.cells[p]
	return Cell{Pos: p, Alive: ok}
}

// Neighbors yields the 8 cells surrounding p in the fixed order of
// neighborOffsets, each classified against the board's current state.
func (b *Board) Neighbors(p Point) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, d := range neighborOffsets {
			if !yield(b.Query(p.Add(d))) {
				return
			}
		}
	}
}

// Birth marks p alive. Birthing a live cell is a no-op.
func (b *Board) Birth(p Point) { b.cells[p] = struct{}{} }

// Kill marks p dead. Killing a dead cell is a no-op.
func (b *Board) Kill(p Point) { delete(b.cells, p) }

// Toggle flips the state of p.
func (b *Board) Toggle(p Point) {
	if _, ok := b.cells[p]; ok {
		delete(b.cells, p)
	} else {
		b.cells[p] = struct{}{}
	}
}

// Clear kills every live cell.
func (b *Board) Clear() { clear(b.cells) }

// Population returns the number of live cells.
func (b *Board) Population() int { return len(b.cells) }

// Equal reports whether both boards have the same live set.
func (b *Board) Equal(other *Board) bool {
	if len(b.cells) != len(other.cells) {
		return false
	}
	for p := range b.cells {
		if _, ok := other.cells[p]; !ok {
			return false
		}
	}
	return true
}

// All yields every live point. The sequence is restartable and finite; the
// order is map order and must not be relied on.
func (b *Board) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for p := range b.cells {
			if !yield(p) {
				return
			}
		}
	}
}

// Window yields the live points whose offset from origin falls inside
// [0, w) x [0, h), paired with that offset. The offsets are non-negative and
// directly usable as rendering-surface coordinates.
func (b *Board) Window(origin Point, w, h int) iter.Seq2[Point, Point] {
	return func(yield func(Point, Point) bool) {
		for p := range b.cells {
			d := p.Sub(origin)
			if d.X >= 0 && d.X < int64(w) && d.Y >= 0 && d.Y < int64(h) {
				if !yield(p, d) {
					return
				}
			}
		}
	}
}

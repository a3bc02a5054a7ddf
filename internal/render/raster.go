// Package render converts sparse board state into the dense cell and pixel
// buffers the GUI frontend draws.
package render

import "github.com/plmwd/game-of-life/pkg/life"

// Viewport rasterizes a w x h window of a board into a row-major cell
// buffer with row 0 at the top of the screen.
type Viewport struct {
	w, h  int
	cells []uint8
}

// NewViewport allocates a rasterizer for a w x h window.
func NewViewport(w, h int) *Viewport {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Viewport{w: w, h: h, cells: make([]uint8, w*h)}
}

// Size returns the window dimensions.
func (v *Viewport) Size() (int, int) { return v.w, v.h }

// Cells exposes the most recently rasterized buffer.
func (v *Viewport) Cells() []uint8 { return v.cells }

// Rasterize fills the buffer from the board window anchored at origin.
// Board y grows upward, so window row dy lands h-1-dy rows from the top.
func (v *Viewport) Rasterize(b *life.Board, origin life.Point) []uint8 {
	clear(v.cells)
	for _, d := range b.Window(origin, v.w, v.h) {
		row := v.h - 1 - int(d.Y)
		v.cells[row*v.w+int(d.X)] = 1
	}
	return v.cells
}

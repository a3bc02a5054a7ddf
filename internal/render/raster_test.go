package render

import (
	"image/color"
	"testing"

	"github.com/plmwd/game-of-life/pkg/life"
)

func TestRasterizeFlipsY(t *testing.T) {
	b := life.NewBoard(life.Pt(0, 0), life.Pt(2, 1))
	v := NewViewport(3, 2)

	cells := v.Rasterize(b, life.Point{})

	// (0,0) is the bottom-left of the window: last row, first column.
	// (2,1) is the top-right: first row, last column.
	want := []uint8{
		0, 0, 1,
		1, 0, 0,
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cell %d = %d, want %d\ngot %v", i, cells[i], want[i], cells)
		}
	}
}

func TestRasterizeClearsPreviousFrame(t *testing.T) {
	b := life.NewBoard(life.Pt(1, 1))
	v := NewViewport(4, 4)
	v.Rasterize(b, life.Point{})

	b.Kill(life.Pt(1, 1))
	cells := v.Rasterize(b, life.Point{})
	for i, c := range cells {
		if c != 0 {
			t.Fatalf("stale cell %d after clear", i)
		}
	}
}

func TestRasterizeIgnoresOutOfWindow(t *testing.T) {
	b := life.NewBoard(life.Pt(-1, 0), life.Pt(8, 8), life.Pt(1, 1))
	v := NewViewport(4, 4)
	cells := v.Rasterize(b, life.Point{})

	live := 0
	for _, c := range cells {
		live += int(c)
	}
	if live != 1 {
		t.Fatalf("window contains %d live cells, want 1", live)
	}
	if cells[(4-1-1)*4+1] != 1 {
		t.Fatal("cell (1,1) missing from the window")
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.White, color.Black)

	for i, want := range []byte{255, 255, 255, 255, 0, 0, 0, 255} {
		if buf[i] != want {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want)
		}
	}
}

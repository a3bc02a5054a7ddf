package life

import "testing"

func TestLonelyCellDies(t *testing.T) {
	// No neighbors.
	g := NewGame(Pt(0, 0))
	g.Step()
	if !g.Board.Equal(NewBoard()) {
		t.Fatalf("lonely cell survived: %v", Format(g.Board))
	}

	// One neighbor: both die of underpopulation.
	g = NewGame(Pt(0, 0), Pt(1, 0))
	g.Step()
	if !g.Board.Equal(NewBoard()) {
		t.Fatalf("adjacent pair survived: %v", Format(g.Board))
	}
}

func TestEmptyBoardIsFixedPoint(t *testing.T) {
	g := NewGame()
	for i := 0; i < 3; i++ {
		g.Step()
		if g.Board.Population() != 0 {
			t.Fatalf("empty board grew cells at step %d", i+1)
		}
	}
	if g.Generation != 3 {
		t.Fatalf("generation = %d, want 3", g.Generation)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g := NewGame(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	before := NewBoard(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	g.Step()
	if !g.Board.Equal(before) {
		t.Fatalf("block changed: %v", Format(g.Board))
	}
}

func TestDiagonalCrossStepsToDiamond(t *testing.T) {
	// The center has 4 live neighbors and dies; each edge-midpoint dead
	// cell has exactly 3 live neighbors and is born. Only holds when the
	// update is simultaneous.
	g := NewGame(Pt(0, 0), Pt(1, 1), Pt(-1, 1), Pt(-1, -1), Pt(1, -1))
	g.Step()

	want := NewBoard(Pt(1, 0), Pt(0, 1), Pt(-1, 0), Pt(0, -1))
	if !g.Board.Equal(want) {
		t.Fatalf("diagonal cross stepped to %v, want diamond", Format(g.Board))
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := NewGame(Pt(2, 1), Pt(2, 2), Pt(2, 3))

	g.Step()
	if !g.Board.Equal(NewBoard(Pt(1, 2), Pt(2, 2), Pt(3, 2))) {
		t.Fatalf("after one step: %v", Format(g.Board))
	}

	g.Step()
	if !g.Board.Equal(NewBoard(Pt(2, 1), Pt(2, 2), Pt(2, 3))) {
		t.Fatalf("after two steps: %v", Format(g.Board))
	}
	if g.Generation != 2 {
		t.Fatalf("generation = %d, want 2", g.Generation)
	}
}

func TestGliderTranslates(t *testing.T) {
	g := NewGame()
	if err := g.Parse(".x.\n..x\nxxx"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	start := g.Board

	// A glider reproduces itself shifted by (1, -1) every 4 generations.
	for i := 0; i < 4; i++ {
		g.Step()
	}
	want := NewBoard()
	for p := range start.All() {
		want.Birth(p.Add(Pt(1, -1)))
	}
	if !g.Board.Equal(want) {
		t.Fatalf("glider after 4 steps:\n%v", Format(g.Board))
	}
}

func TestParseFailureLeavesBoardUntouched(t *testing.T) {
	g := NewGame(Pt(0, 0))
	if err := g.Parse("x?x"); err == nil {
		t.Fatal("expected a parse error")
	}
	if !g.Board.Equal(NewBoard(Pt(0, 0))) {
		t.Fatal("failed parse replaced the board")
	}
}

func TestReset(t *testing.T) {
	g := NewGame(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	g.Step()
	g.Step()

	g.Reset(Pt(5, 5))
	if g.Generation != 0 {
		t.Fatalf("generation after Reset = %d, want 0", g.Generation)
	}
	if !g.Board.Equal(NewBoard(Pt(5, 5))) {
		t.Fatalf("board after Reset: %v", Format(g.Board))
	}
}

func BenchmarkStep(b *testing.B) {
	// R-pentomino: small seed, long chaotic evolution.
	g := NewGame()
	if err := g.Parse(".xx\nxx.\n.x."); err != nil {
		b.Fatalf("Parse: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}

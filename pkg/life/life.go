package life

// Game is one simulation session: a board, the working sets that make rule
// application simultaneous, and a generation counter.
//
// Game of Life rules:
//  1. Any live cell with fewer than two live neighbours dies (underpopulation).
//  2. Any live cell with more than three live neighbours dies (overpopulation).
//  3. Any live cell with two or three live neighbours lives on unchanged.
//  4. Any dead cell with exactly three live neighbours comes to life.
type Game struct {
	Board      *Board
	Generation uint64

	killed  map[Point]struct{}
	birthed map[Point]struct{}
}

// NewGame starts a session at generation 0 with the given cells alive.
func NewGame(pts ...Point) *Game {
	return &Game{
		Board:   NewBoard(pts...),
		killed:  make(map[Point]struct{}),
		birthed: make(map[Point]struct{}),
	}
}

// Parse replaces the session's board with one parsed from s. On a parse
// failure the current board is left untouched.
func (g *Game) Parse(s string) error {
	b, err := Parse(s)
	if err != nil {
		return err
	}
	g.Board = b
	return nil
}

// Reset installs a fresh board and rewinds the generation counter to 0.
func (g *Game) Reset(pts ...Point) {
	g.Board = NewBoard(pts...)
	g.Generation = 0
}

// Step advances the board by exactly one generation. Kill and birth
// decisions are buffered during the scan and applied only after it
// completes, so the outcome never depends on iteration order. Stepping an
// empty board only advances the generation counter.
func (g *Game) Step() {
	if g.killed == nil {
		g.killed = make(map[Point]struct{})
		g.birthed = make(map[Point]struct{})
	}
	clear(g.killed)
	clear(g.birthed)

	for p := range g.Board.All() {
		alive := 0
		for c := range g.Board.Neighbors(p) {
			if c.Alive {
				alive++
				continue
			}
			// Rule 4. Dead neighbors of live cells are the only birth
			// candidates, and their counts must come from the board being
			// stepped from, never partially updated state.
			n := 0
			for cc := range g.Board.Neighbors(c.Pos) {
				if cc.Alive {
					n++
				}
			}
			if n == 3 {
				g.birthed[c.Pos] = struct{}{}
			}
		}
		// Rules 1 and 2. Two or three live neighbors is rule 3: survive.
		if alive <= 1 || alive >= 4 {
			g.killed[p] = struct{}{}
		}
	}

	// The kill and birth sets are disjoint, so the order of the two passes
	// does not matter.
	for p := range g.killed {
		g.Board.Kill(p)
	}
	for p := range g.birthed {
		g.Board.Birth(p)
	}
	g.Generation++
}

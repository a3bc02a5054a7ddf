package life

import (
	"errors"
	"testing"
)

func TestParseWellFormed(t *testing.T) {
	b, err := Parse("x..x.\n....x\nx...x\n.xxxx")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// The last line is y=0; earlier lines have increasing y.
	want := []Point{
		{1, 0}, {2, 0}, {3, 0}, {4, 0},
		{0, 1}, {4, 1},
		{4, 2},
		{0, 3}, {3, 3},
	}
	if b.Population() != len(want) {
		t.Fatalf("population = %d, want %d", b.Population(), len(want))
	}
	for _, p := range want {
		if !b.Query(p).Alive {
			t.Fatalf("cell %v dead, want alive", p)
		}
	}
	for _, p := range []Point{{0, 0}, {1, 1}, {2, 3}, {5, 0}, {0, 4}} {
		if b.Query(p).Alive {
			t.Fatalf("cell %v alive, want dead", p)
		}
	}
}

func TestParseInvalidChar(t *testing.T) {
	_, err := Parse("x.x\n.?.\nxxx")
	if err == nil {
		t.Fatal("expected a parse error")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if perr.Char != '?' {
		t.Fatalf("Char = %q, want '?'", perr.Char)
	}
	if perr.Line != 1 {
		t.Fatalf("Line = %d, want 1 (0-based from the bottom)", perr.Line)
	}
	if perr.Text != "x.x\n.?.\nxxx" {
		t.Fatalf("Text = %q, want the full input", perr.Text)
	}
}

func TestParseTrailingNewline(t *testing.T) {
	b, err := Parse("xx\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Population() != 2 || !b.Query(Pt(0, 0)).Alive || !b.Query(Pt(1, 0)).Alive {
		t.Fatalf("trailing newline shifted the board: %v", Format(b))
	}
}

func TestParseEmpty(t *testing.T) {
	b, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Population() != 0 {
		t.Fatalf("population = %d, want 0", b.Population())
	}
}

func TestFormatRoundTrip(t *testing.T) {
	texts := []string{
		"x..x.\n....x\nx...x\n.xxxx",
		"x.x\n.x.\nx.x",
		"x",
	}
	for _, text := range texts {
		b, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if got := Format(b); got != text {
			t.Fatalf("Format round trip of %q = %q", text, got)
		}
	}
}

func TestFormatNormalizesToBoundingBox(t *testing.T) {
	b := NewBoard(Pt(-3, 5), Pt(-2, 5), Pt(-3, 6))
	if got := Format(b); got != "x.\nxx" {
		t.Fatalf("Format = %q, want \"x.\\nxx\"", got)
	}
	if got := Format(NewBoard()); got != "" {
		t.Fatalf("Format of empty board = %q, want \"\"", got)
	}
}

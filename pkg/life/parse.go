package life

import (
	"fmt"
	"strings"
)

// ParseError reports the first invalid rune encountered while parsing a
// board. Line is the 0-based row counted from the bottom of the input, which
// is also the y coordinate the rune would have mapped to.
type ParseError struct {
	Char rune
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid char %q on line %d when parsing\n%s\ninto board", e.Char, e.Line, e.Text)
}

// Parse builds a board from grid text where '.' is a dead cell and 'x' a
// live one. The text is written in its natural orientation: the last input
// line is y=0 and earlier lines have increasing y, so the first printed line
// is the top of the board. Columns map to x left to right starting at 0.
//
//	y
//	^
//	2  ....x...
//	1  ...xxx..
//	0  ....x...
//	   01234567 > x
//
// Any other rune aborts the parse with a *ParseError.
func Parse(s string) (*Board, error) {
	b := NewBoard()
	lines := splitLines(s)
	for i := len(lines) - 1; i >= 0; i-- {
		y := len(lines) - 1 - i
		for x, r := range lines[i] {
			switch r {
			case '.':
				// Dead cell, nothing to store.
			case 'x':
				b.Birth(Pt(int64(x), int64(y)))
			default:
				return nil, &ParseError{Char: r, Line: y, Text: s}
			}
		}
	}
	return b, nil
}

// Format renders the bounding box of the live cells in the notation Parse
// reads, top line first. The empty board formats to "".
func Format(b *Board) string {
	if b.Population() == 0 {
		return ""
	}
	var (
		first                  = true
		minX, maxX, minY, maxY int64
	)
	for p := range b.All() {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	var sb strings.Builder
	for y := maxY; y >= minY; y-- {
		if y != maxY {
			sb.WriteByte('\n')
		}
		for x := minX; x <= maxX; x++ {
			if b.Query(Pt(x, y)).Alive {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// splitLines splits s on newlines, ignoring one trailing newline and any
// carriage returns.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

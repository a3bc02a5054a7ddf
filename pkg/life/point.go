package life

import "fmt"

// Point is a position on the unbounded board. The x axis grows to the right
// and the y axis grows upward, so a parsed board occupies the +x/+y quadrant.
type Point struct {
	X, Y int64
}

// Pt constructs a Point from its coordinates.
func Pt(x, y int64) Point { return Point{X: x, Y: y} }

// PtX constructs a Point on the x axis.
func PtX(x int64) Point { return Point{X: x} }

// PtY constructs a Point on the y axis.
func PtY(y int64) Point { return Point{Y: y} }

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Translate shifts p in place by q.
func (p *Point) Translate(q Point) {
	p.X += q.X
	p.Y += q.Y
}

// Dx shifts p along the x axis.
func (p *Point) Dx(d int64) { p.X += d }

// Dy shifts p along the y axis.
func (p *Point) Dy(d int64) { p.Y += d }

// String formats the point as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

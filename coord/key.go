package coord

import (
	"fmt"
	"iter"
	"strconv"
)

// Key is a cell address in one of three shapes: Index, Point or Range.
// The set of key types is closed.
type Key interface {
	fmt.Stringer
	isKey()
}

// Index addresses a cell by its position in row-major order.
type Index int

func (Index) isKey() {}

func (i Index) String() string {
	return strconv.Itoa(int(i))
}

// Point is an (x, y) coordinate pair. As a key, either component may be
// negative; after normalization both are non-negative.
type Point struct {
	X, Y int
}

func (Point) isKey() {}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Range addresses a rectangular area of cells. Start is the top-left corner,
// Stop the (exclusive) bottom-right corner. Step selects every n-th cell per
// axis. Each component is optional; see Resolver.Range for the defaults.
type Range struct {
	Start Option[Point]
	Stop  Option[Point]
	Step  Option[Point]
}

func (Range) isKey() {}

// Full returns a range spanning the whole canvas.
func Full() Range {
	return Range{}
}

// Span returns the range from start (inclusive) to stop (exclusive).
func Span(start, stop Point) Range {
	return Range{Start: Some(start), Stop: Some(stop)}
}

// From returns a copy of r with start set to p.
func (r Range) From(p Point) Range {
	r.Start = Some(p)
	return r
}

// To returns a copy of r with stop set to p.
func (r Range) To(p Point) Range {
	r.Stop = Some(p)
	return r
}

// Every returns a copy of r with a step of n for both axes.
func (r Range) Every(n int) Range {
	return r.EverySteps(n, n)
}

// EverySteps returns a copy of r with steps sx and sy.
func (r Range) EverySteps(sx, sy int) Range {
	r.Step = Some(Point{X: sx, Y: sy})
	return r
}

// String returns the range in the notation accepted by ParseKey.
func (r Range) String() string {
	start := Map(r.Start, Point.String).Or("")
	stop := Map(r.Stop, Point.String).Or("")
	if step, ok := r.Step.Unwrap(); ok {
		return fmt.Sprintf("%s:%s:%s", start, stop, step)
	}
	return start + ":" + stop
}

// Rect is a resolved Range: 0 ≤ X1 ≤ X2 and 0 ≤ Y1 ≤ Y2 for all ranges
// built from non-negative input. X2 and Y2 are exclusive.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
	XStep  int
	YStep  int
}

// Dx returns the number of columns selected by r, i.e.
// ceil((X2-X1)/XStep). It may be zero or negative for degenerate ranges.
func (r Rect) Dx() int {
	return ceilDiv(r.X2-r.X1, r.XStep)
}

// Dy returns the number of rows selected by r, i.e. ceil((Y2-Y1)/YStep).
func (r Rect) Dy() int {
	return ceilDiv(r.Y2-r.Y1, r.YStep)
}

// Empty reports whether r selects no cells at all.
func (r Rect) Empty() bool {
	return r.Dx() <= 0 || r.Dy() <= 0
}

// Points iterates over the cells selected by r, row by row.
func (r Rect) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := r.Y1; y < r.Y2; y += r.YStep {
			for x := r.X1; x < r.X2; x += r.XStep {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d…%d,%d step %d,%d]", r.X1, r.Y1, r.X2, r.Y2, r.XStep, r.YStep)
}

// ceilDiv divides a by b > 0, rounding towards positive infinity.
func ceilDiv(a, b int) int {
	if a >= 0 {
		return (a + b - 1) / b
	}
	return -(-a / b)
}

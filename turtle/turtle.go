/*
Package turtle implements a LOGO-like pen for drawing on text canvases.

A turtle has a position in canvas coordinates, a heading and a pen. Moving
the turtle with its pen down draws a line of pen characters from the old
to the new position. The turtle may leave the canvas; whatever it draws
there is lost.

Positions are float values. The cell under the turtle is the one
containing its position, i.e. position (x, y) lies in cell (⌊x⌋, ⌊y⌋), on
the canvas as well as off it. Positions are limited to ±MaxPosition. The y axis grows downward, as it does on the canvas,
while headings follow the usual compass convention:

	        90
	         |
	  180 ---*--- 0
	         |
	        270

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package turtle

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textcanvas/canvas"
	"github.com/npillmayer/textcanvas/cells"
	"github.com/npillmayer/textcanvas/coord"
	"github.com/npillmayer/textcanvas/raster"
)

// tracer traces with key 'textcanvas.turtle'
func tracer() tracing.Trace {
	return tracing.Select("textcanvas.turtle")
}

// Compass headings, in degrees.
const (
	East  = 0.0
	North = 90.0
	West  = 180.0
	South = 270.0
)

// MaxPosition bounds both coordinates of a turtle. Beyond it, float values
// no longer address single cells.
const MaxPosition = 1 << 53

// DefaultPen is the character a new turtle draws with.
const DefaultPen = cells.Cell('#')

// Turtle is a pen moving over a canvas.
type Turtle struct {
	canvas  *canvas.Canvas
	x, y    float64
	heading float64 // in [0, 360)
	down    bool
	pen     cells.Cell
}

// New places a turtle at the top-left corner of c, heading east, pen up.
func New(c *canvas.Canvas) *Turtle {
	return &Turtle{canvas: c, heading: East, pen: DefaultPen}
}

// Canvas returns the canvas the turtle draws on.
func (t *Turtle) Canvas() *canvas.Canvas { return t.canvas }

// Position returns the turtle's position.
func (t *Turtle) Position() (x, y float64) { return t.x, t.y }

// Heading returns the heading in degrees, in [0, 360).
func (t *Turtle) Heading() float64 { return t.heading }

// IsDown reports whether the pen is down.
func (t *Turtle) IsDown() bool { return t.down }

// PenChar returns the character the turtle draws with.
func (t *Turtle) PenChar() cells.Cell { return t.pen }

// SetPenChar changes the pen character to s, which must be a single
// character. With the pen down, the cell under the turtle is redrawn.
func (t *Turtle) SetPenChar(s string) error {
	pen, err := cells.Parse(s)
	if err != nil {
		return err
	}
	t.pen = pen
	if t.down {
		return t.stamp()
	}
	return nil
}

// PenDown lowers the pen and marks the cell under the turtle.
func (t *Turtle) PenDown() error {
	t.down = true
	return t.stamp()
}

// PenUp lifts the pen.
func (t *Turtle) PenUp() {
	t.down = false
}

// Goto moves the turtle to (x, y). With the pen down, a line is drawn from
// the old position to the new one. Parts of the line outside of the canvas
// are skipped. The heading does not change.
func (t *Turtle) Goto(x, y float64) error {
	if !finite(x) || !finite(y) {
		return coord.Errorf(coord.InvalidArgument, "goto", "position (%g,%g) is not finite", x, y)
	}
	if math.Abs(x) > MaxPosition || math.Abs(y) > MaxPosition {
		return coord.Errorf(coord.InvalidArgument, "goto", "position (%g,%g) exceeds ±%d", x, y, MaxPosition)
	}
	if t.down {
		from, to := gridPoint(t.x, t.y), gridPoint(x, y)
		line := raster.ClippedLine(from.X, from.Y, to.X, to.Y, t.canvas.Width(), t.canvas.Height())
		for _, p := range line {
			if err := t.canvas.Set(p, t.pen); err != nil {
				return err
			}
		}
		tracer().Debugf("turtle drew %d cells from (%g,%g) to (%g,%g)", len(line), t.x, t.y, x, y)
	}
	t.x, t.y = x, y
	return nil
}

// stamp draws the pen character into the cell under the turtle, if that
// cell is on the canvas.
func (t *Turtle) stamp() error {
	p := gridPoint(t.x, t.y)
	if !t.canvas.IsOnCanvas(p.X, p.Y) {
		return nil
	}
	return t.canvas.Set(p, t.pen)
}

// gridPoint returns the cell containing position (x, y).
func gridPoint(x, y float64) coord.Point {
	return coord.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

// --- Relative movement -----------------------------------------------------

// Forward moves the turtle d cells in the direction of its heading.
// A negative d moves it backwards.
func (t *Turtle) Forward(d float64) error {
	rad := t.heading * math.Pi / 180
	return t.Goto(snap(t.x+d*math.Cos(rad)), snap(t.y-d*math.Sin(rad)))
}

// Backward moves the turtle d cells against its heading.
func (t *Turtle) Backward(d float64) error {
	return t.Forward(-d)
}

// Left turns the turtle counterclockwise by deg degrees.
func (t *Turtle) Left(deg float64) {
	t.SetHeading(t.heading + deg)
}

// Right turns the turtle clockwise by deg degrees.
func (t *Turtle) Right(deg float64) {
	t.SetHeading(t.heading - deg)
}

// SetHeading points the turtle to deg degrees. Any value is accepted and
// reduced to [0, 360).
func (t *Turtle) SetHeading(deg float64) {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	t.heading = h
}

// Home moves the turtle to the top-left corner and heads it east. With the
// pen down, the way home is drawn.
func (t *Turtle) Home() error {
	t.heading = East
	return t.Goto(0, 0)
}

// Compass moves do not change the heading. North is up on the canvas.

func (t *Turtle) North(d float64) error     { return t.Goto(t.x, t.y-d) }
func (t *Turtle) South(d float64) error     { return t.Goto(t.x, t.y+d) }
func (t *Turtle) East(d float64) error      { return t.Goto(t.x+d, t.y) }
func (t *Turtle) West(d float64) error      { return t.Goto(t.x-d, t.y) }
func (t *Turtle) NorthEast(d float64) error { return t.Goto(t.x+d, t.y-d) }
func (t *Turtle) NorthWest(d float64) error { return t.Goto(t.x-d, t.y-d) }
func (t *Turtle) SouthEast(d float64) error { return t.Goto(t.x+d, t.y+d) }
func (t *Turtle) SouthWest(d float64) error { return t.Goto(t.x-d, t.y+d) }

// --- Queries ---------------------------------------------------------------

// Towards returns the heading the turtle would need to face (x, y).
// If (x, y) is the turtle's position, the result is 0.
func (t *Turtle) Towards(x, y float64) float64 {
	dx, dy := x-t.x, t.y-y
	if dx == 0 && dy == 0 {
		return 0
	}
	h := math.Atan2(dy, dx) * 180 / math.Pi
	if h = snap(h); h < 0 {
		h += 360
	}
	return h
}

// Distance returns the distance from the turtle to (x, y).
func (t *Turtle) Distance(x, y float64) float64 {
	return math.Hypot(x-t.x, y-t.y)
}

func (t *Turtle) String() string {
	return fmt.Sprintf("<Turtle, x=%g, y=%g, heading=%g, pen=%q>", t.x, t.y, t.heading, t.pen.Render())
}

// snap rounds v to nine decimals, removing the noise sin and cos leave on
// axis-parallel moves.
func snap(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

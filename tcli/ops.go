package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/textcanvas/cells"
	"github.com/npillmayer/textcanvas/coord"
	"github.com/npillmayer/textcanvas/raster"
	"github.com/pterm/pterm"
)

var errNoArg = errors.New("command needs an argument")

// Arguments may not contain blanks, so we accept a few escapes.
var unescaper = strings.NewReplacer(`\n`, "\n", `\s`, " ", `\\`, `\`)

func unescape(s string) string {
	return unescaper.Replace(s)
}

// --- Canvas Operations -------------------------------------------------

func newOp(intp *Intp, op *Op) (err error, stop bool) {
	w, h := intp.canvas.Width(), intp.canvas.Height()
	if !op.noArg() {
		var n []int
		if n, err = ints(op.arg, 2); err != nil {
			return
		}
		w, h = n[0], n[1]
	}
	err = intp.newCanvas(w, h)
	return
}

func loadOp(intp *Intp, op *Op) (err error, stop bool) {
	if op.noArg() {
		return errNoArg, false
	}
	if name, ok := strings.CutPrefix(op.arg, "@"); ok {
		return intp.loadFile(name), false
	}
	return intp.canvas.Load(unescape(op.arg)), false
}

func clearOp(intp *Intp, op *Op) (error, bool) {
	intp.canvas.Clear()
	return nil, false
}

func getOp(intp *Intp, op *Op) (err error, stop bool) {
	var k coord.Key
	if k, err = key(op.arg); err != nil {
		return
	}
	var c cells.Cell
	if c, err = intp.canvas.Get(k); err != nil {
		return
	}
	pterm.Printf("%s = %#v\n", k, c)
	return
}

func setOp(intp *Intp, op *Op) (err error, stop bool) {
	i := strings.LastIndex(op.arg, ":")
	if i < 0 {
		return fmt.Errorf("usage: set:KEY:CHAR, have 'set:%s'", op.arg), false
	}
	var k coord.Key
	if k, err = key(op.arg[:i]); err != nil {
		return
	}
	var c cells.Cell
	if c, err = cellArg(op.arg[i+1:]); err != nil {
		return
	}
	return intp.canvas.Set(k, c), false
}

// putOp writes a character at the cursor and advances the cursor, if there
// is room to the right.
func putOp(intp *Intp, op *Op) (err error, stop bool) {
	var c cells.Cell
	if c, err = cellArg(op.arg); err != nil {
		return
	}
	cur := intp.canvas.Cursor()
	if err = intp.canvas.Set(cur, c); err != nil {
		return
	}
	if intp.canvas.IsOnCanvas(cur.X+1, cur.Y) {
		err = intp.canvas.Goto(cur.X+1, cur.Y)
	}
	return
}

func delOp(intp *Intp, op *Op) (err error, stop bool) {
	var k coord.Key
	if k, err = key(op.arg); err != nil {
		return
	}
	return intp.canvas.Delete(k), false
}

func fillOp(intp *Intp, op *Op) (err error, stop bool) {
	var c cells.Cell
	if c, err = cellArg(op.arg); err != nil {
		return
	}
	return intp.canvas.Fill(c), false
}

func shiftOp(intp *Intp, op *Op) (err error, stop bool) {
	var n []int
	if n, err = ints(op.arg, 2); err != nil {
		return
	}
	intp.canvas.Shift(n[0], n[1])
	return
}

func sliceOp(intp *Intp, op *Op) (err error, stop bool) {
	rg := coord.Full()
	if !op.noArg() {
		var k coord.Key
		if k, err = coord.ParseKey(op.arg); err != nil {
			return
		}
		var ok bool
		if rg, ok = k.(coord.Range); !ok {
			return fmt.Errorf("slice needs a range, have %s", k), false
		}
	}
	sub, err := intp.canvas.Slice(rg)
	if err != nil {
		return
	}
	pterm.Printf("slice %s is %d×%d\n", rg, sub.Width(), sub.Height())
	printCanvas(sub)
	return
}

// lineOp draws a line through two or more points: line:X1,Y1:X2,Y2[:…]:CHAR.
// Points are not wrapped around; cells off the canvas are skipped.
func lineOp(intp *Intp, op *Op) (err error, stop bool) {
	parts := strings.Split(op.arg, ":")
	if len(parts) < 3 {
		return fmt.Errorf("usage: line:X1,Y1:X2,Y2:CHAR, have 'line:%s'", op.arg), false
	}
	var c cells.Cell
	if c, err = cellArg(parts[len(parts)-1]); err != nil {
		return
	}
	vertices := make([]coord.Point, 0, len(parts)-1)
	for _, s := range parts[:len(parts)-1] {
		var p coord.Point
		if p, err = point(s); err != nil {
			return
		}
		vertices = append(vertices, p)
	}
	line := raster.ClippedPolyline(intp.canvas.Width(), intp.canvas.Height(), vertices...)
	for _, p := range line {
		if err = intp.canvas.Set(p, c); err != nil {
			return
		}
	}
	tracer().Infof("line through %v: %d cells drawn", vertices, len(line))
	return
}

func gotoOp(intp *Intp, op *Op) (err error, stop bool) {
	var p coord.Point
	if p, err = point(op.arg); err != nil {
		return
	}
	return intp.canvas.Goto(p.X, p.Y), false
}

// --- Turtle Operations -------------------------------------------------

func penOp(intp *Intp, op *Op) (err error, stop bool) {
	var c cells.Cell
	if c, err = cellArg(op.arg); err != nil {
		return
	}
	return intp.turtle.SetPenChar(string(c.Render())), false
}

func penDownOp(intp *Intp, op *Op) (error, bool) {
	return intp.turtle.PenDown(), false
}

func penUpOp(intp *Intp, op *Op) (error, bool) {
	intp.turtle.PenUp()
	return nil, false
}

func homeOp(intp *Intp, op *Op) (error, bool) {
	return intp.turtle.Home(), false
}

func moveOp(intp *Intp, op *Op) (err error, stop bool) {
	xs, ys, ok := strings.Cut(strings.Trim(op.arg, "()"), ",")
	if !ok {
		return fmt.Errorf("usage: move:X,Y, have 'move:%s'", op.arg), false
	}
	var x, y float64
	if x, err = number(xs); err != nil {
		return
	}
	if y, err = number(ys); err != nil {
		return
	}
	return intp.turtle.Goto(x, y), false
}

func forwardOp(intp *Intp, op *Op) (err error, stop bool) {
	var d float64
	if d, err = number(op.arg); err == nil {
		err = intp.turtle.Forward(d)
	}
	return
}

func backwardOp(intp *Intp, op *Op) (err error, stop bool) {
	var d float64
	if d, err = number(op.arg); err == nil {
		err = intp.turtle.Backward(d)
	}
	return
}

func leftOp(intp *Intp, op *Op) (err error, stop bool) {
	var deg float64
	if deg, err = number(op.arg); err == nil {
		intp.turtle.Left(deg)
	}
	return
}

func rightOp(intp *Intp, op *Op) (err error, stop bool) {
	var deg float64
	if deg, err = number(op.arg); err == nil {
		intp.turtle.Right(deg)
	}
	return
}

// --- Argument Parsing --------------------------------------------------

func key(arg string) (coord.Key, error) {
	if arg == "" {
		return nil, errNoArg
	}
	return coord.ParseKey(arg)
}

func point(arg string) (coord.Point, error) {
	k, err := key(arg)
	if err != nil {
		return coord.Point{}, err
	}
	p, ok := k.(coord.Point)
	if !ok {
		return coord.Point{}, fmt.Errorf("expected a point x,y, have %s", k)
	}
	return p, nil
}

// ints parses exactly n colon-separated integers.
func ints(arg string, n int) ([]int, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d numbers, have '%s'", n, arg)
	}
	values := make([]int, n)
	for i, s := range parts {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("not a number: '%s'", s)
		}
		values[i] = v
	}
	return values, nil
}

func number(arg string) (float64, error) {
	if arg == "" {
		return 0, errNoArg
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: '%s'", arg)
	}
	return v, nil
}

// cellArg parses a character argument. Characters taking up two columns in
// a terminal are accepted, but the user is warned that printed rows will
// not line up any more.
func cellArg(arg string) (cells.Cell, error) {
	if arg == "" {
		return cells.Transparent, errNoArg
	}
	c, err := cells.Parse(unescape(arg))
	if err != nil {
		return c, err
	}
	if w := cells.Width(c); w != 1 {
		pterm.Warning.Printf("%#v is %d columns wide, printed rows will not line up\n", c, w)
	}
	return c, nil
}

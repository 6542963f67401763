package canvas

import (
	"unicode/utf8"

	"github.com/npillmayer/textcanvas/cells"
	"github.com/npillmayer/textcanvas/coord"
)

// Load writes text onto the canvas, line by line, starting at the top-left
// corner. Characters beyond the right or bottom edge are dropped. Cells not
// covered by text keep their content.
//
// All characters which land on the canvas are validated before the first
// one is written.
func (c *Canvas) Load(text string) error {
	if !utf8.ValidString(text) {
		return coord.Errorf(coord.InvalidValue, "load", "preload text is not valid UTF-8")
	}
	lines := splitLines(text)
	for y, line := range lines {
		if y >= c.res.Height {
			break
		}
		x := 0
		for _, r := range line {
			if x >= c.res.Width {
				break
			}
			if err := cells.Validate(cells.Char(r)); err != nil {
				return opError("load", err)
			}
			x++
		}
	}
	for y, line := range lines {
		if y >= c.res.Height {
			break
		}
		x := 0
		for _, r := range line {
			if x >= c.res.Width {
				break
			}
			c.store.Set(x, y, cells.Char(r))
			x++
		}
	}
	c.cache.invalidate()
	return nil
}

// Fill sets every cell to v.
func (c *Canvas) Fill(v cells.Cell) error {
	if err := cells.Validate(v); err != nil {
		return opError("fill", err)
	}
	cells.Fill(c.store, v)
	c.cache.invalidate()
	return nil
}

// FillWith sets every cell to the character s. FillWith(" ") blanks the
// canvas.
func (c *Canvas) FillWith(s string) error {
	v, err := cells.Parse(s)
	if err != nil {
		return opError("fill", err)
	}
	return c.Fill(v)
}

// Clear makes every cell transparent. To make all cells blank instead, use
// FillWith(" ").
func (c *Canvas) Clear() {
	cells.Fill(c.store, cells.Transparent)
	c.cache.invalidate()
}

// Shift moves the content of the canvas by (dx, dy). Content moved past an
// edge is lost; cells uncovered at the opposite edge become transparent.
// Shifting by at least the width or height clears the canvas.
func (c *Canvas) Shift(dx, dy int) {
	w, h := c.res.Width, c.res.Height
	if abs(dx) >= w || abs(dy) >= h {
		tracer().Debugf("shift by (%d,%d) clears %d×%d canvas", dx, dy, w, h)
		c.Clear()
		return
	}
	// Destination cells are visited so that every source cell is read
	// before it is overwritten: high to low along an axis shifted in the
	// positive direction, low to high otherwise.
	for _, y := range scan(dy, h) {
		for _, x := range scan(dx, w) {
			sx, sy := x-dx, y-dy
			if c.res.Contains(sx, sy) {
				c.store.Set(x, y, c.store.Get(sx, sy))
			} else {
				c.store.Delete(x, y)
			}
		}
	}
	c.cache.invalidate()
	tracer().Debugf("shifted canvas by (%d,%d)", dx, dy)
}

// scan returns the indices 0…n-1, descending if d > 0.
func scan(d, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		if d > 0 {
			idx[i] = n - 1 - i
		} else {
			idx[i] = i
		}
	}
	return idx
}

// Slice copies the cells of a range into a new canvas. The new canvas has
// ceil((x2-x1)/xStep) columns and ceil((y2-y1)/yStep) rows; its cell (i, j)
// is the cell (x1 + i·xStep, y1 + j·yStep) of c. The new canvas uses the
// same kind of store as c and is independent of it.
//
// A range selecting no cells fails with coord.InvalidArgument.
func (c *Canvas) Slice(rg coord.Range) (*Canvas, error) {
	rect, err := c.res.Range(rg)
	if err != nil {
		return nil, opError("slice", err)
	}
	if rect.Empty() {
		return nil, coord.Errorf(coord.InvalidArgument, "slice", "range %s selects no cells", rg)
	}
	w, h := rect.Dx(), rect.Dy()
	sub := newCanvas(w, h, config{sparse: c.sparse})
	for j := range h {
		for i := range w {
			sub.store.Set(i, j, c.store.Get(rect.X1+i*rect.XStep, rect.Y1+j*rect.YStep))
		}
	}
	tracer().Debugf("sliced %s into %d×%d canvas", rect, w, h)
	return sub, nil
}

// Copy returns an independent copy of c, including name and cursor.
func (c *Canvas) Copy() *Canvas {
	cp := newCanvas(c.res.Width, c.res.Height, config{sparse: c.sparse, name: c.name})
	cells.Copy(cp.store, c.store)
	cp.cursor = c.cursor
	return cp
}

// Equal reports whether c and other have the same size and identical cells.
// A transparent cell is not equal to a blank one. Names, cursors and store
// kinds are not compared.
func (c *Canvas) Equal(other *Canvas) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.res != other.res {
		return false
	}
	for y := range c.res.Height {
		for x := range c.res.Width {
			if c.store.Get(x, y) != other.store.Get(x, y) {
				return false
			}
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package coord

// Resolver normalizes keys for a canvas of a given size. The zero value is
// not useful; Width and Height must both be at least 1.
type Resolver struct {
	Width, Height int
}

// Contains reports whether (x, y) is a normalized cell coordinate,
// i.e. 0 ≤ x < Width and 0 ≤ y < Height.
func (r Resolver) Contains(x, y int) bool {
	return 0 <= x && x < r.Width && 0 <= y && y < r.Height
}

// Index converts a linear index to a cell coordinate. Cells are counted in
// row-major order; a negative index counts backwards from the last cell.
func (r Resolver) Index(i int) (Point, error) {
	area := r.Width * r.Height
	if i < 0 {
		if i < -area {
			return Point{}, Errorf(OutOfRange, "index", "index %d out of range [-%d, %d)", i, area, area)
		}
		i += area
	} else if i >= area {
		return Point{}, Errorf(OutOfRange, "index", "index %d out of range [-%d, %d)", i, area, area)
	}
	return Point{X: i % r.Width, Y: i / r.Width}, nil
}

// Point normalizes a cell coordinate. Each component must lie within
// [-dim, dim) for its dimension; negative components count from the right
// or bottom edge.
func (r Resolver) Point(p Point) (Point, error) {
	x, err := axis("point", "x", p.X, r.Width)
	if err != nil {
		return Point{}, err
	}
	y, err := axis("point", "y", p.Y, r.Height)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// Cell resolves a single-cell key, i.e. an Index or a Point.
func (r Resolver) Cell(k Key) (Point, error) {
	switch key := k.(type) {
	case Index:
		return r.Index(int(key))
	case Point:
		return r.Point(key)
	case Range:
		return Point{}, Errorf(TypeMismatch, "cell", "range %s used where a single cell is required", key)
	default:
		return Point{}, Errorf(TypeMismatch, "cell", "key must be an index or a point, not %T", k)
	}
}

// Range resolves a range key to a rectangle in canonical form.
//
// A missing start defaults to (0, 0), a missing stop to (Width, Height) and
// a missing step to (1, 1). Start and stop are swapped per axis so that
// start is the top-left corner; inverted ranges are thus reordered rather
// than rejected. The start point is normalized like a cell coordinate. The
// stop point is normalized the same way, except that the values Width and
// -(Width-1) for x, and Height and -(Height-1) for y, are taken as-is: they
// denote "one past the last cell", which a cell coordinate may not.
//
// Steps must be at least 1.
func (r Resolver) Range(rg Range) (Rect, error) {
	start := rg.Start.Or(Point{})
	stop := rg.Stop.Or(Point{X: r.Width, Y: r.Height})
	step := rg.Step.Or(Point{X: 1, Y: 1})
	if step.X < 1 || step.Y < 1 {
		return Rect{}, Errorf(OutOfRange, "range", "step %s must be positive on both axes", step)
	}
	x1, x2 := ordered(start.X, stop.X)
	y1, y2 := ordered(start.Y, stop.Y)
	var err error
	if x1, err = axis("range", "x", x1, r.Width); err != nil {
		return Rect{}, err
	}
	if y1, err = axis("range", "y", y1, r.Height); err != nil {
		return Rect{}, err
	}
	if !isEnd(x2, r.Width) {
		if x2, err = axis("range", "x", x2, r.Width); err != nil {
			return Rect{}, err
		}
	}
	if !isEnd(y2, r.Height) {
		if y2, err = axis("range", "y", y2, r.Height); err != nil {
			return Rect{}, err
		}
	}
	rect := Rect{X1: x1, Y1: y1, X2: x2, Y2: y2, XStep: step.X, YStep: step.Y}
	tracer().Debugf("range %s resolves to %s", rg, rect)
	return rect, nil
}

// axis normalizes a single coordinate component against dimension dim.
func axis(op, name string, v, dim int) (int, error) {
	if v < -dim || v >= dim {
		return 0, Errorf(OutOfRange, op, "%s (%d) out of range [%d, %d)", name, v, -dim, dim)
	}
	if v < 0 {
		return dim + v, nil
	}
	return v, nil
}

// isEnd reports whether v denotes the exclusive end of an axis of size dim.
func isEnd(v, dim int) bool {
	return v == dim || v == -(dim-1)
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

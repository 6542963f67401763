package canvas

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/textcanvas/cells"
	"github.com/npillmayer/textcanvas/coord"
	"golang.org/x/text/unicode/norm"
)

// Default canvas size, used by Default.
const (
	DefaultWidth  = 80
	DefaultHeight = 25
)

// Canvas is a rectangular grid of character cells. Its size is fixed at
// construction time.
//
// The zero value is not usable; create canvases with New, Default or
// FromString.
type Canvas struct {
	name   string
	res    coord.Resolver
	store  cells.Store
	sparse bool
	cache  stringCache
	cursor coord.Point // always normalized
}

// Option configures a canvas at construction time.
type Option func(*config)

type config struct {
	sparse  bool
	name    string
	preload coord.Option[string]
}

// WithSparseStore makes the canvas keep only opaque cells, in a map. This
// saves memory for large canvases with few characters on them.
func WithSparseStore() Option {
	return func(c *config) {
		c.sparse = true
	}
}

// WithName attaches a name to the canvas, for use by scene-composing
// clients. It has no effect on the canvas' behaviour.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithPreload writes text onto the new canvas, line by line, starting at
// the top-left corner. Characters beyond the right or bottom edge are
// dropped.
func WithPreload(text string) Option {
	return func(c *config) {
		c.preload = coord.Some(text)
	}
}

// New creates a canvas of width × height transparent cells.
// Both dimensions must be at least 1, otherwise an error of kind
// coord.InvalidArgument is returned.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width < 1 {
		return nil, coord.Errorf(coord.InvalidArgument, "new", "width must be 1 or greater, not %d", width)
	}
	if height < 1 {
		return nil, coord.Errorf(coord.InvalidArgument, "new", "height must be 1 or greater, not %d", height)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	c := newCanvas(width, height, cfg)
	if text, ok := cfg.preload.Unwrap(); ok {
		if err := c.Load(text); err != nil {
			return nil, opError("new", err)
		}
	}
	tracer().Debugf("created canvas %q of size %d×%d (sparse=%v)", c.name, width, height, c.sparse)
	return c, nil
}

// Default creates a canvas of DefaultWidth × DefaultHeight cells.
func Default(opts ...Option) (*Canvas, error) {
	return New(DefaultWidth, DefaultHeight, opts...)
}

// FromString creates a canvas sized to fit text and preloaded with it.
// The width is the length of the longest line, the height the number of
// lines. Lines are separated by '\n' (a preceding '\r' is dropped). Cells
// to the right of shorter lines stay transparent.
func FromString(text string, opts ...Option) (*Canvas, error) {
	width, height := TextSize(text)
	if width == 0 {
		return nil, coord.Errorf(coord.InvalidArgument, "new", "preload text must contain at least one character")
	}
	opts = append(opts[:len(opts):len(opts)], WithPreload(text))
	return New(width, height, opts...)
}

// TextSize returns the size FromString would choose for text: the length
// of its longest line and its number of lines. The width of an empty text
// is 0.
func TextSize(text string) (width, height int) {
	lines := splitLines(text)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	return width, len(lines)
}

// newCanvas allocates a canvas without validating the size.
func newCanvas(width, height int, cfg config) *Canvas {
	c := &Canvas{
		name:   cfg.name,
		res:    coord.Resolver{Width: width, Height: height},
		sparse: cfg.sparse,
		cache:  newStringCache(),
	}
	if cfg.sparse {
		c.store = cells.NewSparse(width, height)
	} else {
		c.store = cells.NewDense(width, height)
	}
	return c
}

func splitLines(text string) []string {
	lines := strings.Split(norm.NFC.String(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// --- Accessors -------------------------------------------------------------

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.res.Width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.res.Height }

// Area returns the number of cells.
func (c *Canvas) Area() int { return c.res.Width * c.res.Height }

// Name returns the name given with WithName.
func (c *Canvas) Name() string { return c.name }

// Sparse reports whether the canvas uses a sparse store.
func (c *Canvas) Sparse() bool { return c.sparse }

// Len returns the length in characters of the canvas' string form: one per
// cell plus one newline per row except the last.
func (c *Canvas) Len() int {
	return c.Area() + c.res.Height - 1
}

// IsOnCanvas reports whether (x, y) is a cell of this canvas. Negative
// coordinates are not on the canvas.
func (c *Canvas) IsOnCanvas(x, y int) bool {
	return c.res.Contains(x, y)
}

// Cursor returns the cursor position.
func (c *Canvas) Cursor() coord.Point {
	return c.cursor
}

// Goto moves the cursor to (x, y). Negative coordinates count from the
// right or bottom edge. On error, the cursor does not move.
func (c *Canvas) Goto(x, y int) error {
	p, err := c.res.Point(coord.Pt(x, y))
	if err != nil {
		return opError("goto", err)
	}
	c.cursor = p
	return nil
}

// --- Cell access -----------------------------------------------------------

// Get returns the cell addressed by k, which must be an Index or a Point.
// Use Slice to read a range.
func (c *Canvas) Get(k coord.Key) (cells.Cell, error) {
	p, err := c.res.Cell(k)
	if err != nil {
		return cells.Transparent, opError("get", err)
	}
	return c.store.Get(p.X, p.Y), nil
}

// Set stores v in the cell(s) addressed by k. For a range key, every cell
// of the range is set to v. Setting cells.Transparent clears cells.
func (c *Canvas) Set(k coord.Key, v cells.Cell) error {
	return c.set("set", k, v)
}

// Put is Set with a one-character string value, which is parsed with
// cells.Parse.
func (c *Canvas) Put(k coord.Key, s string) error {
	v, err := cells.Parse(s)
	if err != nil {
		return opError("put", err)
	}
	return c.set("put", k, v)
}

// Delete makes the cell(s) addressed by k transparent.
func (c *Canvas) Delete(k coord.Key) error {
	return c.set("delete", k, cells.Transparent)
}

func (c *Canvas) set(op string, k coord.Key, v cells.Cell) error {
	if err := cells.Validate(v); err != nil {
		return opError(op, err)
	}
	if rg, ok := k.(coord.Range); ok {
		rect, err := c.res.Range(rg)
		if err != nil {
			return opError(op, err)
		}
		for p := range rect.Points() {
			c.store.Set(p.X, p.Y, v)
		}
	} else {
		p, err := c.res.Cell(k)
		if err != nil {
			return opError(op, err)
		}
		c.store.Set(p.X, p.Y, v)
	}
	c.cache.invalidate()
	return nil
}

// Cells iterates over all cells in row-major order.
func (c *Canvas) Cells() iter.Seq2[coord.Point, cells.Cell] {
	return func(yield func(coord.Point, cells.Cell) bool) {
		for y := range c.res.Height {
			for x := range c.res.Width {
				if !yield(coord.Pt(x, y), c.store.Get(x, y)) {
					return
				}
			}
		}
	}
}

// --- String form -----------------------------------------------------------

// String returns the canvas as text: one line per row, separated by '\n',
// without a trailing newline. Transparent cells appear as spaces.
func (c *Canvas) String() string {
	return c.cache.render(c.store)
}

// Contains reports whether sub occurs in the string form of the canvas.
// Matches spanning two rows include the '\n' between them, so clients
// should not rely on matches across rows.
func (c *Canvas) Contains(sub string) bool {
	return strings.Contains(c.String(), sub)
}

// GoString returns a short description of the canvas, without its content.
func (c *Canvas) GoString() string {
	if c.name != "" {
		return fmt.Sprintf("<Canvas %q, width=%d, height=%d>", c.name, c.res.Width, c.res.Height)
	}
	return fmt.Sprintf("<Canvas, width=%d, height=%d>", c.res.Width, c.res.Height)
}

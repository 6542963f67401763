package canvas

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textcanvas/cells"
	"github.com/npillmayer/textcanvas/coord"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type CanvasTestEnviron struct {
	suite.Suite
	sparse bool
}

// listen for 'go test' command --> run test methods
func TestCanvasFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcanvas.canvas")
	defer teardown()
	suite.Run(t, &CanvasTestEnviron{sparse: false})
}

func TestSparseCanvasFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcanvas.canvas")
	defer teardown()
	suite.Run(t, &CanvasTestEnviron{sparse: true})
}

// run once, before test suite methods
func (env *CanvasTestEnviron) SetupSuite() {
	env.T().Logf("Setting up test suite (sparse=%v)", env.sparse)
	tracing.Select("textcanvas.canvas").SetTraceLevel(tracing.LevelError)
}

// run once, after test suite methods
func (env *CanvasTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

func (env *CanvasTestEnviron) newCanvas(w, h int) *Canvas {
	var opts []Option
	if env.sparse {
		opts = append(opts, WithSparseStore())
	}
	c, err := New(w, h, opts...)
	env.Require().NoError(err)
	env.Require().Equal(env.sparse, c.Sparse())
	return c
}

// --- Tests -----------------------------------------------------------------

func (env *CanvasTestEnviron) TestConstruction() {
	c, err := Default()
	env.Require().NoError(err)
	env.Equal(80, c.Width())
	env.Equal(25, c.Height())
	env.Equal(2000, c.Area())
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := New(size[0], size[1])
		env.ErrorIs(err, coord.ErrInvalidArgument, "expected size %v to be rejected", size)
	}
	_, err = FromString("")
	env.ErrorIs(err, coord.ErrInvalidArgument, "expected empty preload to be rejected")
}

func (env *CanvasTestEnviron) TestSetThenGet() {
	c := env.newCanvas(6, 4)
	for y := range 4 {
		for x := range 6 {
			ch := cells.Char(rune('a' + y*6 + x))
			env.Require().NoError(c.Set(coord.Pt(x, y), ch))
			got, err := c.Get(coord.Pt(x, y))
			env.Require().NoError(err)
			env.Equal(ch, got, "expected cell (%d,%d) to hold what was set", x, y)
		}
	}
}

func (env *CanvasTestEnviron) TestNegativeWraparound() {
	c, err := FromString("abc\ndef")
	env.Require().NoError(err)
	for y := range c.Height() {
		for x := range c.Width() {
			direct, err := c.Get(coord.Pt(x, y))
			env.Require().NoError(err)
			wrapped, err := c.Get(coord.Pt(x-c.Width(), y-c.Height()))
			env.Require().NoError(err)
			env.Equal(direct, wrapped, "expected (%d,%d) and its negative alias to match", x, y)
		}
	}
}

func (env *CanvasTestEnviron) TestLinearIndex() {
	c := env.newCanvas(4, 3)
	env.Require().NoError(c.Put(coord.Index(5), "x"))
	got, err := c.Get(coord.Pt(1, 1))
	env.Require().NoError(err)
	env.Equal(cells.Char('x'), got)
	env.Require().NoError(c.Put(coord.Index(-1), "z"))
	got, err = c.Get(coord.Pt(3, 2))
	env.Require().NoError(err)
	env.Equal(cells.Char('z'), got)
	_, err = c.Get(coord.Index(12))
	env.ErrorIs(err, coord.ErrOutOfRange)
	_, err = c.Get(coord.Index(-13))
	env.ErrorIs(err, coord.ErrOutOfRange)
	_, err = c.Get(coord.Index(math.MinInt))
	env.ErrorIs(err, coord.ErrOutOfRange)
}

func (env *CanvasTestEnviron) TestStringLength() {
	for _, size := range [][2]int{{1, 1}, {7, 1}, {1, 5}, {13, 4}} {
		c := env.newCanvas(size[0], size[1])
		s := c.String()
		env.Equal(size[0]*size[1]+size[1]-1, utf8.RuneCountInString(s))
		env.Equal(c.Len(), len(s))
		env.False(strings.HasSuffix(s, "\n"), "expected no trailing newline")
	}
}

func (env *CanvasTestEnviron) TestStringIsCached() {
	c := env.newCanvas(5, 2)
	first := c.String()
	second := c.String()
	env.Equal(first, second)
	env.Equal(1, c.cache.renders, "expected a single recomputation for two reads")
	env.True(c.Contains("     "))
	env.Equal(1, c.cache.renders, "expected Contains to use the cached text")
	env.Require().NoError(c.Put(coord.Pt(0, 0), "#"))
	env.True(c.cache.dirty)
	env.Equal("#    \n     ", c.String())
	env.Equal(2, c.cache.renders)
}

func (env *CanvasTestEnviron) TestRangeWriteInvalidatesOnce() {
	c := env.newCanvas(6, 6)
	_ = c.String()
	env.Require().NoError(c.Put(coord.Span(coord.Pt(0, 0), coord.Pt(6, 6)).Every(2), "+"))
	env.True(c.cache.dirty)
	env.Equal("+ + + \n      \n+ + + \n      \n+ + + \n      ", c.String())
	env.Equal(2, c.cache.renders)
}

func (env *CanvasTestEnviron) TestFailedWritesLeaveCanvasUntouched() {
	c, err := FromString("abc\ndef")
	env.Require().NoError(err)
	before := c.String()
	env.ErrorIs(c.Put(coord.Pt(0, 0), ""), coord.ErrInvalidValue)
	env.ErrorIs(c.Put(coord.Pt(0, 0), "xy"), coord.ErrInvalidValue)
	env.ErrorIs(c.Set(coord.Pt(0, 0), cells.Cell(-7)), coord.ErrInvalidValue)
	var zero cells.Cell
	env.ErrorIs(c.Set(coord.Pt(0, 0), zero), coord.ErrInvalidValue)
	env.ErrorIs(c.Put(coord.Pt(3, 0), "x"), coord.ErrOutOfRange)
	env.ErrorIs(c.Put(coord.Span(coord.Pt(0, 0), coord.Pt(4, 1)), "x"), coord.ErrOutOfRange)
	env.ErrorIs(c.Delete(coord.Pt(0, 2)), coord.ErrOutOfRange)
	env.False(c.cache.dirty, "expected failed writes not to invalidate the cache")
	env.Equal(before, c.String())
	env.Equal(1, c.cache.renders)
}

func (env *CanvasTestEnviron) TestNonIntegerKeyIsTypeMismatch() {
	c := env.newCanvas(3, 3)
	_, err := coord.KeyOf([]any{1.5, 0})
	env.ErrorIs(err, coord.ErrTypeMismatch)
	_, err = coord.ParseKey("1,0.5")
	env.ErrorIs(err, coord.ErrTypeMismatch)
	_, err = c.Get(coord.Full())
	env.ErrorIs(err, coord.ErrTypeMismatch, "expected range key to be rejected by Get")
	var e *coord.Error
	env.Require().True(errors.As(err, &e))
	env.Equal("get", e.Op)
}

func (env *CanvasTestEnviron) TestFillBlank() {
	c := env.newCanvas(4, 3)
	env.Require().NoError(c.FillWith(" "))
	env.Equal("    \n    \n    ", c.String())
	got, err := c.Get(coord.Pt(2, 2))
	env.Require().NoError(err)
	env.Equal(cells.Blank, got)
	env.ErrorIs(c.FillWith("ab"), coord.ErrInvalidValue)
}

func (env *CanvasTestEnviron) TestClearMakesCellsTransparent() {
	c := env.newCanvas(3, 2)
	env.Require().NoError(c.FillWith("x"))
	c.Clear()
	for p, cell := range c.Cells() {
		env.Equal(cells.Transparent, cell, "expected %s to be transparent after clear", p)
	}
	env.Equal("   \n   ", c.String())
}

func (env *CanvasTestEnviron) TestPreloadRoundTrip() {
	c, err := FromString("ab\ncde")
	env.Require().NoError(err)
	env.Equal(3, c.Width())
	env.Equal(2, c.Height())
	env.Equal("ab \ncde", c.String())
	padding, err := c.Get(coord.Pt(2, 0))
	env.Require().NoError(err)
	env.True(padding.IsTransparent(), "expected padding beyond a short line to be transparent")
	c, err = FromString("x\r\nyz")
	env.Require().NoError(err)
	env.Equal("x \nyz", c.String())
}

func (env *CanvasTestEnviron) TestPreloadClipping() {
	c, err := New(3, 2, WithPreload("abcdef\nghi\njkl"), WithName("clip"))
	env.Require().NoError(err)
	env.Equal("abc\nghi", c.String())
	env.Equal("clip", c.Name())
	_, err = New(3, 2, WithPreload("a\rb"))
	env.ErrorIs(err, coord.ErrInvalidValue)
	c, err = New(1, 2, WithPreload("a\rb\nc\n\r"))
	env.Require().NoError(err, "characters beyond the edges are not validated")
	env.Equal("a\nc", c.String())
	_, err = New(3, 2, WithPreload("a\x00"))
	env.ErrorIs(err, coord.ErrInvalidValue)
	w, h := TextSize("ab\r\ncde\n")
	env.Equal([2]int{3, 3}, [2]int{w, h})
	w, h = TextSize("")
	env.Equal([2]int{0, 1}, [2]int{w, h})
	_, err = FromString("ok\xff")
	env.ErrorIs(err, coord.ErrInvalidValue)
}

func (env *CanvasTestEnviron) TestCursor() {
	c := env.newCanvas(10, 5)
	env.Equal(coord.Pt(0, 0), c.Cursor())
	env.Require().NoError(c.Goto(-1, -2))
	env.Equal(coord.Pt(9, 3), c.Cursor())
	env.ErrorIs(c.Goto(10, 0), coord.ErrOutOfRange)
	env.Equal(coord.Pt(9, 3), c.Cursor(), "expected failed goto to keep the cursor")
	env.True(c.IsOnCanvas(9, 4))
	env.False(c.IsOnCanvas(-1, 0))
}

func (env *CanvasTestEnviron) TestEquality() {
	a, err := FromString("ab\ncd")
	env.Require().NoError(err)
	b, err := FromString("ab\ncd", WithSparseStore())
	env.Require().NoError(err)
	env.True(a.Equal(b), "expected store kind not to matter for equality")
	env.Require().NoError(b.Put(coord.Pt(1, 1), " "))
	env.False(a.Equal(b))
	c := env.newCanvas(2, 2)
	d := env.newCanvas(2, 2)
	env.True(c.Equal(d))
	env.Require().NoError(d.FillWith(" "))
	env.False(c.Equal(d), "expected transparent and blank cells to differ")
	env.False(c.Equal(env.newCanvas(2, 3)), "expected canvases of different size to differ")
	env.False(c.Equal(nil))
}

func (env *CanvasTestEnviron) TestContains() {
	c, err := FromString("hello\nworld")
	env.Require().NoError(err)
	env.True(c.Contains("llo"))
	env.True(c.Contains("world"))
	env.False(c.Contains("helloworld"))
	env.True(c.Contains("o\nw"))
}

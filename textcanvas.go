/*
Package textcanvas is for drawing with characters on a fixed-size grid.

A canvas is a rectangle of character cells which clients address by linear
index, by (x, y) coordinates or by rectangular ranges. Negative coordinates
count from the right or bottom edge. Cells hold a single character or are
transparent; a transparent cell prints as a space. The whole canvas renders
to a multi-line string.

The functionality is split into packages:

▪︎ coord resolves keys (indices, points and ranges) to cell coordinates and
defines the error kinds shared by all packages.

▪︎ cells defines the cell type and the dense and sparse cell stores.

▪︎ canvas is the canvas itself, with reading, writing, slicing, shifting and
a cached string form.

▪︎ raster computes the grid points of lines.

▪︎ turtle is a LOGO-like pen drawing lines onto a canvas.

This package contains shortcuts for common use-cases. Clients who need more
control use the sub-packages directly.

	c, _ := textcanvas.FromString("hello\nworld")
	_ = c.Put(coord.Pt(-1, 0), "!")
	fmt.Println(c) // hell!\nworld

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package textcanvas

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textcanvas/canvas"
	"golang.org/x/term"
)

// tracer writes to trace with key 'textcanvas'
func tracer() tracing.Trace {
	return tracing.Select("textcanvas")
}

// FromString creates a canvas sized to fit text and preloaded with it.
// See canvas.FromString.
func FromString(text string, opts ...canvas.Option) (*canvas.Canvas, error) {
	return canvas.FromString(text, opts...)
}

// TerminalSize returns the number of columns and rows of the terminal
// attached to standard output. If there is none, or its size cannot be
// determined, it returns canvas.DefaultWidth × canvas.DefaultHeight.
func TerminalSize() (width, height int) {
	return sizeOf(int(os.Stdout.Fd()))
}

func sizeOf(fd int) (width, height int) {
	if !term.IsTerminal(fd) {
		tracer().Debugf("fd %d is not a terminal, using default size", fd)
		return canvas.DefaultWidth, canvas.DefaultHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w < 1 || h < 1 {
		tracer().Infof("cannot determine terminal size (%v), using default size", err)
		return canvas.DefaultWidth, canvas.DefaultHeight
	}
	return w, h
}

// ForTerminal creates a canvas the size of the terminal attached to standard
// output, or of default size if there is none.
func ForTerminal(opts ...canvas.Option) (*canvas.Canvas, error) {
	w, h := TerminalSize()
	tracer().Debugf("creating canvas for terminal of size %d×%d", w, h)
	return canvas.New(w, h, opts...)
}

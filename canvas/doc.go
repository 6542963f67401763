/*
Package canvas implements a fixed-size 2D grid of character cells.

A Canvas is addressed by keys from package coord: a linear index, an (x, y)
point, or a rectangular range. Negative indices and coordinates count from
the end, ranges are half-open. Every key is validated before anything is
written, so a failing call leaves the canvas untouched.

	c, _ := canvas.New(10, 3)
	c.Put(coord.Pt(0, 0), "a")      // top-left
	c.Put(coord.Pt(-1, -1), "z")    // bottom-right
	c.Put(coord.Index(11), "b")     // second row, second column
	sub, _ := c.Slice(coord.Span(coord.Pt(0, 0), coord.Pt(2, 2)))
	fmt.Println(sub)

Cells are either opaque characters (including the space) or transparent.
Both render as a space in the canvas' string form, which has one line per
row, separated by '\n' and without a trailing newline. The string form is
computed lazily and cached until the next mutation.

# Concurrency

A Canvas is not safe for concurrent use. Wrap it in a Locked to share it
between goroutines.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package canvas

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textcanvas/coord"
)

// tracer writes to trace with key 'textcanvas.canvas'
func tracer() tracing.Trace {
	return tracing.Select("textcanvas.canvas")
}

// opError re-labels a validation error with the canvas operation which
// triggered it. Errors of other types pass through unchanged.
func opError(op string, err error) error {
	var e *coord.Error
	if errors.As(err, &e) {
		relabeled := *e
		relabeled.Op = op
		return &relabeled
	}
	return err
}

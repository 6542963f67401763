/*
Package coord converts the key shapes a client may use to address canvas
cells into normalized, bounds-checked coordinates.

Three key shapes are supported:

▪︎ Index: a single linear index, treating the canvas as one long row of
cells in row-major order (x varies fastest). Negative indices count from
the end, as with sequence indexing in many scripting languages.

▪︎ Point: an (x, y) pair. Each component may be negative, counting from the
right or bottom edge.

▪︎ Range: a rectangle given by two points plus an optional step. A range is
half-open: the stop point is "one past" the last cell addressed. Missing
components default to the full canvas.

Normalization never clamps. A key that does not address a cell of the
canvas is rejected with an *Error of kind OutOfRange, a key of the wrong
shape with kind TypeMismatch.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package coord

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textcanvas.coord'
func tracer() tracing.Trace {
	return tracing.Select("textcanvas.coord")
}

/*
Package raster turns geometric intent into sequences of grid cells.

LinePoints implements Bresenham's line algorithm. Drawing helpers use it to
translate two endpoints into cell writes; the algorithm itself knows
nothing about canvases and happily produces points with negative or
arbitrarily large coordinates, one per cell of the major axis.

ClippedLine produces the same points restricted to a w×h area. It jumps
straight to the first column (or row) inside the area, carrying the error
term along, so its cost is bounded by the area and not by the length of
the line. Callers drawing onto a canvas should use the clipped variants.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package raster

import (
	"math/bits"
	"slices"

	"github.com/npillmayer/textcanvas/coord"
)

// LinePoints returns the grid points of the line from (x1, y1) to (x2, y2),
// both endpoints included. The result always starts at (x1, y1) and ends at
// (x2, y2); if the endpoints coincide, it consists of a single point.
//
// Lines steeper than 45° are scanned along the y axis (x and y swap roles
// for the duration of the scan), so every step advances the major axis by
// exactly one cell.
func LinePoints(x1, y1, x2, y2 int) []coord.Point {
	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	reversed := x1 > x2
	if reversed {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}
	dx := x2 - x1
	dy := abs(y2 - y1)
	e := dx / 2 // dx ≥ 0, so this is floor
	ystep := 1
	if y1 > y2 {
		ystep = -1
	}
	points := make([]coord.Point, 0, dx+1)
	y := y1
	for x := x1; x <= x2; x++ {
		if steep {
			points = append(points, coord.Point{X: y, Y: x})
		} else {
			points = append(points, coord.Point{X: x, Y: y})
		}
		e -= dy
		if e < 0 {
			y += ystep
			e += dx
		}
	}
	if reversed {
		slices.Reverse(points)
	}
	return points
}

// LinePointsF is LinePoints for fractional endpoints, which are truncated
// toward zero first.
func LinePointsF(x1, y1, x2, y2 float64) []coord.Point {
	return LinePoints(int(x1), int(y1), int(x2), int(y2))
}

// Polyline returns the grid points of the open path through vertices.
// A vertex shared by two segments is emitted once.
func Polyline(vertices ...coord.Point) []coord.Point {
	switch len(vertices) {
	case 0:
		return nil
	case 1:
		return []coord.Point{vertices[0]}
	}
	var points []coord.Point
	for i := 1; i < len(vertices); i++ {
		a, b := vertices[i-1], vertices[i]
		seg := LinePoints(a.X, a.Y, b.X, b.Y)
		if i > 1 {
			seg = seg[1:]
		}
		points = append(points, seg...)
	}
	return points
}

// ClippedLine returns the points of LinePoints(x1, y1, x2, y2) which lie
// within [0, w) × [0, h), in the same order. Endpoints may be anywhere in
// the range of int.
func ClippedLine(x1, y1, x2, y2, w, h int) []coord.Point {
	if w <= 0 || h <= 0 {
		return nil
	}
	steep := dist(y1, y2) > dist(x1, x2)
	major, minor := w, h
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
		major, minor = h, w
	}
	reversed := x1 > x2
	if reversed {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}
	xs, xe := max(x1, 0), min(x2, major-1)
	if xs > xe {
		return nil
	}
	dx, dy := dist(x1, x2), dist(y1, y2)
	up := y1 <= y2
	// Advance the scan to column xs. After j steps the error term is
	// e0 - j·dy + m·dx with m, the number of minor steps taken, chosen
	// such that it stays within [0, dx).
	e := dx / 2
	var m uint64
	if j := uint64(xs) - uint64(x1); j > 0 && dy > 0 {
		hi, lo := bits.Mul64(j, dy)
		if hi == 0 && lo <= e {
			e -= lo
		} else {
			var borrow uint64
			lo, borrow = bits.Sub64(lo, e, 0)
			hi -= borrow
			// j·dy - e0 < j·dx, so the quotient fits
			q, r := bits.Div64(hi, lo, dx)
			m, e = q, 0
			if r > 0 {
				m, e = q+1, dx-r
			}
		}
	}
	y := int(uint64(y1) + m)
	if !up {
		y = int(uint64(y1) - m)
	}
	points := make([]coord.Point, 0, xe-xs+1)
	for x := xs; ; x++ {
		if 0 <= y && y < minor {
			if steep {
				points = append(points, coord.Point{X: y, Y: x})
			} else {
				points = append(points, coord.Point{X: x, Y: y})
			}
		}
		if x == xe {
			break
		}
		if e < dy {
			e += dx - dy
			if up {
				y++
			} else {
				y--
			}
		} else {
			e -= dy
		}
	}
	if reversed {
		slices.Reverse(points)
	}
	return points
}

// ClippedPolyline is Polyline restricted to [0, w) × [0, h).
func ClippedPolyline(w, h int, vertices ...coord.Point) []coord.Point {
	switch len(vertices) {
	case 0:
		return nil
	case 1:
		if v := vertices[0]; 0 <= v.X && v.X < w && 0 <= v.Y && v.Y < h {
			return []coord.Point{v}
		}
		return nil
	}
	var points []coord.Point
	for i := 1; i < len(vertices); i++ {
		a, b := vertices[i-1], vertices[i]
		seg := ClippedLine(a.X, a.Y, b.X, b.Y, w, h)
		if i > 1 && len(seg) > 0 && seg[0] == a {
			seg = seg[1:]
		}
		points = append(points, seg...)
	}
	return points
}

// dist returns |b-a| without overflow.
func dist(a, b int) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

/*
Package cells holds the character data of a canvas.

A cell is either a single character (any character, including the space)
or transparent. A transparent cell renders as a space but, unlike a cell
holding a space, does not cover what lies beneath it when canvases are
layered.

Stores come in two flavours. A dense store keeps a fixed array of
width·height cells and is the right choice for small and medium canvases.
A sparse store keeps only opaque cells in a map and pays off for large,
mostly empty canvases. Both behave identically; they differ in memory
and access costs only.

Stores trust their callers: coordinates are expected to have been
normalized and bounds-checked already (see package coord). Violations are
programming errors and panic.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package cells

import (
	"strconv"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/textcanvas/coord"
	"golang.org/x/text/unicode/norm"
)

// Cell is the content of one canvas position: a single character, or
// Transparent.
//
// The zero value is the NUL character, which is neither a character nor
// Transparent and cannot be stored; Validate rejects it.
type Cell rune

// Transparent is the marker for a cell without a character.
const Transparent Cell = -1

// Blank is an opaque cell holding a space.
const Blank Cell = ' '

// Char returns an opaque cell holding r.
func Char(r rune) Cell {
	return Cell(r)
}

// Parse converts a one-character string into a cell. The string is
// normalized to NFC first, so a letter followed by a combining accent is
// accepted if a precomposed form exists.
//
// Empty strings, strings of more than one character, invalid UTF-8 and line
// breaks fail with an error of kind coord.InvalidValue. Line breaks are
// excluded because '\n' separates rows in a canvas' string form.
func Parse(s string) (Cell, error) {
	if s == "" {
		return Transparent, coord.Errorf(coord.InvalidValue, "cell",
			"value must have a length of 1; use Transparent to clear a cell or \" \" to blank it")
	}
	if !utf8.ValidString(s) {
		return Transparent, coord.Errorf(coord.InvalidValue, "cell", "value %q is not valid UTF-8", s)
	}
	s = norm.NFC.String(s)
	if n := utf8.RuneCountInString(s); n != 1 {
		return Transparent, coord.Errorf(coord.InvalidValue, "cell",
			"value %q must have a length of 1, has %d", s, n)
	}
	r, _ := utf8.DecodeRuneInString(s)
	c := Char(r)
	if err := Validate(c); err != nil {
		return Transparent, err
	}
	return c, nil
}

// Validate checks that c is either Transparent or a character which may be
// stored in a canvas. Line breaks and NUL may not.
func Validate(c Cell) error {
	if c == Transparent {
		return nil
	}
	r := rune(c)
	switch {
	case !utf8.ValidRune(r):
		return coord.Errorf(coord.InvalidValue, "cell", "%U is not a valid character", r)
	case r == '\n' || r == '\r':
		return coord.Errorf(coord.InvalidValue, "cell", "line breaks cannot be stored in a cell")
	case r == 0:
		return coord.Errorf(coord.InvalidValue, "cell", "NUL cannot be stored in a cell; use Transparent")
	}
	return nil
}

// IsTransparent reports whether c holds no character.
func (c Cell) IsTransparent() bool {
	return c == Transparent
}

// Rune returns the character of c. ok is false for transparent cells.
func (c Cell) Rune() (r rune, ok bool) {
	if c == Transparent {
		return 0, false
	}
	return rune(c), true
}

// Render returns the character to display for c, a space for transparent
// cells.
func (c Cell) Render() rune {
	if c == Transparent {
		return ' '
	}
	return rune(c)
}

// String returns the character to display for c as a string.
func (c Cell) String() string {
	return string(c.Render())
}

// GoString distinguishes transparent cells from blanks in %#v output.
func (c Cell) GoString() string {
	if c == Transparent {
		return "cells.Transparent"
	}
	return "cells.Char(" + strconv.QuoteRune(rune(c)) + ")"
}

// Width returns the number of terminal columns the character of c occupies.
// Transparent cells count as one column.
func Width(c Cell) int {
	if c == Transparent {
		return 1
	}
	return runewidth.RuneWidth(rune(c))
}

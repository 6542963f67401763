// Command tc-tools renders text canvases non-interactively.
//
// Sub-commands:
//
//	render FILE       load a text file onto a canvas, optionally shift or
//	                  slice it, and print the result
//	line POINTS...    draw a line through points and print the canvas
//	info FILE         print size and cell statistics for a text file
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/textcanvas/canvas"
	"github.com/npillmayer/textcanvas/coord"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("tc-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for rendering text canvases.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("render").
		SetDescription("Load a text file onto a canvas and print it.").
		SetShortDescription("render text").
		AddArgument("file", "text file path", "").
		AddFlag("width,W", "canvas width (0 fits the text)", commando.Int, 0).
		AddFlag("height,H", "canvas height (0 fits the text)", commando.Int, 0).
		AddFlag("shift", "shift content by dx,dy", commando.String, "-").
		AddFlag("slice,s", "print only a range start:stop[:step], e.g. 0,0:10,5", commando.String, "-").
		AddFlag("sparse", "use a sparse cell store", commando.Bool, nil).
		AddFlag("frame,f", "draw a frame around the canvas", commando.Bool, nil).
		SetAction(runRenderCommand)

	commando.
		Register("line").
		SetDescription("Draw a line through points and print the canvas.").
		SetShortDescription("draw a line").
		AddArgument("points...", "points as x,y pairs (e.g. 0,0 7,3 7,0)", "").
		AddFlag("width,W", "canvas width (0 fits the line)", commando.Int, 0).
		AddFlag("height,H", "canvas height (0 fits the line)", commando.Int, 0).
		AddFlag("char,c", "character to draw with", commando.String, "#").
		AddFlag("frame,f", "draw a frame around the canvas", commando.Bool, nil).
		SetAction(runLineCommand)

	commando.
		Register("info").
		SetDescription("Print size and cell statistics for a text file.").
		SetShortDescription("text statistics").
		AddArgument("file", "text file path", "").
		SetAction(runInfoCommand)

	commando.Parse(nil)
}

// --- Helpers ---------------------------------------------------------------

func readTextFile(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		fatalf("file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("cannot read %s: %v", path, err)
	}
	return string(data)
}

func output(c *canvas.Canvas, framed bool) string {
	if !framed {
		return c.String()
	}
	border := "+" + strings.Repeat("-", c.Width()) + "+"
	var sb strings.Builder
	sb.WriteString(border)
	for _, row := range strings.Split(c.String(), "\n") {
		sb.WriteString("\n|" + row + "|")
	}
	sb.WriteString("\n" + border)
	return sb.String()
}

// parsePointFlag parses a flag of the form "x,y", with "-" meaning unset.
func parsePointFlag(s string) (coord.Option[coord.Point], error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return coord.None[coord.Point](), nil
	}
	k, err := coord.ParseKey(s)
	if err != nil {
		return coord.None[coord.Point](), err
	}
	p, ok := k.(coord.Point)
	if !ok {
		return coord.None[coord.Point](), fmt.Errorf("expected x,y, have %q", s)
	}
	return coord.Some(p), nil
}

// parseRangeFlag parses a range flag, with "-" meaning unset.
func parseRangeFlag(s string) (coord.Option[coord.Range], error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return coord.None[coord.Range](), nil
	}
	k, err := coord.ParseKey(s)
	if err != nil {
		return coord.None[coord.Range](), err
	}
	rg, ok := k.(coord.Range)
	if !ok {
		return coord.None[coord.Range](), fmt.Errorf("expected a range start:stop[:step], have %q", s)
	}
	return coord.Some(rg), nil
}

// parsePoints parses a flat list of integers into points. Commando joins
// variadic arguments with commas, so "0,0 7,3" arrives as "0,0,7,3".
func parsePoints(list string) ([]coord.Point, error) {
	parts := splitCSVSpace(list)
	if len(parts)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates in %q", list)
	}
	points := make([]coord.Point, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		x, err := strconv.Atoi(parts[i])
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", parts[i])
		}
		y, err := strconv.Atoi(parts[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", parts[i+1])
		}
		points = append(points, coord.Pt(x, y))
	}
	return points, nil
}

func splitCSVSpace(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "tc-tools: "+format+"\n", args...)
	os.Exit(1)
}

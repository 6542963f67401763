package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/textcanvas/canvas"
	"github.com/npillmayer/textcanvas/cells"
	"github.com/npillmayer/textcanvas/coord"
	"github.com/npillmayer/textcanvas/raster"
	"github.com/thatisuday/commando"
)

func runLineCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	points, err := parsePoints(args["points"].Value)
	if err != nil {
		fatalf("%v", err)
	}
	pen, err := cells.Parse(mustFlagString(flags["char"], "char"))
	if err != nil {
		fatalf("invalid --char flag: %v", err)
	}
	c, err := drawLine(points, pen, mustFlagInt(flags["width"], "width"), mustFlagInt(flags["height"], "height"))
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(output(c, mustFlagBool(flags["frame"], "frame")))
}

// maxFit limits the size of canvases fitted to a line.
const maxFit = 1024

// drawLine draws a polyline through points onto a new canvas. A width or
// height of 0 sizes the canvas to fit all points, up to maxFit.
func drawLine(points []coord.Point, pen cells.Cell, width, height int) (*canvas.Canvas, error) {
	if len(points) == 0 {
		return nil, errors.New("at least one point is required")
	}
	fitW, fitH := 1, 1
	for _, p := range points {
		fitW, fitH = max(fitW, min(p.X, maxFit)+1), max(fitH, min(p.Y, maxFit)+1)
	}
	if width <= 0 {
		if width = fitW; width > maxFit {
			return nil, fmt.Errorf("line does not fit into %d columns, use --width", maxFit)
		}
	}
	if height <= 0 {
		if height = fitH; height > maxFit {
			return nil, fmt.Errorf("line does not fit into %d rows, use --height", maxFit)
		}
	}
	c, err := canvas.New(width, height)
	if err != nil {
		return nil, err
	}
	for _, p := range raster.ClippedPolyline(width, height, points...) {
		if err := c.Set(p, pen); err != nil {
			return nil, err
		}
	}
	return c, nil
}

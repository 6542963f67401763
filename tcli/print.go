package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/textcanvas/canvas"
	"github.com/pterm/pterm"
)

func printOp(intp *Intp, op *Op) (error, bool) {
	printCanvas(intp.canvas)
	return nil, false
}

// printCanvas prints c inside a frame, with row numbers to the left.
func printCanvas(c *canvas.Canvas) {
	for _, line := range frame(c) {
		pterm.Println(line)
	}
}

func frame(c *canvas.Canvas) []string {
	border := "    +" + strings.Repeat("-", c.Width()) + "+"
	lines := make([]string, 0, c.Height()+2)
	lines = append(lines, border)
	for y, row := range strings.Split(c.String(), "\n") {
		lines = append(lines, fmt.Sprintf("%3d |%s|", y, row))
	}
	return append(lines, border)
}

func infoOp(intp *Intp, op *Op) (error, bool) {
	c, t := intp.canvas, intp.turtle
	opaque := 0
	for _, cell := range c.Cells() {
		if !cell.IsTransparent() {
			opaque++
		}
	}
	store := "dense"
	if c.Sparse() {
		store = "sparse"
	}
	x, y := t.Position()
	data := [][]string{
		{"Property", "Value"},
		{"Size", fmt.Sprintf("%d×%d", c.Width(), c.Height())},
		{"Cells", fmt.Sprintf("%d (%d opaque)", c.Area(), opaque)},
		{"Store", store},
		{"Cursor", c.Cursor().String()},
		{"Turtle", fmt.Sprintf("(%g,%g) heading %g°", x, y, t.Heading())},
		{"Pen", fmt.Sprintf("%#v, down=%v", t.PenChar(), t.IsDown())},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

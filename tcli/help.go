package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "key", "keys", "point", "index":
		pterm.Info.Println("Keys")
		pterm.Println(`
	Cells are addressed by a linear index or by a point:
	  get:7          the 8th cell, counting rows from left to right
	  get:-1         the last cell
	  get:3,1        column 3 of row 1 (parentheses are optional)
	  get:(-1,-1)    the bottom-right cell
	Negative values count from the right or bottom edge.
	`)
	case "range", "ranges", "slice":
		pterm.Info.Println("Ranges")
		pterm.Println(`
	A range is start:stop[:step], where start and stop are points and
	step is a number or a point. Stop is exclusive. Missing parts default
	to the top-left corner, the bottom-right corner and a step of 1.
	  slice:1,1:4,3      columns 1 to 3 of rows 1 and 2
	  slice::            the whole canvas
	  set:0,0:10,1:-     a horizontal line
	  del:::2            every second cell of every second row
	Start and stop are swapped if they are in the wrong order.
	`)
	case "turtle", "pen":
		pterm.Info.Println("Turtle")
		pterm.Println(`
	The turtle is a pen drawing onto the canvas. It starts at 0,0,
	heading east (0°), with its pen up. North is 90°.
	  pd / pu        put the pen down / lift it
	  pen:CHAR       draw with CHAR (default #)
	  fd:N  bk:N     move N cells forward / backward
	  lt:D  rt:D     turn D degrees left / right
	  move:X,Y       move to X,Y (fractions allowed)
	  home           move to 0,0 and head east
	Anything drawn outside of the canvas is lost.
	`)
	case "escape", "escapes", "text":
		pterm.Info.Println("Escapes")
		pterm.Println(`
	Blanks separate commands, so arguments use escapes:
	  \s   a blank
	  \n   a line break (for load)
	  \\   a backslash
	  load:@FILE loads the content of a file
	`)
	default:
		pterm.Info.Println("Commands")
		data := [][]string{
			{"Command", "Effect"},
			{"new[:W:H]", "start over with an empty canvas"},
			{"load:TEXT", "write text onto the canvas, from the top-left corner"},
			{"get:KEY", "show a cell"},
			{"set:KEY:CHAR", "set a cell or a range of cells"},
			{"put:CHAR", "set the cell at the cursor and advance the cursor"},
			{"del:KEY", "make a cell or a range of cells transparent"},
			{"fill:CHAR", "set every cell"},
			{"clear", "make every cell transparent"},
			{"shift:DX:DY", "move the content of the canvas"},
			{"slice[:RANGE]", "show part of the canvas"},
			{"line:X,Y:X,Y[:…]:CHAR", "draw a line through points"},
			{"goto:X,Y", "move the cursor"},
			{"print", "show the canvas"},
			{"info", "show canvas properties"},
			{"help[:TOPIC]", "topics are keys, ranges, turtle, escapes"},
			{"quit", "leave"},
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
}

package main

import (
	"fmt"

	"github.com/npillmayer/textcanvas/canvas"
	"github.com/npillmayer/textcanvas/cells"
	"github.com/npillmayer/textcanvas/coord"
	"github.com/thatisuday/commando"
)

type renderOptions struct {
	width, height int
	sparse        bool
	shift         coord.Option[coord.Point]
	slice         coord.Option[coord.Range]
}

func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	text := readTextFile(args["file"].Value)
	opts := renderOptions{
		width:  mustFlagInt(flags["width"], "width"),
		height: mustFlagInt(flags["height"], "height"),
		sparse: mustFlagBool(flags["sparse"], "sparse"),
	}
	var err error
	if opts.shift, err = parsePointFlag(mustFlagString(flags["shift"], "shift")); err != nil {
		fatalf("invalid --shift flag: %v", err)
	}
	if opts.slice, err = parseRangeFlag(mustFlagString(flags["slice"], "slice")); err != nil {
		fatalf("invalid --slice flag: %v", err)
	}
	c, err := render(text, opts)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(output(c, mustFlagBool(flags["frame"], "frame")))
}

// render loads text onto a canvas and applies shift, then slice. Without
// an explicit size the canvas fits the text.
func render(text string, opts renderOptions) (c *canvas.Canvas, err error) {
	var copts []canvas.Option
	if opts.sparse {
		copts = append(copts, canvas.WithSparseStore())
	}
	if opts.width > 0 || opts.height > 0 {
		w, h := canvas.TextSize(text)
		if opts.width > 0 {
			w = opts.width
		}
		if opts.height > 0 {
			h = opts.height
		}
		c, err = canvas.New(w, h, append(copts, canvas.WithPreload(text))...)
	} else {
		c, err = canvas.FromString(text, copts...)
	}
	if err != nil {
		return nil, err
	}
	if d, ok := opts.shift.Unwrap(); ok {
		c.Shift(d.X, d.Y)
	}
	if rg, ok := opts.slice.Unwrap(); ok {
		return c.Slice(rg)
	}
	return c, nil
}

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	text := readTextFile(args["file"].Value)
	c, err := canvas.FromString(text)
	if err != nil {
		fatalf("%v", err)
	}
	st := statistics(c)
	fmt.Printf("Size: %d×%d\n", c.Width(), c.Height())
	fmt.Printf("Cells: %d opaque, %d blank, %d transparent\n", st.opaque, st.blank, st.transparent)
	if st.wide > 0 {
		fmt.Printf("Wide characters: %d (rows will not line up in a terminal)\n", st.wide)
	}
}

type cellStats struct {
	opaque, blank, transparent, wide int
}

func statistics(c *canvas.Canvas) cellStats {
	var st cellStats
	for _, cell := range c.Cells() {
		switch {
		case cell.IsTransparent():
			st.transparent++
		case cell == cells.Blank:
			st.blank++
		default:
			st.opaque++
		}
		if cells.Width(cell) > 1 {
			st.wide++
		}
	}
	return st
}

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textcanvas/cells"
	"github.com/npillmayer/textcanvas/coord"
)

func newTestIntp(t *testing.T, w, h int) *Intp {
	t.Helper()
	intp := &Intp{}
	if err := intp.newCanvas(w, h); err != nil {
		t.Fatal(err)
	}
	return intp
}

func run(t *testing.T, intp *Intp, line string) (error, bool) {
	t.Helper()
	cmd, err := intp.parseCommand(line)
	if err != nil {
		t.Fatalf("cannot parse '%s': %v", line, err)
	}
	return intp.execute(cmd)
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcanvas")
	defer teardown()
	//
	intp := newTestIntp(t, 3, 3)
	cmd, err := intp.parseCommand("set:0,0:2,2:x  print BOGUS:1 quit:now")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.count != 4 {
		t.Fatalf("expected 4 operations, have %d", cmd.count)
	}
	expected := []Op{
		{code: SET, name: "set", arg: "0,0:2,2:x"},
		{code: PRINT, name: "print"},
		{code: HELP, name: "bogus"},
		{code: QUIT, name: "quit"},
	}
	for i, op := range expected {
		if cmd.op[i] != op {
			t.Errorf("operation %d: expected %+v, have %+v", i, op, cmd.op[i])
		}
	}
	if cmd.op[4].code != NOOP {
		t.Errorf("expected operation list to end after 4 entries")
	}
	if _, err = intp.parseCommand(strings.Repeat("print ", 33)); err == nil {
		t.Errorf("expected overlong command line to be rejected")
	}
}

func TestCanvasCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcanvas")
	defer teardown()
	//
	intp := newTestIntp(t, 5, 3)
	for i, x := range []struct {
		line   string
		expect string
	}{
		{`fill:.`, ".....\n.....\n....."},
		{`set:1,1:4,2:o`, ".....\n.ooo.\n....."},
		{`del:-1`, ".....\n.ooo.\n.... "},
		{`shift:1:0`, " ....\n .ooo\n ...."},
		{`clear load:ab\ncd`, "ab   \ncd   \n     "},
		{`goto:3,2 put:x put:y put:z`, "ab   \ncd   \n   xz"},
		{`clear line:0,0:4,2:*`, "**   \n  ** \n    *"},
		{`clear line:0,2:2,0:4,2:^`, "  ^  \n ^ ^ \n^   ^"},
		{`clear line:0,1:100000000000000,1:-`, "     \n-----\n     "},
		{`clear line:-100000000000000,-100000000000000:100000000000000,100000000000000:\\`, "\\    \n \\   \n  \\  "},
		{`new:2:1 fill:\s`, "  "},
	} {
		err, quit := run(t, intp, x.line)
		if err != nil || quit {
			t.Errorf("%d: '%s' failed: %v", i, x.line, err)
			continue
		}
		if s := intp.canvas.String(); s != x.expect {
			t.Errorf("%d: '%s': expected %q, have %q", i, x.line, x.expect, s)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcanvas")
	defer teardown()
	//
	intp := newTestIntp(t, 4, 2)
	for i, x := range []struct {
		line string
		kind coord.Kind
	}{
		{"get:9,9", coord.OutOfRange},
		{"get:-9223372036854775808", coord.OutOfRange},
		{"get:1.5", coord.TypeMismatch},
		{"get:0,0:2,2", coord.TypeMismatch},
		{"set:0:ab", coord.InvalidValue},
		{"slice:1,0:1,2", coord.InvalidArgument},
		{"new:0:3", coord.InvalidArgument},
	} {
		err, _ := run(t, intp, x.line)
		if coord.KindOf(err) != x.kind {
			t.Errorf("%d: '%s': expected error of kind %s, have %v", i, x.line, x.kind, err)
		}
	}
	for _, line := range []string{"set:0", "shift:1", "fd:x", "move:1", "line:0,0:x", "goto:3"} {
		if err, _ := run(t, intp, line); err == nil {
			t.Errorf("expected '%s' to fail", line)
		}
	}
	if intp.canvas.Width() != 4 {
		t.Errorf("expected failed 'new' to keep the canvas")
	}
}

func TestTurtleCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcanvas")
	defer teardown()
	//
	intp := newTestIntp(t, 4, 3)
	err, _ := run(t, intp, "pen:+ pd fd:3 rt:90 fd:2 rt:90 fd:3 rt:90 fd:2 pu")
	if err != nil {
		t.Fatal(err)
	}
	if s := intp.canvas.String(); s != "++++\n+  +\n++++" {
		t.Errorf("expected a box, have\n%s", s)
	}
	if intp.turtle.PenChar() != cells.Char('+') || intp.turtle.IsDown() {
		t.Errorf("unexpected pen state: %s", intp.turtle)
	}
	if err, _ = run(t, intp, "move:1.5,1 home"); err != nil {
		t.Fatal(err)
	}
	if x, y := intp.turtle.Position(); x != 0 || y != 0 {
		t.Errorf("expected turtle at home, is at (%g,%g)", x, y)
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcanvas")
	defer teardown()
	//
	name := filepath.Join(t.TempDir(), "art.txt")
	if err := os.WriteFile(name, []byte("/\\\n\\/\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	intp := newTestIntp(t, 2, 2)
	if err, _ := run(t, intp, "load:@"+name); err != nil {
		t.Fatal(err)
	}
	if s := intp.canvas.String(); s != "/\\\n\\/" {
		t.Errorf("expected file content on canvas, have %q", s)
	}
}

func TestQuit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcanvas")
	defer teardown()
	//
	intp := newTestIntp(t, 2, 2)
	err, quit := run(t, intp, "fill:a quit fill:b")
	if err != nil || !quit {
		t.Fatalf("expected quit, have err=%v quit=%v", err, quit)
	}
	if s := intp.canvas.String(); s != "aa\naa" {
		t.Errorf("expected commands after quit to be skipped, have %q", s)
	}
}

func TestFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcanvas")
	defer teardown()
	//
	intp := newTestIntp(t, 3, 2)
	if err, _ := run(t, intp, "load:abc\\nd"); err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"    +---+",
		"  0 |abc|",
		"  1 |d  |",
		"    +---+",
	}
	lines := frame(intp.canvas)
	if strings.Join(lines, "\n") != strings.Join(expected, "\n") {
		t.Errorf("unexpected frame:\n%s", strings.Join(lines, "\n"))
	}
}

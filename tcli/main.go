// Command tcli is an interactive shell for drawing on a text canvas.
//
// Commands have the form name:arg:arg and several of them may be given on
// one line, separated by blanks. Type "help" for a list.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/textcanvas"
	"github.com/npillmayer/textcanvas/canvas"
	"github.com/npillmayer/textcanvas/turtle"
	"github.com/pterm/pterm"
)

// tracer traces with key 'textcanvas'
func tracer() tracing.Trace {
	return tracing.Select("textcanvas")
}

// traceKeys are the trace keys of all packages of the module.
var traceKeys = []string{
	"textcanvas",
	"textcanvas.coord",
	"textcanvas.canvas",
	"textcanvas.turtle",
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	width := flag.Int("width", canvas.DefaultWidth, "Canvas width")
	height := flag.Int("height", canvas.DefaultHeight, "Canvas height")
	sparse := flag.Bool("sparse", false, "Use a sparse cell store")
	forTerm := flag.Bool("term", false, "Size the canvas to fit the terminal")
	preload := flag.String("file", "", "Text file to load onto the canvas")
	flag.Parse()
	pterm.Info.Println("Welcome to TextCanvas CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("tc > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, sparse: *sparse}
	//
	// create the canvas to draw on
	w, h := *width, *height
	if *forTerm {
		w, h = textcanvas.TerminalSize()
	}
	if err := intp.newCanvas(w, h); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	if *preload != "" {
		if err := intp.loadFile(*preload); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	if err := setTraceLevel(*tlevel); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// setTraceLevel sets the trace level of all tracers of the module.
func setTraceLevel(name string) error {
	for _, key := range traceKeys {
		switch name {
		case "Debug":
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		case "Info":
			tracing.Select(key).SetTraceLevel(tracing.LevelInfo)
		case "Error":
			tracing.Select(key).SetTraceLevel(tracing.LevelError)
		default:
			return fmt.Errorf("invalid trace level: %s", name)
		}
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	canvas *canvas.Canvas
	turtle *turtle.Turtle
	repl   *readline.Instance
	sparse bool
}

func (intp *Intp) String() string {
	if intp == nil || intp.canvas == nil {
		return "()"
	}
	x, y := intp.turtle.Position()
	pen := "up"
	if intp.turtle.IsDown() {
		pen = "down"
	}
	return fmt.Sprintf("( canvas=%d×%d cursor=%s ) ( turtle=(%g,%g) heading=%g pen=%s )",
		intp.canvas.Width(), intp.canvas.Height(), intp.canvas.Cursor(),
		x, y, intp.turtle.Heading(), pen)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	name string
	arg  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-codes QUIT to PENUP will not have arguments
	QUIT int = iota
	CLEAR
	PRINT
	INFO
	HOME
	PENDOWN
	PENUP
	// op-codes below may have arguments
	HELP
	NEW
	LOAD
	GET
	SET
	PUT
	DEL
	FILL
	SHIFT
	SLICE
	LINE
	GOTO
	PEN
	MOVE
	FORWARD
	BACKWARD
	LEFT
	RIGHT
)

var opMap = map[string]int{
	"quit":  QUIT,
	"clear": CLEAR,
	"print": PRINT,
	"info":  INFO,
	"home":  HOME,
	"pd":    PENDOWN,
	"pu":    PENUP,
	"help":  HELP,
	"new":   NEW,
	"load":  LOAD,
	"get":   GET,
	"set":   SET,
	"put":   PUT,
	"del":   DEL,
	"fill":  FILL,
	"shift": SHIFT,
	"slice": SLICE,
	"line":  LINE,
	"goto":  GOTO,
	"pen":   PEN,
	"move":  MOVE,
	"fd":    FORWARD,
	"bk":    BACKWARD,
	"lt":    LEFT,
	"rt":    RIGHT,
}

var errTooManyOps = errors.New("too many commands on one line")

// parseCommand splits a line into operations. Only the first colon of an
// operation separates its name from its argument; the argument is split
// further by the operation itself, as keys may contain colons.
func (intp *Intp) parseCommand(line string) (*Command, error) {
	command := &Command{}
	for i := range command.op {
		command.op[i].code = NOOP
	}
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, errTooManyOps
	}
	command.count = len(steps)
	for i, step := range steps {
		name, arg, _ := strings.Cut(step, ":")
		name = strings.ToLower(name)
		code, ok := opMap[name]
		if !ok {
			tracer().Infof("unknown command '%s'", name)
			code, arg = HELP, ""
		}
		command.op[i] = Op{code: code, name: name}
		if code < HELP {
			continue
		}
		command.op[i].arg = arg
		if arg == "" {
			tracer().Debugf("%s", name)
		} else {
			tracer().Debugf("%s: argument '%s'", name, arg)
		}
	}
	return command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	CLEAR:    clearOp,
	PRINT:    printOp,
	INFO:     infoOp,
	HOME:     homeOp,
	PENDOWN:  penDownOp,
	PENUP:    penUpOp,
	HELP:     helpOp,
	NEW:      newOp,
	LOAD:     loadOp,
	GET:      getOp,
	SET:      setOp,
	PUT:      putOp,
	DEL:      delOp,
	FILL:     fillOp,
	SHIFT:    shiftOp,
	SLICE:    sliceOp,
	LINE:     lineOp,
	GOTO:     gotoOp,
	PEN:      penOp,
	MOVE:     moveOp,
	FORWARD:  forwardOp,
	BACKWARD: backwardOp,
	LEFT:     leftOp,
	RIGHT:    rightOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Canvas Creation ---------------------------------------------------

func (intp *Intp) newCanvas(w, h int) (err error) {
	var opts []canvas.Option
	if intp.sparse {
		opts = append(opts, canvas.WithSparseStore())
	}
	c, err := canvas.New(w, h, opts...)
	if err != nil {
		return err
	}
	intp.setCanvas(c)
	return nil
}

func (intp *Intp) setCanvas(c *canvas.Canvas) {
	intp.canvas = c
	intp.turtle = turtle.New(c)
	tracer().Infof("canvas is %d×%d", c.Width(), c.Height())
}

func (intp *Intp) loadFile(name string) error {
	text, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	return intp.canvas.Load(string(text))
}

func (op *Op) noArg() bool {
	return op.arg == ""
}

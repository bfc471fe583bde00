// Package driver composes the lexer, parser and evaluator into the single
// entry point every front end (the CLI's run/repl commands, RUN()) calls
// through, and owns the built-ins that need to re-enter that pipeline or
// talk to a terminal: PRINT, INPUT, INPUT_INT, CLEAR/CLS and RUN.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	serrors "github.com/LaputanMachines/simple-script/internal/errors"
	"github.com/LaputanMachines/simple-script/internal/interp"
	"github.com/LaputanMachines/simple-script/internal/interp/builtins"
	"github.com/LaputanMachines/simple-script/internal/interp/evaluator"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
	"github.com/LaputanMachines/simple-script/internal/lexer"
	"github.com/LaputanMachines/simple-script/internal/parser"
	"github.com/LaputanMachines/simple-script/pkg/token"
)

// Driver lexes, parses and evaluates SimpleScript source against a single
// global Context, so that a REPL's successive lines share one environment.
// A RUN() built-in's nested program gets a fresh environment (RunIsolated)
// but shares the Driver's evaluator and call-depth budget.
type Driver struct {
	Global   *runtime.Context
	eval     *evaluator.Evaluator
	Stdout   io.Writer
	Stdin    *bufio.Reader
	MaxDepth int
	builtins map[string]evaluator.Builtin
}

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithIO overrides the streams PRINT/INPUT/INPUT_INT/CLEAR use. Defaults to
// os.Stdout/os.Stdin.
func WithIO(stdout io.Writer, stdin io.Reader) Option {
	return func(d *Driver) {
		d.Stdout = stdout
		d.Stdin = bufio.NewReader(stdin)
	}
}

// WithMaxRecursionDepth overrides the evaluator's call-depth guard.
func WithMaxRecursionDepth(depth int) Option {
	return func(d *Driver) { d.MaxDepth = depth }
}

// WithDisabledBuiltins removes built-ins by name from the handler registry;
// options run after SeedGlobals, and New then drops the matching global
// placeholders too — a sandboxed embedding can refuse to register RUN or
// INPUT, say.
func WithDisabledBuiltins(names []string) Option {
	return func(d *Driver) {
		for _, n := range names {
			delete(d.builtins, n)
		}
	}
}

// New builds a Driver with its own global Context, pre-seeded with every
// constant and built-in the language defines.
func New(opts ...Option) *Driver {
	d := &Driver{
		Stdout:   os.Stdout,
		Stdin:    bufio.NewReader(os.Stdin),
		MaxDepth: evaluator.DefaultMaxCallDepth,
		builtins: map[string]evaluator.Builtin{},
	}
	d.bind()
	for name, b := range builtins.Registry() {
		d.builtins[name] = b
	}

	d.Global = runtime.NewContext("<program>", "<stdin>", nil, nil)
	d.Global.Symbols = runtime.NewSymbolTable(nil)
	builtins.SeedGlobals(d.Global.Symbols)

	for _, opt := range opts {
		opt(d)
	}

	// Applying options (notably WithDisabledBuiltins) may have shrunk
	// d.builtins after SeedGlobals already installed a placeholder for
	// every name; drop those placeholders too so a disabled name is
	// truly unreachable, not just unregistered.
	for name := range builtins.Registry() {
		if _, ok := d.builtins[name]; !ok {
			d.Global.Symbols.Remove(name)
		}
	}
	for _, name := range builtins.IONames {
		if _, ok := d.builtins[name]; !ok {
			d.Global.Symbols.Remove(name)
		}
	}

	d.eval = evaluator.New(d.MaxDepth, d.builtins)
	return d
}

// Run lexes, parses and evaluates source (attributed to file in
// diagnostics) against the Driver's global Context, returning the
// program's final value.
func (d *Driver) Run(file, source string) (runtime.Value, error) {
	tokens, err := lexer.New(file, source).Tokenize()
	if err != nil {
		return nil, err
	}
	tree, err := parser.New(tokens).Parse()
	if err != nil {
		return nil, err
	}
	d.Global.File = file
	res := d.eval.Eval(tree, d.Global)
	if res.Err != nil {
		return nil, res.Err
	}
	if res.ReturnVal != nil {
		return res.ReturnVal, nil
	}
	return res.Value, nil
}

// RunIsolated evaluates source in a fresh global Context, sharing only the
// Driver's evaluator (and hence its call-depth budget). This backs RUN()'s
// "fresh program" semantics without letting a nested script see or clobber
// the caller's variables.
func (d *Driver) RunIsolated(file, source string) (runtime.Value, error) {
	tokens, err := lexer.New(file, source).Tokenize()
	if err != nil {
		return nil, err
	}
	tree, err := parser.New(tokens).Parse()
	if err != nil {
		return nil, err
	}
	ctx := runtime.NewContext("<program>", file, nil, nil)
	ctx.Symbols = runtime.NewSymbolTable(nil)
	builtins.SeedGlobals(ctx.Symbols)
	res := d.eval.Eval(tree, ctx)
	if res.Err != nil {
		return nil, res.Err
	}
	if res.ReturnVal != nil {
		return res.ReturnVal, nil
	}
	return res.Value, nil
}

// bind installs the I/O built-ins' handlers as methods closing over d —
// they need d.Stdout/d.Stdin/d.RunIsolated, so they can't be registered as
// a static map the way internal/interp/builtins.Registry is.
func (d *Driver) bind() {
	d.builtins["PRINT"] = evaluator.Builtin{ArgNames: []string{"value"}, Handler: d.print}
	d.builtins["INPUT"] = evaluator.Builtin{Handler: d.input}
	d.builtins["INPUT_INT"] = evaluator.Builtin{Handler: d.inputInt}
	d.builtins["CLEAR"] = evaluator.Builtin{Handler: d.clear}
	d.builtins["CLS"] = evaluator.Builtin{Handler: d.clear}
	d.builtins["RUN"] = evaluator.Builtin{ArgNames: []string{"file"}, Handler: d.run}
}

func argOf(ctx *runtime.Context, name string) runtime.Value {
	v, _ := ctx.Symbols.Get(name)
	return v
}

func (d *Driver) print(ctx *runtime.Context) *evaluator.RuntimeResult {
	fmt.Fprintln(d.Stdout, argOf(ctx, "value").String())
	return evaluator.Success(nullValue(ctx))
}

func (d *Driver) input(ctx *runtime.Context) *evaluator.RuntimeResult {
	line, _ := d.Stdin.ReadString('\n')
	out := interp.NewString(strings.TrimRight(line, "\r\n"))
	out.SetCtx(ctx)
	return evaluator.Success(out)
}

func (d *Driver) inputInt(ctx *runtime.Context) *evaluator.RuntimeResult {
	for {
		line, _ := d.Stdin.ReadString('\n')
		line = strings.TrimSpace(line)
		n, err := strconv.ParseInt(line, 10, 64)
		if err == nil {
			out := interp.NewInt(n)
			out.SetCtx(ctx)
			return evaluator.Success(out)
		}
		fmt.Fprintln(d.Stdout, "invalid number, try again:")
	}
}

func (d *Driver) clear(ctx *runtime.Context) *evaluator.RuntimeResult {
	fmt.Fprint(d.Stdout, "\033[2J\033[H")
	return evaluator.Success(nullValue(ctx))
}

func (d *Driver) run(ctx *runtime.Context) *evaluator.RuntimeResult {
	fileVal, ok := argOf(ctx, "file").(*interp.String)
	if !ok {
		return evaluator.Failure(runtimeError("RUN: argument must be a string path", ctx))
	}
	source, err := os.ReadFile(fileVal.Value)
	if err != nil {
		return evaluator.Failure(runtimeError(fmt.Sprintf("RUN: %s", err), ctx))
	}
	val, err := d.RunIsolated(fileVal.Value, string(source))
	if err != nil {
		return evaluator.Failure(runtimeError(fmt.Sprintf("RUN: %s", err), ctx))
	}
	val.SetCtx(ctx)
	return evaluator.Success(val)
}

func nullValue(ctx *runtime.Context) runtime.Value {
	v := interp.NewInt(0)
	v.SetCtx(ctx)
	return v
}

func runtimeError(detail string, ctx *runtime.Context) error {
	var frames serrors.StackTrace
	for c := ctx; c != nil; c = c.Parent {
		frames = append(frames, serrors.NewStackFrame(c.DisplayName, c.File, c.ParentEntryPos))
	}
	pos := token.Position{}
	if ctx.ParentEntryPos != nil {
		pos = *ctx.ParentEntryPos
	}
	return serrors.NewRuntimeError(detail, pos, pos, frames.Reverse())
}

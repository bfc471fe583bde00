// Package builtins implements the registration protocol's host-provided
// side for every I/O-free built-in: a declared parameter list plus a
// handler, keyed by name, in the shape internal/interp/evaluator.Builtin
// expects. I/O-touching built-ins (PRINT, INPUT, INPUT_INT, CLEAR, RUN) are
// registered separately by internal/driver, which owns the only thing that
// can re-enter lex/parse/eval or talk to a terminal — this package stays
// free of both, so it can be unit-tested without touching stdin/stdout.
package builtins

import (
	"math"

	serrors "github.com/LaputanMachines/simple-script/internal/errors"
	"github.com/LaputanMachines/simple-script/internal/interp"
	"github.com/LaputanMachines/simple-script/internal/interp/evaluator"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
	"github.com/LaputanMachines/simple-script/internal/jsonbridge"
	"github.com/LaputanMachines/simple-script/pkg/token"
	"github.com/tidwall/match"
)

// IONames lists the built-ins this package does not implement, left for
// internal/driver to register at startup. SeedGlobals installs a
// BuiltInFunction placeholder for the union of these and Registry's keys,
// regardless of which side supplies the handler.
var IONames = []string{"PRINT", "INPUT", "INPUT_INT", "CLEAR", "CLS", "RUN"}

// SeedGlobals installs the constant seed (NULL, TRUE, FALSE, MATH_PI) and a
// BuiltInFunction placeholder for every built-in name — both the ones this
// package implements and the I/O ones internal/driver implements — so a
// VarAccess of any built-in name resolves before the driver finishes
// wiring its own handlers.
func SeedGlobals(symbols *runtime.SymbolTable) {
	symbols.Set("NULL", interp.NewInt(0))
	symbols.Set("TRUE", interp.NewInt(1))
	symbols.Set("FALSE", interp.NewInt(0))
	symbols.Set("MATH_PI", interp.NewNumber(math.Pi, false))

	for name := range Registry() {
		symbols.Set(name, interp.NewBuiltInFunction(name))
	}
	for _, name := range IONames {
		symbols.Set(name, interp.NewBuiltInFunction(name))
	}
}

// Registry returns the evaluator.Builtin table for every I/O-free built-in.
func Registry() map[string]evaluator.Builtin {
	return map[string]evaluator.Builtin{
		"PRINT_RET": {ArgNames: []string{"value"}, Handler: printRet},
		"IS_NUM":    {ArgNames: []string{"value"}, Handler: isType("NUMBER")},
		"IS_STR":    {ArgNames: []string{"value"}, Handler: isType("STRING")},
		"IS_LIST":   {ArgNames: []string{"value"}, Handler: isType("LIST")},
		"IS_FUNC":   {ArgNames: []string{"value"}, Handler: isFunc},
		"APPEND":    {ArgNames: []string{"list", "value"}, Handler: appendFn},
		"POP":       {ArgNames: []string{"list", "index"}, Handler: popFn},
		"EXTEND":    {ArgNames: []string{"list1", "list2"}, Handler: extendFn},
		"LEN":       {ArgNames: []string{"list"}, Handler: lenFn},

		"JSON_ENCODE":        {ArgNames: []string{"value"}, Handler: jsonEncode(false)},
		"JSON_ENCODE_PRETTY": {ArgNames: []string{"value"}, Handler: jsonEncode(true)},
		"JSON_DECODE":        {ArgNames: []string{"text"}, Handler: jsonDecode},
		"STR_MATCH":          {ArgNames: []string{"pattern", "text"}, Handler: strMatch},
	}
}

func arg(ctx *runtime.Context, name string) runtime.Value {
	v, _ := ctx.Symbols.Get(name)
	return v
}

func boolNum(b bool) *interp.Number {
	if b {
		return interp.NewInt(1)
	}
	return interp.NewInt(0)
}

func fail(ctx *runtime.Context, detail string) *evaluator.RuntimeResult {
	return evaluator.Failure(runtimeError(detail, ctx))
}

func printRet(ctx *runtime.Context) *evaluator.RuntimeResult {
	v := arg(ctx, "value")
	out := interp.NewString(v.String())
	out.SetCtx(ctx)
	return evaluator.Success(out)
}

func isType(tag string) evaluator.BuiltinHandler {
	return func(ctx *runtime.Context) *evaluator.RuntimeResult {
		out := boolNum(arg(ctx, "value").Type() == tag)
		out.SetCtx(ctx)
		return evaluator.Success(out)
	}
}

func isFunc(ctx *runtime.Context) *evaluator.RuntimeResult {
	t := arg(ctx, "value").Type()
	out := boolNum(t == "FUNCTION" || t == "BUILTIN_FUNCTION")
	out.SetCtx(ctx)
	return evaluator.Success(out)
}

func appendFn(ctx *runtime.Context) *evaluator.RuntimeResult {
	list, ok := arg(ctx, "list").(*interp.List)
	if !ok {
		return fail(ctx, "APPEND: first argument must be a list")
	}
	list.Elements = append(list.Elements, arg(ctx, "value"))
	return evaluator.Success(list)
}

func popFn(ctx *runtime.Context) *evaluator.RuntimeResult {
	list, ok := arg(ctx, "list").(*interp.List)
	if !ok {
		return fail(ctx, "POP: first argument must be a list")
	}
	idx, ok := arg(ctx, "index").(*interp.Number)
	if !ok {
		return fail(ctx, "POP: index must be a number")
	}
	i := int(idx.Value)
	if i < 0 || i >= len(list.Elements) {
		return fail(ctx, "POP: index not found")
	}
	popped := list.Elements[i]
	list.Elements = append(list.Elements[:i], list.Elements[i+1:]...)
	return evaluator.Success(popped)
}

func extendFn(ctx *runtime.Context) *evaluator.RuntimeResult {
	list1, ok := arg(ctx, "list1").(*interp.List)
	if !ok {
		return fail(ctx, "EXTEND: first argument must be a list")
	}
	list2, ok := arg(ctx, "list2").(*interp.List)
	if !ok {
		return fail(ctx, "EXTEND: second argument must be a list")
	}
	list1.Elements = append(list1.Elements, list2.Elements...)
	return evaluator.Success(list1)
}

func lenFn(ctx *runtime.Context) *evaluator.RuntimeResult {
	list, ok := arg(ctx, "list").(*interp.List)
	if !ok {
		return fail(ctx, "LEN: argument must be a list")
	}
	out := interp.NewInt(int64(len(list.Elements)))
	out.SetCtx(ctx)
	return evaluator.Success(out)
}

func jsonEncode(pretty bool) evaluator.BuiltinHandler {
	return func(ctx *runtime.Context) *evaluator.RuntimeResult {
		v := arg(ctx, "value")
		var text string
		var err error
		if pretty {
			text, err = jsonbridge.EncodePretty(v)
		} else {
			text, err = jsonbridge.Encode(v)
		}
		if err != nil {
			return fail(ctx, err.Error())
		}
		out := interp.NewString(text)
		out.SetCtx(ctx)
		return evaluator.Success(out)
	}
}

func jsonDecode(ctx *runtime.Context) *evaluator.RuntimeResult {
	text, ok := arg(ctx, "text").(*interp.String)
	if !ok {
		return fail(ctx, "JSON_DECODE: argument must be a string")
	}
	v, err := jsonbridge.Decode(text.Value)
	if err != nil {
		return fail(ctx, err.Error())
	}
	v.SetCtx(ctx)
	return evaluator.Success(v)
}

func strMatch(ctx *runtime.Context) *evaluator.RuntimeResult {
	pattern, ok := arg(ctx, "pattern").(*interp.String)
	if !ok {
		return fail(ctx, "STR_MATCH: pattern must be a string")
	}
	text, ok := arg(ctx, "text").(*interp.String)
	if !ok {
		return fail(ctx, "STR_MATCH: text must be a string")
	}
	out := boolNum(match.Match(text.Value, pattern.Value))
	out.SetCtx(ctx)
	return evaluator.Success(out)
}

// runtimeError builds a RuntimeError spanning the call's entry position —
// a built-in handler only ever sees the fresh per-call Context, not the
// original call-site span, so the entry position doubles as both ends of
// the diagnostic (the same trade-off CallStack.Push makes for overflow).
func runtimeError(detail string, ctx *runtime.Context) error {
	pos := token.Position{}
	if ctx.ParentEntryPos != nil {
		pos = *ctx.ParentEntryPos
	}
	return serrors.NewRuntimeError(detail, pos, pos, traceback(ctx))
}

func traceback(ctx *runtime.Context) serrors.StackTrace {
	var frames serrors.StackTrace
	for c := ctx; c != nil; c = c.Parent {
		frames = append(frames, serrors.NewStackFrame(c.DisplayName, c.File, c.ParentEntryPos))
	}
	return frames.Reverse()
}

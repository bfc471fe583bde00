package evaluator

import (
	"fmt"

	"github.com/LaputanMachines/simple-script/internal/ast"
	"github.com/LaputanMachines/simple-script/internal/interp"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
)

func (e *Evaluator) visitFuncDef(n *ast.FuncDef, ctx *runtime.Context) *RuntimeResult {
	name := ""
	if n.Name != nil {
		name = n.Name.Text()
	}
	argNames := make([]string, len(n.ArgNames))
	for i, a := range n.ArgNames {
		argNames[i] = a.Text()
	}
	fn := interp.NewFunction(name, argNames, n.Body, n.ShouldAutoReturn, ctx)
	fn.SetPos(n.Start(), n.End())
	fn.SetCtx(ctx)
	if n.Name != nil {
		ctx.Symbols.Set(name, fn)
	}
	return Success(fn)
}

func (e *Evaluator) visitCall(n *ast.Call, ctx *runtime.Context) *RuntimeResult {
	res := &RuntimeResult{}
	calleeVal := res.Register(e.Eval(n.Callee, ctx))
	if res.ShouldReturn() {
		return res
	}
	callee := calleeVal.Copy()
	callee.SetPos(n.Start(), n.End())
	callee.SetCtx(ctx)

	args := make([]runtime.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v := res.Register(e.Eval(a, ctx))
		if res.ShouldReturn() {
			return res
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *interp.Function:
		return e.callFunction(fn, args, n, ctx)
	case *interp.BuiltInFunction:
		return e.callBuiltin(fn, args, n, ctx)
	default:
		return Failure(runtimeErrorf(fmt.Sprintf("%q is not callable", callee.Type()), n.Start(), n.End(), ctx))
	}
}

func (e *Evaluator) callFunction(fn *interp.Function, args []runtime.Value, n *ast.Call, ctx *runtime.Context) *RuntimeResult {
	if len(args) != len(fn.ArgNames) {
		return Failure(runtimeErrorf(
			fmt.Sprintf("%s: expected %d argument(s), got %d", fn.Name, len(fn.ArgNames), len(args)),
			n.Start(), n.End(), ctx,
		))
	}
	entryPos := n.Start()
	if err := e.calls.Push(ctx, entryPos); err != nil {
		return Failure(err)
	}
	defer e.calls.Pop()

	callCtx := runtime.NewContext(fn.Name, fn.Closure.File, fn.Closure, &entryPos)
	callCtx.Symbols = runtime.NewSymbolTable(fn.Closure.Symbols)
	for i, argName := range fn.ArgNames {
		args[i].SetCtx(callCtx)
		callCtx.Symbols.Set(argName, args[i])
	}

	res := &RuntimeResult{}
	bodyVal := res.Register(e.Eval(fn.Body, callCtx))
	if res.Err != nil {
		return res
	}

	if fn.ShouldAutoReturn {
		return Success(bodyVal)
	}
	if res.ReturnVal != nil {
		return Success(res.ReturnVal)
	}
	return Success(nullValue(ctx))
}

func (e *Evaluator) callBuiltin(fn *interp.BuiltInFunction, args []runtime.Value, n *ast.Call, ctx *runtime.Context) *RuntimeResult {
	builtin, ok := e.builtins[fn.Name]
	if !ok {
		return Failure(runtimeErrorf(fmt.Sprintf("built-in %q is not registered", fn.Name), n.Start(), n.End(), ctx))
	}
	if len(args) != len(builtin.ArgNames) {
		return Failure(runtimeErrorf(
			fmt.Sprintf("%s: expected %d argument(s), got %d", fn.Name, len(builtin.ArgNames), len(args)),
			n.Start(), n.End(), ctx,
		))
	}
	entryPos := n.Start()
	if err := e.calls.Push(ctx, entryPos); err != nil {
		return Failure(err)
	}
	defer e.calls.Pop()

	callCtx := runtime.NewContext(fn.Name, ctx.File, ctx, &entryPos)
	callCtx.Symbols = runtime.NewSymbolTable(nil)
	for i, argName := range builtin.ArgNames {
		args[i].SetCtx(callCtx)
		callCtx.Symbols.Set(argName, args[i])
	}
	return builtin.Handler(callCtx)
}

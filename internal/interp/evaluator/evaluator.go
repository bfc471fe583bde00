package evaluator

import (
	"github.com/LaputanMachines/simple-script/internal/ast"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
)

// BuiltinHandler is the host-provided body for a BuiltInFunction: given the
// Context created for the call (arguments already bound by parameter name
// into ctx.Symbols), it returns a RuntimeResult. This is the registration
// protocol's handler half; the builtins package supplies the concrete table
// of these keyed by name.
type BuiltinHandler func(ctx *runtime.Context) *RuntimeResult

// Builtin pairs a built-in's declared parameter names with its handler —
// the registration protocol's two required parts.
type Builtin struct {
	ArgNames []string
	Handler  BuiltinHandler
}

// Evaluator walks an ast.Node against a runtime.Context, producing a
// RuntimeResult. It holds no per-program state beyond the call-depth guard
// and the built-in registry, so a single Evaluator can be reused across
// nested RUN() re-entries.
type Evaluator struct {
	calls    *CallStack
	builtins map[string]Builtin
}

// New builds an Evaluator with the given maximum call depth (<= 0 uses
// DefaultMaxCallDepth) and built-in registry.
func New(maxCallDepth int, builtins map[string]Builtin) *Evaluator {
	if builtins == nil {
		builtins = map[string]Builtin{}
	}
	return &Evaluator{calls: NewCallStack(maxCallDepth), builtins: builtins}
}

// Eval dispatches node to its visit method. Every concrete ast.Node the
// parser can produce is handled; an unrecognized node is a programming
// error, not a user-facing one, so it panics rather than returning a
// RuntimeResult error.
func (e *Evaluator) Eval(node ast.Node, ctx *runtime.Context) *RuntimeResult {
	switch n := node.(type) {
	case *ast.Statements:
		return e.visitStatements(n, ctx)
	case *ast.NumberLit:
		return e.visitNumberLit(n, ctx)
	case *ast.StringLit:
		return e.visitStringLit(n, ctx)
	case *ast.ListLit:
		return e.visitListLit(n, ctx)
	case *ast.VarAccess:
		return e.visitVarAccess(n, ctx)
	case *ast.VarAssign:
		return e.visitVarAssign(n, ctx)
	case *ast.BinOp:
		return e.visitBinOp(n, ctx)
	case *ast.UnaryOp:
		return e.visitUnaryOp(n, ctx)
	case *ast.If:
		return e.visitIf(n, ctx)
	case *ast.For:
		return e.visitFor(n, ctx)
	case *ast.While:
		return e.visitWhile(n, ctx)
	case *ast.FuncDef:
		return e.visitFuncDef(n, ctx)
	case *ast.Call:
		return e.visitCall(n, ctx)
	case *ast.Return:
		return e.visitReturn(n, ctx)
	case *ast.Continue:
		return SuccessContinue()
	case *ast.Break:
		return SuccessBreak()
	default:
		panic("evaluator: unhandled ast node type")
	}
}

package evaluator

import (
	"github.com/LaputanMachines/simple-script/internal/ast"
	"github.com/LaputanMachines/simple-script/internal/interp"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
	"github.com/LaputanMachines/simple-script/pkg/token"
)

func (e *Evaluator) visitStatements(n *ast.Statements, ctx *runtime.Context) *RuntimeResult {
	res := &RuntimeResult{}
	var last runtime.Value
	for _, stmt := range n.List {
		last = res.Register(e.Eval(stmt, ctx))
		if res.ShouldReturn() {
			return res
		}
	}
	return Success(last)
}

func (e *Evaluator) visitNumberLit(n *ast.NumberLit, ctx *runtime.Context) *RuntimeResult {
	var v *interp.Number
	if n.Token.Kind == token.INT {
		v = interp.NewNumber(float64(n.Token.IntValue()), true)
	} else {
		v = interp.NewNumber(n.Token.FloatValue(), false)
	}
	v.SetPos(n.Start(), n.End())
	v.SetCtx(ctx)
	return Success(v)
}

func (e *Evaluator) visitStringLit(n *ast.StringLit, ctx *runtime.Context) *RuntimeResult {
	v := interp.NewString(n.Token.Text())
	v.SetPos(n.Start(), n.End())
	v.SetCtx(ctx)
	return Success(v)
}

func (e *Evaluator) visitListLit(n *ast.ListLit, ctx *runtime.Context) *RuntimeResult {
	res := &RuntimeResult{}
	elements := make([]runtime.Value, 0, len(n.Elements))
	for _, el := range n.Elements {
		v := res.Register(e.Eval(el, ctx))
		if res.ShouldReturn() {
			return res
		}
		elements = append(elements, v)
	}
	v := interp.NewList(elements)
	v.SetPos(n.Start(), n.End())
	v.SetCtx(ctx)
	return Success(v)
}

func (e *Evaluator) visitVarAccess(n *ast.VarAccess, ctx *runtime.Context) *RuntimeResult {
	name := n.Name.Text()
	val, ok := ctx.Symbols.Get(name)
	if !ok {
		return Failure(runtimeErrorf("'"+name+"' is not defined", n.Start(), n.End(), ctx))
	}
	// Lists are a reference type: APPEND/POP/EXTEND mutate the List a
	// variable is bound to, so accessing it must hand out the same *List,
	// not a copy with its own Elements backing array.
	if _, isList := val.(*interp.List); !isList {
		val = val.Copy()
	}
	val.SetPos(n.Start(), n.End())
	val.SetCtx(ctx)
	return Success(val)
}

func (e *Evaluator) visitVarAssign(n *ast.VarAssign, ctx *runtime.Context) *RuntimeResult {
	res := &RuntimeResult{}
	val := res.Register(e.Eval(n.Value, ctx))
	if res.ShouldReturn() {
		return res
	}
	ctx.Symbols.Set(n.Name.Text(), val)
	return Success(val)
}

func (e *Evaluator) visitBinOp(n *ast.BinOp, ctx *runtime.Context) *RuntimeResult {
	res := &RuntimeResult{}
	left := res.Register(e.Eval(n.Left, ctx))
	if res.ShouldReturn() {
		return res
	}
	right := res.Register(e.Eval(n.Right, ctx))
	if res.ShouldReturn() {
		return res
	}
	out, err := applyBinOp(n.Op, left, right)
	if err != nil {
		return Failure(err)
	}
	out.SetPos(n.Start(), n.End())
	return Success(out)
}

func (e *Evaluator) visitUnaryOp(n *ast.UnaryOp, ctx *runtime.Context) *RuntimeResult {
	res := &RuntimeResult{}
	operand := res.Register(e.Eval(n.Operand, ctx))
	if res.ShouldReturn() {
		return res
	}
	out, err := applyUnaryOp(n.Op, operand)
	if err != nil {
		return Failure(err)
	}
	out.SetPos(n.Start(), n.End())
	return Success(out)
}

package evaluator

import (
	"github.com/LaputanMachines/simple-script/internal/ast"
	"github.com/LaputanMachines/simple-script/internal/interp"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
)

// nullValue is the Number 0 the evaluator yields wherever the language
// specifies "null" — there is no distinct null value in the model, the
// same choice the original interpreter's NUMBER(0) sentinel made.
func nullValue(ctx *runtime.Context) runtime.Value {
	v := interp.NewInt(0)
	v.SetCtx(ctx)
	return v
}

func (e *Evaluator) visitIf(n *ast.If, ctx *runtime.Context) *RuntimeResult {
	res := &RuntimeResult{}
	for _, c := range n.Cases {
		cond := res.Register(e.Eval(c.Condition, ctx))
		if res.ShouldReturn() {
			return res
		}
		if cond.IsTrue() {
			val := res.Register(e.Eval(c.Body, ctx))
			if res.ShouldReturn() {
				return res
			}
			if c.IsMultiline {
				return Success(nullValue(ctx))
			}
			return Success(val)
		}
	}
	if n.Else != nil {
		val := res.Register(e.Eval(n.Else.Body, ctx))
		if res.ShouldReturn() {
			return res
		}
		if n.Else.IsMultiline {
			return Success(nullValue(ctx))
		}
		return Success(val)
	}
	return Success(nullValue(ctx))
}

func (e *Evaluator) visitFor(n *ast.For, ctx *runtime.Context) *RuntimeResult {
	res := &RuntimeResult{}
	startVal := res.Register(e.Eval(n.StartExpr, ctx))
	if res.ShouldReturn() {
		return res
	}
	endVal := res.Register(e.Eval(n.EndExpr, ctx))
	if res.ShouldReturn() {
		return res
	}
	start, ok := startVal.(*interp.Number)
	if !ok {
		return Failure(runtimeErrorf("FOR start value must be a number", n.StartExpr.Start(), n.StartExpr.End(), ctx))
	}
	end, ok := endVal.(*interp.Number)
	if !ok {
		return Failure(runtimeErrorf("FOR end value must be a number", n.EndExpr.Start(), n.EndExpr.End(), ctx))
	}
	step := 1.0
	if n.Step != nil {
		stepVal := res.Register(e.Eval(n.Step, ctx))
		if res.ShouldReturn() {
			return res
		}
		s, ok := stepVal.(*interp.Number)
		if !ok {
			return Failure(runtimeErrorf("FOR step value must be a number", n.Step.Start(), n.Step.End(), ctx))
		}
		step = s.Value
	}

	var elements []runtime.Value
	i := start.Value
	condition := func() bool {
		if step >= 0 {
			return i < end.Value
		}
		return i > end.Value
	}
	for condition() {
		iter := interp.NewNumber(i, true)
		iter.SetCtx(ctx)
		ctx.Symbols.Set(n.VarName.Text(), iter)
		i += step

		val := res.Register(e.Eval(n.Body, ctx))
		if res.Err != nil {
			return res
		}
		if res.Continue {
			res.Continue = false
			continue
		}
		if res.Break {
			res.Break = false
			break
		}
		if res.ReturnVal != nil {
			return res
		}
		if !n.IsMultiline {
			elements = append(elements, val)
		}
	}
	if n.IsMultiline {
		return Success(nullValue(ctx))
	}
	list := interp.NewList(elements)
	list.SetPos(n.Start(), n.End())
	list.SetCtx(ctx)
	return Success(list)
}

func (e *Evaluator) visitWhile(n *ast.While, ctx *runtime.Context) *RuntimeResult {
	res := &RuntimeResult{}
	var elements []runtime.Value
	for {
		cond := res.Register(e.Eval(n.Condition, ctx))
		if res.ShouldReturn() {
			return res
		}
		if !cond.IsTrue() {
			break
		}
		val := res.Register(e.Eval(n.Body, ctx))
		if res.Err != nil {
			return res
		}
		if res.Continue {
			res.Continue = false
			continue
		}
		if res.Break {
			res.Break = false
			break
		}
		if res.ReturnVal != nil {
			return res
		}
		if !n.IsMultiline {
			elements = append(elements, val)
		}
	}
	if n.IsMultiline {
		return Success(nullValue(ctx))
	}
	list := interp.NewList(elements)
	list.SetPos(n.Start(), n.End())
	list.SetCtx(ctx)
	return Success(list)
}

func (e *Evaluator) visitReturn(n *ast.Return, ctx *runtime.Context) *RuntimeResult {
	if n.Value == nil {
		return SuccessReturn(nullValue(ctx))
	}
	res := &RuntimeResult{}
	val := res.Register(e.Eval(n.Value, ctx))
	if res.Err != nil {
		return res
	}
	return SuccessReturn(val)
}

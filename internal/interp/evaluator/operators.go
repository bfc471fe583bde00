package evaluator

import (
	serrors "github.com/LaputanMachines/simple-script/internal/errors"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
	"github.com/LaputanMachines/simple-script/pkg/token"
)

// Each operator below is dispatched by asserting the concrete value against
// the single-method interface its contract requires, rather than a type
// switch per value kind — a value that doesn't implement the interface
// simply falls through to illegalOp, the same "exhaustive matching over a
// closed tag set" shape the value model specifies, minus the boilerplate of
// a no-op stub on every type that doesn't support an operator.

type adder interface {
	AddTo(runtime.Value) (runtime.Value, error)
}
type subtractor interface {
	SubtractBy(runtime.Value) (runtime.Value, error)
}
type multiplier interface {
	MultiplyBy(runtime.Value) (runtime.Value, error)
}
type cleanDivider interface {
	DivideBy(runtime.Value, bool) (runtime.Value, error)
}
type divider interface {
	DivideBy(runtime.Value) (runtime.Value, error)
}
type modulor interface {
	ModuloBy(runtime.Value) (runtime.Value, error)
}
type power interface {
	PowerBy(runtime.Value) (runtime.Value, error)
}
type comparer interface {
	Compare(string, runtime.Value) (runtime.Value, error)
}
type ander interface {
	AndedBy(runtime.Value) (runtime.Value, error)
}
type orer interface {
	OredBy(runtime.Value) (runtime.Value, error)
}
type notter interface {
	Notted() (runtime.Value, error)
}
type negater interface {
	Negated() (runtime.Value, error)
}

// applyBinOp maps a BinOp's operator token onto the corresponding method on
// the left operand, the per-type dispatch table described for the value
// model: each binary token names exactly one method, and an operand that
// doesn't implement it is an illegal operation rather than a silent no-op.
func applyBinOp(op token.Token, left, right runtime.Value) (runtime.Value, error) {
	switch op.Kind {
	case token.PLUS:
		if a, ok := left.(adder); ok {
			return a.AddTo(right)
		}
	case token.MINUS:
		if s, ok := left.(subtractor); ok {
			return s.SubtractBy(right)
		}
	case token.MUL:
		if m, ok := left.(multiplier); ok {
			return m.MultiplyBy(right)
		}
	case token.DIV:
		if d, ok := left.(cleanDivider); ok {
			return d.DivideBy(right, false)
		}
		if d, ok := left.(divider); ok {
			return d.DivideBy(right)
		}
	case token.CLEAN_DIV:
		if d, ok := left.(cleanDivider); ok {
			return d.DivideBy(right, true)
		}
	case token.MODULO:
		if m, ok := left.(modulor); ok {
			return m.ModuloBy(right)
		}
	case token.POWER:
		if p, ok := left.(power); ok {
			return p.PowerBy(right)
		}
	case token.EE, token.NE, token.LT, token.GT, token.LTE, token.GTE:
		if c, ok := left.(comparer); ok {
			return c.Compare(op.Kind.String(), right)
		}
	case token.KEYWORD:
		switch {
		case op.Matches(token.KEYWORD, "AND"):
			if a, ok := left.(ander); ok {
				return a.AndedBy(right)
			}
		case op.Matches(token.KEYWORD, "OR"):
			if o, ok := left.(orer); ok {
				return o.OredBy(right)
			}
		}
	}
	return nil, illegalOp(left, right)
}

// applyUnaryOp dispatches MINUS to Negated and the NOT keyword to Notted.
func applyUnaryOp(op token.Token, operand runtime.Value) (runtime.Value, error) {
	switch {
	case op.Kind == token.MINUS:
		if n, ok := operand.(negater); ok {
			return n.Negated()
		}
	case op.Matches(token.KEYWORD, "NOT"):
		if n, ok := operand.(notter); ok {
			return n.Notted()
		}
	}
	return nil, illegalOp(operand, nil)
}

// illegalOp reports an unsupported operator/operand combination, carrying
// both operand spans and the traceback active at the left (or sole)
// operand's Context.
func illegalOp(left, right runtime.Value) error {
	end := left.End()
	if right != nil {
		end = right.End()
	}
	return serrors.NewRuntimeError("illegal operation performed", left.Start(), end, tracebackFor(left.Ctx()))
}

package interp

import (
	"math"
	"strconv"

	serrors "github.com/LaputanMachines/simple-script/internal/errors"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
)

// Number unifies SimpleScript's integer and float literals into a single
// float64 payload, the same unification the value model's comparisons and
// arithmetic are specified against. IsInt tracks whether the value was
// produced from an integer-shaped computation, purely for String
// rendering — arithmetic itself never branches on it.
type Number struct {
	runtime.Base
	Value float64
	IsInt bool
}

// NewNumber builds an untethered Number (no position/Context yet).
func NewNumber(v float64, isInt bool) *Number {
	return &Number{Value: v, IsInt: isInt}
}

// NewInt is a convenience constructor for integer-valued Numbers.
func NewInt(v int64) *Number { return NewNumber(float64(v), true) }

func (n *Number) Type() string { return "NUMBER" }

func (n *Number) String() string {
	if n.IsInt {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Number) IsTrue() bool { return n.Value != 0 }

func (n *Number) Copy() runtime.Value {
	cp := &Number{Value: n.Value, IsInt: n.IsInt}
	cp.SetPos(n.Start(), n.End())
	cp.SetCtx(n.Ctx())
	return cp
}

func (n *Number) result(v float64, isInt bool) runtime.Value {
	out := NewNumber(v, isInt)
	out.SetCtx(n.Ctx())
	return out
}

func (n *Number) AddTo(other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, n.illegalOp(other)
	}
	return n.result(n.Value+o.Value, n.IsInt && o.IsInt), nil
}

func (n *Number) SubtractBy(other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, n.illegalOp(other)
	}
	return n.result(n.Value-o.Value, n.IsInt && o.IsInt), nil
}

func (n *Number) MultiplyBy(other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, n.illegalOp(other)
	}
	return n.result(n.Value*o.Value, n.IsInt && o.IsInt), nil
}

// DivideBy implements both DIV (clean=false, float quotient) and
// CLEAN_DIV (clean=true, floored integer quotient) — the spec keeps these
// as one contract distinguished by a flag, the same shape the original
// tokenizer's divide_by(other, clean=...) used.
func (n *Number) DivideBy(other runtime.Value, clean bool) (runtime.Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, n.illegalOp(other)
	}
	if o.Value == 0 {
		return nil, n.runtimeErr("division by zero", other)
	}
	if clean {
		return n.result(math.Floor(n.Value/o.Value), true), nil
	}
	return n.result(n.Value/o.Value, n.IsInt && o.IsInt && math.Mod(n.Value, o.Value) == 0), nil
}

func (n *Number) ModuloBy(other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, n.illegalOp(other)
	}
	if o.Value == 0 {
		return nil, n.runtimeErr("division by zero", other)
	}
	return n.result(math.Mod(n.Value, o.Value), n.IsInt && o.IsInt), nil
}

func (n *Number) PowerBy(other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, n.illegalOp(other)
	}
	return n.result(math.Pow(n.Value, o.Value), n.IsInt && o.IsInt && o.Value >= 0), nil
}

// Compare implements EE/NE/LT/GT/LTE/GTE, returning Number 1/0.
func (n *Number) Compare(op string, other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, n.illegalOp(other)
	}
	var truth bool
	switch op {
	case "EE":
		truth = n.Value == o.Value
	case "NE":
		truth = n.Value != o.Value
	case "LT":
		truth = n.Value < o.Value
	case "GT":
		truth = n.Value > o.Value
	case "LTE":
		truth = n.Value <= o.Value
	case "GTE":
		truth = n.Value >= o.Value
	default:
		return nil, n.illegalOp(other)
	}
	return n.result(boolNum(truth), true), nil
}

func (n *Number) AndedBy(other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, n.illegalOp(other)
	}
	return n.result(boolNum(n.IsTrue() && o.IsTrue()), true), nil
}

func (n *Number) OredBy(other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, n.illegalOp(other)
	}
	return n.result(boolNum(n.IsTrue() || o.IsTrue()), true), nil
}

// Notted implements unary NOT: truthy collapses to 0, falsy to 1.
func (n *Number) Notted() (runtime.Value, error) {
	return n.result(boolNum(!n.IsTrue()), true), nil
}

// Negated implements unary MINUS: multiplication by -1, the same
// reduction the original tokenizer's unary-op visitor performed.
func (n *Number) Negated() (runtime.Value, error) {
	return n.result(-n.Value, n.IsInt), nil
}

func boolNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (n *Number) illegalOp(other runtime.Value) error {
	return illegalOperation(n, other)
}

func (n *Number) runtimeErr(detail string, other runtime.Value) error {
	end := n.End()
	if other != nil {
		end = other.End()
	}
	return serrors.NewRuntimeError(detail, n.Start(), end, traceback(n.Ctx()))
}

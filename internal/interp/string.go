package interp

import (
	"strings"

	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
)

// String is SimpleScript's immutable text value.
type String struct {
	runtime.Base
	Value string
}

func NewString(v string) *String { return &String{Value: v} }

func (s *String) Type() string { return "STRING" }
func (s *String) String() string { return s.Value }
func (s *String) IsTrue() bool  { return len(s.Value) > 0 }

func (s *String) Copy() runtime.Value {
	cp := &String{Value: s.Value}
	cp.SetPos(s.Start(), s.End())
	cp.SetCtx(s.Ctx())
	return cp
}

// AddTo concatenates two Strings.
func (s *String) AddTo(other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*String)
	if !ok {
		return nil, illegalOperation(s, other)
	}
	out := NewString(s.Value + o.Value)
	out.SetCtx(s.Ctx())
	return out, nil
}

// MultiplyBy repeats the String by a non-negative integer Number.
func (s *String) MultiplyBy(other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(s, other)
	}
	n := int(o.Value)
	if n < 0 {
		n = 0
	}
	out := NewString(strings.Repeat(s.Value, n))
	out.SetCtx(s.Ctx())
	return out, nil
}

// Compare implements EE/NE on Strings by value; ordering comparisons fall
// back to lexicographic order, matching Go's native string ordering.
func (s *String) Compare(op string, other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*String)
	if !ok {
		return nil, illegalOperation(s, other)
	}
	var truth bool
	switch op {
	case "EE":
		truth = s.Value == o.Value
	case "NE":
		truth = s.Value != o.Value
	case "LT":
		truth = s.Value < o.Value
	case "GT":
		truth = s.Value > o.Value
	case "LTE":
		truth = s.Value <= o.Value
	case "GTE":
		truth = s.Value >= o.Value
	default:
		return nil, illegalOperation(s, other)
	}
	out := NewNumber(boolNum(truth), true)
	out.SetCtx(s.Ctx())
	return out, nil
}

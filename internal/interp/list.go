package interp

import (
	"strings"

	serrors "github.com/LaputanMachines/simple-script/internal/errors"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
)

// List is an ordered, mutable sequence of Values. Builtins like APPEND and
// POP mutate Elements in place; the binary operators below instead follow
// the value model's copy-on-operate contract (AddTo/SubtractBy/MultiplyBy
// all return a new List, leaving the receiver untouched).
type List struct {
	runtime.Base
	Elements []runtime.Value
}

func NewList(elements []runtime.Value) *List {
	return &List{Elements: elements}
}

func (l *List) Type() string { return "LIST" }

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) IsTrue() bool { return true }

func (l *List) Copy() runtime.Value {
	elems := make([]runtime.Value, len(l.Elements))
	copy(elems, l.Elements)
	cp := &List{Elements: elems}
	cp.SetPos(l.Start(), l.End())
	cp.SetCtx(l.Ctx())
	return cp
}

// AddTo appends other as a single new element, returning a new List.
func (l *List) AddTo(other runtime.Value) (runtime.Value, error) {
	cp := l.Copy().(*List)
	cp.Elements = append(cp.Elements, other)
	return cp, nil
}

// SubtractBy removes the element at the index given by a Number, returning
// a new List with that element gone.
func (l *List) SubtractBy(other runtime.Value) (runtime.Value, error) {
	idx, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(l, other)
	}
	cp := l.Copy().(*List)
	i := int(idx.Value)
	if i < 0 || i >= len(cp.Elements) {
		return nil, l.indexError(other)
	}
	cp.Elements = append(cp.Elements[:i], cp.Elements[i+1:]...)
	return cp, nil
}

// MultiplyBy concatenates another List's elements onto a copy of this one.
func (l *List) MultiplyBy(other runtime.Value) (runtime.Value, error) {
	o, ok := other.(*List)
	if !ok {
		return nil, illegalOperation(l, other)
	}
	cp := l.Copy().(*List)
	cp.Elements = append(cp.Elements, o.Elements...)
	return cp, nil
}

// DivideBy indexes the List by a Number, returning the element directly
// (not a copy — matches the original tokenizer's divide_by, which hands
// back the stored element reference).
func (l *List) DivideBy(other runtime.Value) (runtime.Value, error) {
	idx, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(l, other)
	}
	i := int(idx.Value)
	if i < 0 || i >= len(l.Elements) {
		return nil, l.indexError(other)
	}
	return l.Elements[i], nil
}

// indexError reports an out-of-range List index — "index not found",
// matching the original tokenizer's List.subtract_by/divide_by wording,
// distinct from the generic illegal-operation message for a type mismatch.
func (l *List) indexError(other runtime.Value) error {
	return serrors.NewRuntimeError("index not found", l.Start(), other.End(), traceback(l.Ctx()))
}

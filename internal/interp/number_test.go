package interp

import "testing"

func TestNumberArithmetic(t *testing.T) {
	a, b := NewInt(5), NewInt(2)
	sum, err := a.AddTo(b)
	if err != nil || sum.String() != "7" {
		t.Fatalf("got %v, %v", sum, err)
	}
	diff, _ := a.SubtractBy(b)
	if diff.String() != "3" {
		t.Fatalf("got %v", diff)
	}
	prod, _ := a.MultiplyBy(b)
	if prod.String() != "10" {
		t.Fatalf("got %v", prod)
	}
}

func TestNumberCleanDivFloors(t *testing.T) {
	a, b := NewInt(7), NewInt(2)
	q, err := a.DivideBy(b, true)
	if err != nil || q.String() != "3" {
		t.Fatalf("got %v, %v", q, err)
	}
}

func TestNumberDivByZeroIsRuntimeError(t *testing.T) {
	a, b := NewInt(1), NewInt(0)
	if _, err := a.DivideBy(b, false); err == nil {
		t.Fatalf("expected division by zero to error")
	}
	if _, err := a.ModuloBy(b); err == nil {
		t.Fatalf("expected modulo by zero to error")
	}
}

func TestNumberCompareProducesNumberOneOrZero(t *testing.T) {
	a, b := NewInt(3), NewInt(3)
	eq, err := a.Compare("EE", b)
	if err != nil || eq.String() != "1" {
		t.Fatalf("got %v, %v", eq, err)
	}
	lt, _ := a.Compare("LT", b)
	if lt.String() != "0" {
		t.Fatalf("got %v", lt)
	}
}

func TestNumberAndedOredNotted(t *testing.T) {
	truthy, falsy := NewInt(1), NewInt(0)
	and, _ := truthy.AndedBy(falsy)
	if and.String() != "0" {
		t.Fatalf("got %v", and)
	}
	or, _ := truthy.OredBy(falsy)
	if or.String() != "1" {
		t.Fatalf("got %v", or)
	}
	not, _ := truthy.Notted()
	if not.String() != "0" {
		t.Fatalf("got %v", not)
	}
}

func TestNumberNegated(t *testing.T) {
	n := NewInt(5)
	neg, err := n.Negated()
	if err != nil || neg.String() != "-5" {
		t.Fatalf("got %v, %v", neg, err)
	}
}

func TestNumberIllegalOperationAgainstOtherType(t *testing.T) {
	n := NewInt(1)
	s := NewString("x")
	if _, err := n.AddTo(s); err == nil {
		t.Fatalf("expected illegal operation error")
	}
}

func TestNumberTruthiness(t *testing.T) {
	if NewInt(0).IsTrue() {
		t.Fatalf("0 must be falsy")
	}
	if !NewInt(1).IsTrue() {
		t.Fatalf("nonzero must be truthy")
	}
}

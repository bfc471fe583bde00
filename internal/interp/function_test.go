package interp

import "testing"

func TestFunctionDefaultsToAnonymousName(t *testing.T) {
	fn := NewFunction("", nil, nil, true, nil)
	if fn.Name != "<anonymous>" {
		t.Fatalf("got %q", fn.Name)
	}
}

func TestFunctionIsAlwaysTruthy(t *testing.T) {
	if !NewFunction("f", nil, nil, true, nil).IsTrue() {
		t.Fatalf("functions must be truthy")
	}
}

func TestFunctionCopyPreservesClosure(t *testing.T) {
	fn := NewFunction("f", []string{"x"}, nil, true, nil)
	cp := fn.Copy().(*Function)
	if cp.Name != "f" || len(cp.ArgNames) != 1 {
		t.Fatalf("got %+v", cp)
	}
}

func TestBuiltInFunctionDisplaysName(t *testing.T) {
	b := NewBuiltInFunction("PRINT")
	if b.String() != "<built-in function PRINT>" {
		t.Fatalf("got %q", b.String())
	}
}

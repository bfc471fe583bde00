package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunEvaluatesProgram(t *testing.T) {
	d := New()
	val, err := d.Run("<test>", "VAR x = 2 + 3\nx * x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.String() != "25" {
		t.Fatalf("got %v", val)
	}
}

func TestAppendMutatesListThroughSource(t *testing.T) {
	d := New()
	val, err := d.Run("<test>", "VAR L = [1, 2, 3]\nAPPEND(L, 4)\nLEN(L)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.String() != "4" {
		t.Fatalf("got %v, want LEN(L) == 4 after APPEND", val)
	}
}

func TestPopRemovesThroughSourceAndIsVisibleOnNextAccess(t *testing.T) {
	d := New()
	val, err := d.Run("<test>", "VAR L = [1, 2, 3]\nPOP(L, 0)\nLEN(L)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.String() != "2" {
		t.Fatalf("got %v, want LEN(L) == 2 after POP", val)
	}
}

func TestExtendMutatesThroughSource(t *testing.T) {
	d := New()
	val, err := d.Run("<test>", "VAR A = [1, 2]\nVAR B = [3, 4]\nEXTEND(A, B)\nLEN(A)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.String() != "4" {
		t.Fatalf("got %v, want LEN(A) == 4 after EXTEND", val)
	}
}

func TestGlobalContextPersistsAcrossRuns(t *testing.T) {
	d := New()
	if _, err := d.Run("<test>", "VAR x = 10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, err := d.Run("<test>", "x + 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.String() != "11" {
		t.Fatalf("got %v", val)
	}
}

func TestPrintWritesToConfiguredStdout(t *testing.T) {
	var buf bytes.Buffer
	d := New(WithIO(&buf, strings.NewReader("")))
	if _, err := d.Run("<test>", `PRINT("hello")`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestInputReadsFromConfiguredStdin(t *testing.T) {
	var buf bytes.Buffer
	d := New(WithIO(&buf, strings.NewReader("Ada\n")))
	val, err := d.Run("<test>", `INPUT()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.String() != "Ada" {
		t.Fatalf("got %q", val.String())
	}
}

func TestInputIntRetriesOnInvalidInput(t *testing.T) {
	var buf bytes.Buffer
	d := New(WithIO(&buf, strings.NewReader("abc\n7\n")))
	val, err := d.Run("<test>", `INPUT_INT()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.String() != "7" {
		t.Fatalf("got %q", val.String())
	}
}

func TestRunBuiltinReenterseIsolatedProgram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.ss")
	if err := os.WriteFile(path, []byte("VAR x = 41\nx + 1"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	d := New()
	val, err := d.Run("<test>", `RUN("`+strings.ReplaceAll(path, `\`, `\\`)+`")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.String() != "42" {
		t.Fatalf("got %v", val)
	}
}

func TestRunIsolatedDoesNotShareVariables(t *testing.T) {
	d := New()
	if _, err := d.Run("<test>", "VAR x = 99"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := d.RunIsolated("<nested>", "x"); err == nil {
		t.Fatalf("expected undefined-variable error in an isolated run")
	}
}

func TestWithMaxRecursionDepthIsEnforced(t *testing.T) {
	d := New(WithMaxRecursionDepth(4))
	_, err := d.Run("<test>", "VAR f = FUNC(x) -> f(x + 1)\nf(0)")
	if err == nil {
		t.Fatalf("expected a call-depth error")
	}
}

func TestWithDisabledBuiltinsRemovesName(t *testing.T) {
	d := New(WithDisabledBuiltins([]string{"RUN"}))
	_, err := d.Run("<test>", `RUN("anything.ss")`)
	if err == nil {
		t.Fatalf("expected RUN to be undefined")
	}
}

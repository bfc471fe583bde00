package errors

import (
	"strings"
	"testing"

	"github.com/LaputanMachines/simple-script/pkg/token"
)

func TestFormatSnippetSingleLine(t *testing.T) {
	text := "VAR x = 1 +"
	start := token.Position{Line: 0, Column: 10, File: "<test>", Text: text}
	end := token.Position{Line: 0, Column: 11, File: "<test>", Text: text}
	snippet := FormatSnippet(text, start, end)
	lines := strings.Split(strings.TrimRight(snippet, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected source line + caret line, got %q", snippet)
	}
	if lines[0] != text {
		t.Fatalf("source line mismatch: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "^") {
		t.Fatalf("caret line should end with a caret: %q", lines[1])
	}
}

func TestRuntimeErrorIncludesTraceback(t *testing.T) {
	trace := StackTrace{
		NewStackFrame("<main>", "<test>", nil),
	}
	err := NewRuntimeError("'x' is not defined", token.Position{File: "<test>", Text: "x"}, token.Position{File: "<test>", Text: "x"}, trace)
	msg := err.Error()
	if !strings.Contains(msg, "Traceback") {
		t.Fatalf("expected traceback header, got %q", msg)
	}
	if !strings.Contains(msg, "'x' is not defined") {
		t.Fatalf("expected detail in message, got %q", msg)
	}
}

func TestIllegalCharErrorMessage(t *testing.T) {
	err := NewIllegalCharError('@', token.Position{File: "f", Text: "@"}, token.Position{File: "f", Text: "@"})
	if !strings.Contains(err.Error(), "IllegalCharError") {
		t.Fatalf("got %q", err.Error())
	}
}

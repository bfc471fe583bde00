package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadSourcePrefersInlineEval(t *testing.T) {
	input, filename, err := readSource("1 + 1", []string{"ignored.ss"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input != "1 + 1" || filename != "<eval>" {
		t.Fatalf("got %q, %q", input, filename)
	}
}

func TestReadSourceReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.ss")
	if err := os.WriteFile(path, []byte("42"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	input, filename, err := readSource("", []string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input != "42" || filename != path {
		t.Fatalf("got %q, %q", input, filename)
	}
}

func TestReadSourceRequiresEvalOrFile(t *testing.T) {
	if _, _, err := readSource("", nil); err == nil {
		t.Fatalf("expected an error with no source")
	}
}

func TestSummarizeExtractsErrorLine(t *testing.T) {
	err := errors.New("File <stdin>, line 1\nRuntimeError: 'x' is not defined\n   x\n   ^\n")
	got := summarize(err)
	if got != "RuntimeError: 'x' is not defined" {
		t.Fatalf("got %q", got)
	}
}

func TestSummarizeFallsBackToFullMessage(t *testing.T) {
	err := errors.New("boom")
	if got := summarize(err); got != "boom" {
		t.Fatalf("got %q", got)
	}
}

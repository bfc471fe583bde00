package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultHasSaneRecursionDepth(t *testing.T) {
	cfg := Default()
	if cfg.MaxRecursionDepth <= 0 {
		t.Fatalf("got %d", cfg.MaxRecursionDepth)
	}
	if !cfg.Color {
		t.Fatalf("expected color to default on")
	}
}

func TestLoadMissingExplicitPathIsError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatalf("expected an error reading a named, nonexistent path")
	}
	_ = cfg
}

func TestLoadReadsExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "simplescript.yaml")
	contents := "max_recursion_depth: 64\ncolor: false\ndisabled_builtins:\n  - RUN\n  - INPUT\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxRecursionDepth != 64 {
		t.Fatalf("got %d", cfg.MaxRecursionDepth)
	}
	if cfg.Color {
		t.Fatalf("expected color: false to be honored")
	}
	if !cfg.IsDisabled("RUN") || !cfg.IsDisabled("INPUT") {
		t.Fatalf("got %v", cfg.DisabledBuiltins)
	}
	if cfg.IsDisabled("PRINT") {
		t.Fatalf("PRINT should not be disabled")
	}
}

func TestResolvePrefersExplicitPath(t *testing.T) {
	path, ok := resolve("/some/explicit/path.yaml")
	if !ok || path != "/some/explicit/path.yaml" {
		t.Fatalf("got %q, %v", path, ok)
	}
}

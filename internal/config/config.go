// Package config loads the optional simplescript.yaml that configures the
// CLI: the recursion depth guard, whether diagnostics are ANSI-colored, and
// which built-ins a sandboxed embedding refuses to register.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/LaputanMachines/simple-script/internal/interp/evaluator"
)

// Config is the shape of simplescript.yaml.
type Config struct {
	MaxRecursionDepth int      `yaml:"max_recursion_depth"`
	Color             bool     `yaml:"color"`
	DisabledBuiltins  []string `yaml:"disabled_builtins"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{MaxRecursionDepth: evaluator.DefaultMaxCallDepth, Color: true}
}

// Load resolves simplescript.yaml. A non-empty explicitPath (from --config)
// is read as given, and failing to read it is an error. Otherwise
// ./simplescript.yaml, then $HOME/.simplescript.yaml, are tried; finding
// neither is not an error — Default() is returned unchanged.
func Load(explicitPath string) (Config, error) {
	path, ok := resolve(explicitPath)
	if !ok {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolve(explicitPath string) (string, bool) {
	if explicitPath != "" {
		return explicitPath, true
	}
	if _, err := os.Stat("simplescript.yaml"); err == nil {
		return "simplescript.yaml", true
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".simplescript.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// IsDisabled reports whether name was listed under disabled_builtins.
func (c Config) IsDisabled(name string) bool {
	for _, n := range c.DisabledBuiltins {
		if n == name {
			return true
		}
	}
	return false
}

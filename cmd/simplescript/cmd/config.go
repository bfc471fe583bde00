package cmd

import (
	"fmt"
	"os"

	"github.com/LaputanMachines/simple-script/internal/config"
	"github.com/LaputanMachines/simple-script/internal/driver"
)

// loadConfig resolves simplescript.yaml per --config/./.\$HOME search order
// and reports the error the caller should surface, rather than exiting
// here, so every command controls its own error formatting.
func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

// newDriver builds a driver.Driver wired from the resolved Config.
func newDriver(cfg config.Config) *driver.Driver {
	return driver.New(
		driver.WithMaxRecursionDepth(cfg.MaxRecursionDepth),
		driver.WithDisabledBuiltins(cfg.DisabledBuiltins),
	)
}

const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// printDiagnostic writes a lex/parse/runtime diagnostic to stderr, colored
// red when cfg.Color is set (simplescript.yaml's color: true, the default).
func printDiagnostic(cfg config.Config, err error) {
	if cfg.Color {
		fmt.Fprintln(os.Stderr, ansiRed+err.Error()+ansiReset)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

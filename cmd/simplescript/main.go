// Command simplescript is the SimpleScript interpreter's CLI: run, repl,
// lex, parse and version subcommands over the language core.
package main

import (
	"os"

	"github.com/LaputanMachines/simple-script/cmd/simplescript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive SimpleScript shell",
	Long: `Start a read-eval-print loop: each line is evaluated against one shared
global environment, so variables and functions defined on one line stay
visible to the next.

Two verb lines are reserved, case-insensitively:
  EXIT   quit the shell
  DEBUG  toggle printing the full diagnostic (with traceback) on error,
         versus a one-line summary`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError("%s", err)
	}
	d := newDriver(cfg)

	fmt.Println(hashDivider)
	fmt.Println(titleLine)
	fmt.Println(hashDivider)
	fmt.Println()

	debug := false
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("$ ")
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		line := scanner.Text()
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "EXIT":
			return nil
		case "DEBUG":
			debug = !debug
			fmt.Printf("debug mode: %v\n", debug)
			continue
		}

		val, err := d.Run("<stdin>", line)
		if err != nil {
			msg := summarize(err)
			if debug {
				msg = err.Error()
			}
			if cfg.Color {
				fmt.Println(ansiRed + msg + ansiReset)
			} else {
				fmt.Println(msg)
			}
			continue
		}
		if val != nil {
			fmt.Println(val.String())
		}
	}
}

const (
	hashDivider = "###################################################"
	titleLine   = "# SimpleScript: Interpreted Programming Language  #"
)

// summarize reduces a diagnostic to its "NameError: detail" line, skipping
// the file/line header and source snippet that DEBUG mode shows in full.
func summarize(err error) string {
	for _, line := range strings.Split(err.Error(), "\n") {
		if strings.Contains(line, "Error: ") {
			return line
		}
	}
	return err.Error()
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LaputanMachines/simple-script/internal/lexer"
	"github.com/LaputanMachines/simple-script/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a SimpleScript file or expression",
	Long: `Execute a SimpleScript program from a file or inline expression.

Examples:
  # Run a script file
  simplescript run script.ss

  # Evaluate an inline expression
  simplescript run -e 'PRINT("Hello, World!")'

  # Run with AST dump (for debugging)
  simplescript run --dump-ast script.ss`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print the name of the program to stderr before executing it")
}

func runScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		fmt.Fprintf(os.Stderr, "Running: %s\n", filename)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if dumpAST || trace {
		tokens, err := lexer.New(filename, input).Tokenize()
		if err != nil {
			printDiagnostic(cfg, err)
			return fmt.Errorf("lexing failed")
		}
		if dumpAST {
			tree, err := parser.New(tokens).Parse()
			if err != nil {
				printDiagnostic(cfg, err)
				return fmt.Errorf("parsing failed")
			}
			fmt.Println("AST:")
			fmt.Println(tree.String())
			fmt.Println()
		}
		if trace {
			fmt.Fprintf(os.Stderr, "[trace] executing %s\n", filename)
		}
	}

	d := newDriver(cfg)

	val, err := d.Run(filename, input)
	if err != nil {
		printDiagnostic(cfg, err)
		return fmt.Errorf("execution failed")
	}
	if val != nil {
		fmt.Println(val.String())
	}
	return nil
}

// readSource picks the inline -e expression over a file argument, matching
// the teacher's run/lex commands' precedence.
func readSource(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}


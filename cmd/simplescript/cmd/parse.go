package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LaputanMachines/simple-script/internal/lexer"
	"github.com/LaputanMachines/simple-script/internal/parser"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a SimpleScript file or expression and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tokens, err := lexer.New(filename, input).Tokenize()
	if err != nil {
		printDiagnostic(cfg, err)
		return fmt.Errorf("lexing failed")
	}
	tree, err := parser.New(tokens).Parse()
	if err != nil {
		printDiagnostic(cfg, err)
		return fmt.Errorf("parsing failed")
	}
	fmt.Println(tree.String())
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LaputanMachines/simple-script/internal/lexer"
	"github.com/LaputanMachines/simple-script/pkg/token"
)

var (
	lexEvalExpr string
	showPos     bool
	showType    bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a SimpleScript file or expression",
	Long: `Tokenize a SimpleScript program and print the resulting tokens.

Examples:
  simplescript lex script.ss
  simplescript lex -e "1 + 2"
  simplescript lex --show-type --show-pos script.ss`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Tokenizing: %s\n", filename)
		fmt.Fprintf(os.Stderr, "Input length: %d bytes\n", len(input))
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
	for _, tok := range tokens {
		printToken(tok)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Total tokens: %d\n", len(tokens))
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if showType {
		out = fmt.Sprintf("[%-12s]", tok.Kind)
	}
	if tok.Payload == nil {
		out += fmt.Sprintf(" %s", tok.Kind)
	} else {
		out += fmt.Sprintf(" %v", tok.Payload)
	}
	if showPos {
		out += fmt.Sprintf(" @%d:%d", tok.Start.Line+1, tok.Start.Column+1)
	}
	fmt.Println(out)
}

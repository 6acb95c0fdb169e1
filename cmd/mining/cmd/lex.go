package cmd

import (
	"fmt"
	"os"

	"github.com/mining-lang/mining/internal/lexer"
	"github.com/mining-lang/mining/pkg/token"
	"github.com/spf13/cobra"
)

var (
	showType   bool
	showPos    bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a MinING source file and print its token stream",
	Long: `Tokenize a MinING program and print the resulting tokens, one per line.

Examples:
  mining lex program.ming
  mining lex --show-type --show-pos program.ming
  mining lex --only-errors program.ming`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "suppress per-token output; print nothing on success")
}

func runLex(_ *cobra.Command, args []string) error {
	src, _, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(src)
	for {
		tok, err := l.NextToken()
		if err != nil {
			return err
		}
		if !onlyErrors {
			printToken(tok)
		}
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if showType {
		out = fmt.Sprintf("[%-12s]", tok.Type)
	}
	if tok.Literal == "" {
		out += fmt.Sprintf(" %s", tok.Type)
	} else {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Fprintln(os.Stdout, out)
}

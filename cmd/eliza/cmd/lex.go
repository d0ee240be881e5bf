package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/eliza/internal/lexer"
	"github.com/cwbudde/eliza/pkg/token"
	"github.com/spf13/cobra"
)

var lexShowPos bool

var lexCmd = &cobra.Command{
	Use:   "lex FILE",
	Short: "Tokenize a script file and print the resulting tokens",
	Long: `Tokenize (lex) an ELIZA script and print the resulting tokens, one
per line, mirroring go-dws's "dwscript lex" debug command.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token line numbers")
}

func runLex(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	l := lexer.New(string(content))
	count := 0
	for {
		tok := l.Next()
		printToken(tok)
		count++
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}

func printToken(tok token.Token) {
	output := fmt.Sprintf("[%-6s] %q", tok.Type, tok.Literal)
	if lexShowPos {
		output += fmt.Sprintf(" @%d", tok.Pos.Line)
	}
	fmt.Println(output)
}

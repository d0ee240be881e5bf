package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/cwbudde/eliza/internal/parser"
	"github.com/cwbudde/eliza/internal/scripterr"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a script file and display the resulting rule set",
	Long: `Parse an ELIZA script and print it back out in canonical form,
mirroring go-dws's "dwscript parse" debug command. Parser errors are
reported as "Script error on line N: ..." followed by the offending source
line with a caret beneath it, and exit nonzero.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full parsed structure instead of the canonical script text")
}

func runParse(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	script, err := parser.Parse(string(content))
	if err != nil {
		var pe *scripterr.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintln(os.Stderr, pe.Format())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("parsing %s failed", args[0])
	}

	if parseDumpAST {
		pp.Println(script)
		return nil
	}

	fmt.Print(parser.Print(script))
	return nil
}

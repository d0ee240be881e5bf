// Package cmd implements the eliza command-line interface: an interactive
// REPL plus lex/parse/showscript debug commands, structured the way
// go-dws's cmd/dwscript/cmd package is (a cobra rootCmd with each
// subcommand registered from its own init()).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set by build flags, following go-dws's cmd/dwscript/cmd/root.go.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "eliza",
	Short: "ELIZA, the 1966 DOCTOR conversational program",
	Long: `eliza is a faithful reimplementation of Weizenbaum's 1966 DOCTOR
script interpreter: a Hollerith-filtered tokenizer, a segmented pattern
matcher, and a keyword-stack response engine, fronted by a small
interactive shell.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

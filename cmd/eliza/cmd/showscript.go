package cmd

import (
	"fmt"

	"github.com/k0kubun/pp/v3"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/cwbudde/eliza/internal/scripts"
	"github.com/cwbudde/eliza/pkg/eliza"
)

var showscriptVerbose bool

var showscriptCmd = &cobra.Command{
	Use:   "showscript",
	Short: "Print the built-in 1966 DOCTOR script and exit",
	Long: `Print the source of the built-in DOCTOR script (the same one
"eliza run" loads when no script file is given). With --verbose, dump the
parsed rule set structurally via pp instead of the raw script text.`,
	Args: cobra.NoArgs,
	RunE: runShowscript,
}

func init() {
	rootCmd.AddCommand(showscriptCmd)
	showscriptCmd.Flags().BoolVar(&showscriptVerbose, "verbose", false, "dump the parsed rule set structurally instead of the raw script text")
}

func runShowscript(_ *cobra.Command, _ []string) error {
	if !showscriptVerbose {
		fmt.Print(scripts.Doctor)
		return nil
	}

	script, err := eliza.LoadScript(scripts.Doctor)
	if err != nil {
		return fmt.Errorf("built-in script failed to parse: %w", err)
	}

	keywords := append([]string(nil), script.Keywords()...)
	natural.Sort(keywords)
	fmt.Println("keywords:", keywords)

	pp.Println(script)
	return nil
}

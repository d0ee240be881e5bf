// Command eliza is the interactive CLI for the DOCTOR script engine.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/eliza/cmd/eliza/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

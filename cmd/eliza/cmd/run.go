package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/cwbudde/eliza/internal/config"
	"github.com/cwbudde/eliza/internal/scripts"
	"github.com/cwbudde/eliza/pkg/eliza"
)

var (
	runNoBanner   bool
	runQuick      bool
	runShowScript bool
	runConfigFile string
	runTrace      bool
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run the interactive ELIZA shell",
	Long: `Start an interactive session against a DOCTOR-style script: the
built-in 1966 CACM script if no file is given, or the one named.

Enter a blank line to quit. Lines starting with '*' are meta-commands:

  *               print the trace of the most recent exchange
  **              print the transformation rules used in the most recent reply
  *key            list every keyword in the current script
  *key WORD       print the transformation rule for WORD
  *traceoff       turn off tracing
  *traceon        turn on tracing; enter '*' after an exchange to see it
  *traceauto      turn on tracing; trace is shown after every exchange
  *tracepre       same as *traceauto: the trace, including any PRE
                  transform's rewritten input, is shown after every
                  exchange`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runNoBanner, "nobanner", false, "don't display the startup banner")
	runCmd.Flags().BoolVar(&runQuick, "quick", false, "print responses without the original's simulated IBM-2741 pacing delay (no-op; timing is out of scope)")
	runCmd.Flags().BoolVar(&runShowScript, "showscript", false, "print the script and exit instead of starting a session")
	runCmd.Flags().StringVar(&runConfigFile, "config", "", "load engine options from a YAML config file")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "start with tracing on, printed after every exchange")
}

func printBanner() {
	fmt.Println("-----------------------------------------------------------------")
	fmt.Println("      ELIZA -- A Computer Program for the Study of Natural")
	fmt.Println("         Language Communication Between Man and Machine")
	fmt.Println("DOCTOR script by Joseph Weizenbaum, 1966  (CC0 1.0) Public Domain")
	fmt.Println("-----------------------------------------------------------------")
}

func printCommandHelp() {
	fmt.Println("Unknown command. Commands are:")
	fmt.Println()
	fmt.Println("  <blank line>    quit")
	fmt.Println("  *               print trace of most recent exchange")
	fmt.Println("  **              print the transformation rules used in the most recent reply")
	fmt.Println("  *key            show all keywords in the current script")
	fmt.Println("  *key WORD       show the transformation rule for the given WORD")
	fmt.Println("  *traceoff       turn off tracing")
	fmt.Println("  *traceon        turn on tracing; enter '*' after any exchange to see it")
	fmt.Println("  *traceauto      turn on tracing; trace shown after every exchange")
	fmt.Println("  *tracepre       show input sentence prior to applying transformation")
}

// traceMode tracks the CLI's own printing preference; it never changes
// core engine behaviour (the tracer is always installed so "*" works),
// only whether a Logging tracer also writes live to stderr and whether
// the trace is echoed automatically after every exchange.
type traceMode int

const (
	traceOff traceMode = iota
	traceOn
	traceAuto
	tracePre
)

// installTracer rebuilds the engine's tracer for the given mode: a
// Recording always backs "*"/"**", wrapping a live Logging writer to
// stderr whenever tracing is switched on.
func installTracer(engine *eliza.Engine, mode traceMode) {
	var inner eliza.Tracer = eliza.NullTracer()
	if mode != traceOff {
		inner = eliza.NewLoggingTracer(os.Stderr)
	}
	engine.SetTracer(eliza.NewRecordingTracer(inner))
}

func runRepl(_ *cobra.Command, args []string) error {
	source := scripts.Doctor
	usingBuiltin := true
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to open script file %q: %w", args[0], err)
		}
		source = string(data)
		usingBuiltin = false
	}

	if runShowScript {
		fmt.Print(source)
		return nil
	}

	if !runNoBanner {
		printBanner()
		if usingBuiltin {
			fmt.Println("No script filename given; using built-in 1966 DOCTOR script.")
		} else {
			fmt.Printf("Using script file %q\n", args[0])
		}
	}

	script, err := eliza.LoadScript(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("script failed to parse")
	}

	var opts []eliza.Option
	if runConfigFile != "" {
		cfg, err := config.Load(runConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config %q: %w", runConfigFile, err)
		}
		opts = append(opts, cfg.Options()...)
	}

	engine := eliza.NewEngine(script, opts...)

	mode := traceOff
	if runTrace {
		mode = traceAuto
	}
	installTracer(engine, mode)

	if !runNoBanner {
		fmt.Println("Enter a blank line to quit.")
		fmt.Println()
	}

	fmt.Println(engine.Greeting())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}

		if strings.HasPrefix(line, "*") {
			handleMetaCommand(line, script, engine, &mode)
			continue
		}

		response := engine.Respond(line)
		fmt.Println(response)

		if mode == traceAuto || mode == tracePre {
			printTrace(engine)
		}
	}

	return nil
}

func handleMetaCommand(line string, script *eliza.Script, engine *eliza.Engine, mode *traceMode) {
	fields := strings.Fields(line)
	command := fields[0]

	switch command {
	case "*":
		printTrace(engine)
	case "**":
		printAppliedRules(script, engine)
	case "*key":
		if len(fields) == 1 {
			keywords := append([]string(nil), script.Keywords()...)
			natural.Sort(keywords)
			for _, kw := range keywords {
				fmt.Println(kw)
			}
			return
		}
		word := strings.ToUpper(fields[1])
		rule, ok := script.PrintRule(word)
		if !ok {
			fmt.Printf("no rule for keyword %s\n", word)
			return
		}
		fmt.Print(rule)
	case "*traceoff":
		*mode = traceOff
		installTracer(engine, *mode)
	case "*traceon":
		*mode = traceOn
		installTracer(engine, *mode)
	case "*traceauto":
		*mode = traceAuto
		installTracer(engine, *mode)
	case "*tracepre":
		*mode = tracePre
		installTracer(engine, *mode)
	default:
		printCommandHelp()
	}
}

func printTrace(engine *eliza.Engine) {
	for _, ev := range engine.LastTrace() {
		fmt.Printf("  %s %v\n", ev.Kind, ev.Fields)
	}
}

// printAppliedRules prints the transformation rule(s) the most recent
// reply actually used, by filtering the last trace down to its
// transform_applied events and printing each keyword's rule.
func printAppliedRules(script *eliza.Script, engine *eliza.Engine) {
	seen := make(map[string]bool)
	for _, ev := range engine.LastTrace() {
		if ev.Kind != "transform_applied" {
			continue
		}
		keyword := ev.Fields["keyword"]
		if seen[keyword] {
			continue
		}
		seen[keyword] = true
		if rule, ok := script.PrintRule(keyword); ok {
			fmt.Print(rule)
		}
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/mining-lang/mining/examples"
	"github.com/spf13/cobra"
)

var noDump bool
var useColor bool

var rootCmd = &cobra.Command{
	Use:   "mining [file]",
	Short: "MinING compiler front-end",
	Long: `mining lexes, parses, and semantically analyzes a MinING source file.

With no subcommand, mining runs the full pipeline (equivalent to "mining
run"). With no file argument, mining analyzes a built-in example program.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPipeline,
	// main prints the returned error itself, as the single diagnostic line.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command, returning the first error encountered so
// main can print it and set the process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noDump, "no-dump", false, "suppress the symbol table dump on success")
	rootCmd.PersistentFlags().BoolVar(&useColor, "color", false, "colorize diagnostic output")
}

// ColorEnabled reports whether --color was passed, for main's top-level
// error formatting.
func ColorEnabled() bool { return useColor }

// readSource reads the source file named by args[0], or falls back to the
// embedded example program when no file is given (spec.md §6).
func readSource(args []string) (src, filename string, err error) {
	if len(args) == 0 {
		return examples.Hello, "<built-in example>", nil
	}
	filename = args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", filename, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(content), filename, nil
}

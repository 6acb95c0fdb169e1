package cmd

import (
	"fmt"
	"os"

	"github.com/mining-lang/mining/internal/semantic"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Lex, parse, and semantically analyze a MinING source file",
	Long: `Run the full MinING pipeline: lexer, parser, and semantic analyzer.

On success, prints a success message and (unless --no-dump) the populated
symbol table. On the first error of any stage, prints a single diagnostic
line to stderr and exits non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runPipeline(_ *cobra.Command, args []string) error {
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	prog, err := parseProgram(src)
	if err != nil {
		return err
	}

	analyzer := semantic.New()
	if err := analyzer.Analyze(prog); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s: analysis succeeded\n", filename)
	if !noDump {
		analyzer.Table().Dump(os.Stdout)
	}
	return nil
}

// Command mining is the MinING compiler front-end's CLI: lex, parse, and
// run a MinING source file, printing diagnostics exactly as spec.md §6
// describes.
package main

import (
	"fmt"
	"os"

	"github.com/mining-lang/mining/cmd/mining/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if cmd.ColorEnabled() {
			fmt.Fprintf(os.Stderr, "\033[1;31m%s\033[0m\n", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

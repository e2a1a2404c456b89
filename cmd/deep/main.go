// Command deep is a thin command-line surface over the build-planning
// core: parsing a single requirement, compiling and emitting a reqfile,
// and running the shrine-order redistribution algorithm.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deep",
	Short: "Parse, compile, and redistribute character-build requirements",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

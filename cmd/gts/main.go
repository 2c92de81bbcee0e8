// Command gts is the reference CLI front end for the GTS core: ingest a
// document tree, query/validate/compare/cast the resulting store, and
// watch a source tree for changes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verboseFlag bool
var noColorFlag bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "gts",
		Short: "Global Type System command-line tooling",
		Long: `gts ingests a tree of JSON documents identified by the GTS identifier
grammar, and lets you list, query, validate, compare, and cast the
resulting in-memory store.`,
	}
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compatCmd)
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(refsCmd)
	rootCmd.AddCommand(watchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

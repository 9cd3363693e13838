package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "delog",
	Short: "Delog - remove leftover logging statements from source files",
	Long: `Delog removes logging call statements (console.log and friends) from source files.
It locates balanced call expressions textually, removes them including multi-line
arguments and trailing semicolons, and rewrites only the files that changed.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(triggersCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Package cmd provides the command-line interface for bankhash.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "bankhash",
	Short: "Bankhash CLI tool evaluates conflict-avoiding bank-index hash " +
		"functions over strided access patterns.",
	Long: `Bankhash CLI tool evaluates conflict-avoiding bank-index hash ` +
		`functions over strided access patterns. It can sweep a set of ` +
		`strides through a bank mapper, report per-stride conflict ` +
		`statistics, and record them for later inspection.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

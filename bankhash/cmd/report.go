package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/bankhash/conflictstats"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print sweep results recorded in an SQLite database",
	Run: func(cmd *cobra.Command, args []string) {
		runReport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("db", "",
		"SQLite database to read (without the .sqlite3 suffix)")
	reportCmd.MarkFlagRequired("db")
}

func runReport(cmd *cobra.Command) {
	dbPath, _ := cmd.Flags().GetString("db")

	reader := conflictstats.NewReader(dbPath)
	defer reader.Close()

	results, err := reader.Sweeps(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	printResults(results)
}

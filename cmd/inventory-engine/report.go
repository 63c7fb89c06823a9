package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/inventory-engine/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Render an inventory summary report",
	Long: `Report reads an inventory CSV and renders a summary: total device
count plus breakdowns by device type and by location. The report prints
to stdout unless --output names a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	output := stringSetting(cmd, "output", "report.output")

	return report.File(args[0], output, os.Stdout)
}

func init() {
	reportCmd.Flags().String("output", "", "write the report to this file instead of stdout")

	rootCmd.AddCommand(reportCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/inventory-engine/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [files...]",
	Short: "Summarize raw inventory CSVs without validating",
	Long: `Inspect reads one or more raw inventory CSVs and prints per-file row
counts and device type breakdowns. With --location, it also lists the
devices recorded at that location.

Files that cannot be read are reported and skipped; inspect keeps going.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	location := stringSetting(cmd, "location", "inspect.location")

	summary, err := inspect.Files(args, location, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) could not be read", summary.Failed)
	}
	return nil
}

func init() {
	inspectCmd.Flags().String("location", "", "list devices whose location field equals this value")

	rootCmd.AddCommand(inspectCmd)
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/inventory-engine/internal/csvio"
	"github.com/pdiddy/inventory-engine/internal/split"
)

var splitCmd = &cobra.Command{
	Use:   "split [file]",
	Short: "Split an inventory CSV into one file per device type",
	Long: `Split partitions an inventory CSV by raw device type, writing one CSV
per type into an output directory. Rows without a device type land in
unknowns.csv.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	outputDir := stringSetting(cmd, "output-dir", "split.output_dir")
	if outputDir == "" {
		outputDir = "output"
	}

	delim := csvio.Delimiter(stringSetting(cmd, "delimiter", "split.delimiter"))
	if _, err := delim.Rune(); err != nil {
		return err
	}

	_, err := split.Files(args[0], outputDir, delim, os.Stdout)
	return err
}

func init() {
	splitCmd.Flags().String("output-dir", "output", "directory that receives the per-type CSV files")
	splitCmd.Flags().String("delimiter", "comma", "output field separator: comma, tab, or pipe")

	rootCmd.AddCommand(splitCmd)
}

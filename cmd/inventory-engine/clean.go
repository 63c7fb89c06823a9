package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/inventory-engine/internal/clean"
	"github.com/pdiddy/inventory-engine/internal/csvio"
	"github.com/pdiddy/inventory-engine/pkg/types"
)

const defaultCleanOutput = "cleaned_devices.csv"

var cleanCmd = &cobra.Command{
	Use:   "clean [files...]",
	Short: "Transform raw inventory into a cleaned device CSV",
	Long: `Clean reads raw inventory CSVs, drops rows missing required fields,
normalizes hostnames, device types, and locations, deduplicates by
hostname, and writes one sorted device CSV.

Multiple input files are merged into a single batch; the first file
wins when the same hostname appears more than once.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := cleanConfig(cmd)

	delim := csvio.Delimiter(cfg.Delimiter)
	if _, err := delim.Rune(); err != nil {
		return err
	}

	_, err := clean.Files(args, cfg.Output, delim, os.Stdout)
	return err
}

func cleanConfig(cmd *cobra.Command) types.CleanConfig {
	cfg := types.CleanConfig{
		Output: stringSetting(cmd, "output", "clean.output"),
	}
	cfg.Delimiter = stringSetting(cmd, "delimiter", "clean.delimiter")
	if cfg.Output == "" {
		cfg.Output = defaultCleanOutput
	}
	return cfg
}

func init() {
	cleanCmd.Flags().String("output", defaultCleanOutput, "output file for the cleaned device CSV")
	cleanCmd.Flags().String("delimiter", "comma", "output field separator: comma, tab, or pipe")

	rootCmd.AddCommand(cleanCmd)
}

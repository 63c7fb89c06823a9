package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/inventory-engine/internal/csvio"
	"github.com/pdiddy/inventory-engine/internal/validate"
	"github.com/pdiddy/inventory-engine/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate inventory rows against hostname and IP rules",
	Long: `Validate runs strict per-row checks on an inventory CSV: hostname
format, IPv4 address, and required fields, reporting every problem on
every row. Valid rows are normalized into cleaned form.

With --output, cleaned rows are written as CSV. With --report, a YAML
validation report is written for downstream tooling. The command exits
non-zero when any row fails validation.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := validateConfig(cmd)

	cleaned, outcomes, err := validate.File(args[0], os.Stdout)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := csvio.WriteRecords(cfg.Output, validate.CleanedColumns, cleaned, csvio.DelimiterComma); err != nil {
			return err
		}
		fmt.Printf("Cleaned rows written to %s\n", cfg.Output)
	}

	if cfg.Report != "" {
		if err := validate.WriteReport(cfg.Report, args[0], outcomes); err != nil {
			return err
		}
		fmt.Printf("Validation report written to %s\n", cfg.Report)
	}

	invalid := 0
	for _, o := range outcomes {
		if !o.Valid {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d row(s) failed validation", invalid)
	}
	return nil
}

func validateConfig(cmd *cobra.Command) types.ValidateConfig {
	return types.ValidateConfig{
		Output: stringSetting(cmd, "output", "validate.output"),
		Report: stringSetting(cmd, "report", "validate.report"),
	}
}

func init() {
	validateCmd.Flags().String("output", "", "write cleaned rows to this CSV file")
	validateCmd.Flags().String("report", "", "write a YAML validation report to this file")

	rootCmd.AddCommand(validateCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/inventory-engine/internal/catalog"
	"github.com/pdiddy/inventory-engine/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the device catalog (sync, query, export)",
	Long: `Catalog maintains a SQLite database of cleaned devices with full-text
search. Use subcommands to sync CSV files in, query devices, or export
the catalog.`,
}

// --- sync subcommand ---

var catalogSyncCmd = &cobra.Command{
	Use:   "sync [files...]",
	Short: "Ingest inventory CSVs into the catalog",
	Long: `Sync reads inventory CSVs through the clean pipeline and upserts the
resulting devices into the catalog database. Files whose modification
time is unchanged since the last sync are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCatalogSync,
}

func runCatalogSync(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Sync(context.Background(), args, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to sync", summary.Failed)
	}
	return nil
}

// --- query subcommand ---

var catalogQueryCmd = &cobra.Command{
	Use:   "query [search]",
	Short: "Query the catalog with full-text search and filters",
	Long: `Query searches the catalog using FTS5 full-text search over hostname,
device type, and location, plus exact filters. With no search text or
filters, it lists the whole catalog up to the result limit.`,
	RunE: runCatalogQuery,
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Query(context.Background(), queryOptsFromFlags(cmd, args))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return catalog.FormatJSON(entries, os.Stdout)
	}
	catalog.FormatTable(entries, os.Stdout)
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the full catalog (or a filtered subset) to a file.
Supports the same filter flags as query for partial exports.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	cfg := catalogConfig(cmd)
	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if output == "" {
			output = filepath.Join(cfg.DatabaseDir, "export.yaml")
		}
		if err := store.ExportYAML(context.Background(), opts, output); err != nil {
			return err
		}
	case "json":
		if output == "" {
			output = filepath.Join(cfg.DatabaseDir, "export.json")
		}
		if err := store.ExportJSON(context.Background(), opts, output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Printf("Exported to %s\n", output)
	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	databaseDir := stringSetting(cmd, "database-dir", "catalog.database_dir")
	if databaseDir == "" {
		databaseDir = "catalog"
	}

	return types.CatalogConfig{
		DatabaseDir: databaseDir,
		MaxResults:  intSetting(cmd, "max-results", "catalog.max_results"),
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	search, _ := cmd.Flags().GetString("search")
	if search == "" && len(args) > 0 {
		search = strings.Join(args, " ")
	}

	deviceType, _ := cmd.Flags().GetString("type")
	location, _ := cmd.Flags().GetString("location")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Search:     search,
		Type:       deviceType,
		Location:   location,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("database-dir", "catalog", "directory holding the catalog database")
	catalogCmd.PersistentFlags().Int("max-results", 50, "default maximum number of query results")

	// Query flags.
	catalogQueryCmd.Flags().String("search", "", "full-text search over hostname, type, and location")
	catalogQueryCmd.Flags().String("type", "", "filter by device type")
	catalogQueryCmd.Flags().String("location", "", "filter by location")
	catalogQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("output", "", "output file (default: <database-dir>/export.<format>)")
	catalogExportCmd.Flags().String("search", "", "full-text search filter for partial export")
	catalogExportCmd.Flags().String("type", "", "filter by device type for partial export")
	catalogExportCmd.Flags().String("location", "", "filter by location for partial export")
	catalogExportCmd.Flags().Int("limit", 0, "maximum devices to export (0 = all)")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogSyncCmd)
	catalogCmd.AddCommand(catalogQueryCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}

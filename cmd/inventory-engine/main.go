// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the inventory-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the inventory-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "inventory-engine",
	Short: "Clean and catalog network device inventory CSVs",
	Long: `inventory-engine cleans and catalogs network device inventory exported
as CSV. Messy exports (inconsistent column names, mixed-case hostnames,
vendor shorthand for types and locations) go in; validated, normalized,
deduplicated device records come out.

Each pipeline stage is a subcommand: inspect, validate, clean, split,
report, and catalog. Stages read and write plain CSV so they compose
with shell scripts and scheduled jobs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./inventory-engine.yaml or ~/.config/inventory-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("inventory-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "inventory-engine"))
		}
	}

	viper.SetEnvPrefix("INVENTORY_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string setting: the flag value when given on
// the command line, the config file key otherwise.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// intSetting resolves an int setting the same way as stringSetting.
func intSetting(cmd *cobra.Command, flag, key string) int {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

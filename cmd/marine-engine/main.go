// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the marine-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/marine-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API tokens loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the marine-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "marine-engine",
	Short: "Collect and catalog marine ecosystem observation data",
	Long: `marine-engine collects marine ecosystem observation data (species
occurrences, oceanographic measurements, carbon-cycle stations, fishing
activity, sensor feeds) from public APIs in one best-effort run, groups the
results into semantic categories, and derives summary statistics and a
dataset catalog.

Each surface is a subcommand: collect runs one aggregation, catalog and runs
inspect the local archive, and export writes archived runs to YAML, JSON, or
CSV files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./marine-engine.yaml or ~/.config/marine-engine/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "base directory for the run archive")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("marine-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "marine-engine"))
		}
	}

	viper.SetEnvPrefix("MARINE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

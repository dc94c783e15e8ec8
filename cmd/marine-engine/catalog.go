// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/marine-engine/internal/archive"
	"github.com/pdiddy/marine-engine/internal/collect"
	"github.com/pdiddy/marine-engine/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the dataset catalog of an archived run",
	Long: `Catalog builds the descriptive dataset index over an archived run:
one descriptor per retrieved dataset, grouped by category, with its kind,
record count, and column names where tabular. Defaults to the latest run.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().String("run", "", "run ID (default: latest archived run)")
	catalogCmd.Flags().Bool("json", false, "output the catalog as JSON")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	store, err := archive.NewStore(types.ArchiveConfig{DataDir: dataDir})
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	runID, _ := cmd.Flags().GetString("run")
	if runID == "" {
		if runID, err = store.LatestRunID(ctx); err != nil {
			return err
		}
	}

	col, err := store.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	catalog := collect.BuildCatalog(col.Categorized)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	}

	collect.FormatCatalog(catalog, os.Stdout)
	return nil
}

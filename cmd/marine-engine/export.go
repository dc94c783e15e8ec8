// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/marine-engine/internal/archive"
	"github.com/pdiddy/marine-engine/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an archived run to YAML, JSON, or CSV files",
	Long: `Export writes an archived run under data/exports/. YAML and JSON
exports contain the full collection; CSV produces one file per
record-sequence dataset, grouped by category. Defaults to the latest run.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("run", "", "run ID (default: latest archived run)")
	exportCmd.Flags().String("format", "yaml", "export format: yaml, json, or csv")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml", "":
		path, err := store.ExportYAML(ctx, runID)
		if err != nil {
			return err
		}
		fmt.Println("Exported:", path)
	case "json":
		path, err := store.ExportJSON(ctx, runID)
		if err != nil {
			return err
		}
		fmt.Println("Exported:", path)
	case "csv":
		paths, err := store.ExportCSV(ctx, runID)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Println("Exported:", p)
		}
	default:
		return fmt.Errorf("unknown format %q: use yaml, json, or csv", format)
	}
	return nil
}

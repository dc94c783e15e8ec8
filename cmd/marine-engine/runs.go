// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/marine-engine/internal/archive"
	"github.com/pdiddy/marine-engine/pkg/types"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived collection runs",
	RunE:  runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	store, err := archive.NewStore(types.ArchiveConfig{DataDir: dataDir})
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No archived runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-28s  %-8s  %s\n",
		"Run", "Created", "Region", "Datasets", "Records")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 104))

	for _, r := range runs {
		region := fmt.Sprintf("%g..%g E %g..%g N", r.Region.West, r.Region.East, r.Region.South, r.Region.North)
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-28s  %-8d  %d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), region, r.TotalDatasets, r.TotalRecords)
	}
	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(runs))
	return nil
}

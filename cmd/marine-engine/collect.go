// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/marine-engine/internal/archive"
	"github.com/pdiddy/marine-engine/internal/collect"
	"github.com/pdiddy/marine-engine/internal/sources"
	"github.com/pdiddy/marine-engine/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "marine-engine/0.1"
)

// builtinRegions are the priority study regions available without a config
// file. A regions table in marine-engine.yaml extends or overrides them.
var builtinRegions = map[string]types.Region{
	"monterey_bay":       {West: -122.5, East: -121.5, South: 36.0, North: 37.0},
	"gulf_of_maine":      {West: -71.0, East: -65.0, South: 41.0, North: 45.0},
	"great_barrier_reef": {West: 142.0, East: 154.0, South: -24.0, North: -10.0},
	"north_sea":          {West: -4.0, East: 9.0, South: 51.0, North: 61.0},
	"coral_triangle":     {West: 117.0, East: 135.0, South: -10.0, North: 6.0},
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run one best-effort collection across all marine data sources",
	Long: `Collect fans out to every registered source concurrently, tolerates
per-source failures, and folds the results into six semantic categories
(biodiversity, environmental, physical oceanography, biogeochemistry, human
activities, conservation).

The region comes from --region (a named region) or from explicit
--west/--east/--south/--north bounds. Dates default to the last 30 days.`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().String("region", "", "named region (e.g. monterey_bay)")
	collectCmd.Flags().Float64("west", 0, "western longitude bound")
	collectCmd.Flags().Float64("east", 0, "eastern longitude bound")
	collectCmd.Flags().Float64("south", 0, "southern latitude bound")
	collectCmd.Flags().Float64("north", 0, "northern latitude bound")
	collectCmd.Flags().String("from", "", "date range start (YYYY-MM-DD, default 30 days ago)")
	collectCmd.Flags().String("to", "", "date range end (YYYY-MM-DD, default today)")
	collectCmd.Flags().StringSlice("targets", nil, "restrict the run to the named tasks")
	collectCmd.Flags().Bool("include-environmental", true, "include environmental-category tasks")
	collectCmd.Flags().Int("max-workers", 0, "maximum concurrent source tasks (default 5)")
	collectCmd.Flags().Duration("task-timeout", 0, "per-task timeout (default 90s)")
	collectCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	collectCmd.Flags().Bool("json", false, "output the full collection as JSON")
	collectCmd.Flags().Bool("archive", false, "save the run to the local archive")

	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	region, err := regionFromFlags(cmd)
	if err != nil {
		return err
	}
	dates := datesFromFlags(cmd)

	var collectCfg types.CollectConfig
	_ = viper.UnmarshalKey("collect", &collectCfg)

	opts := collect.DefaultOptions()
	opts.Targets, _ = cmd.Flags().GetStringSlice("targets")
	opts.IncludeEnvironmental, _ = cmd.Flags().GetBool("include-environmental")
	if collectCfg.MaxWorkers > 0 {
		opts.MaxWorkers = collectCfg.MaxWorkers
	}
	if collectCfg.TaskTimeout > 0 {
		opts.TaskTimeout = collectCfg.TaskTimeout
	}
	if n, _ := cmd.Flags().GetInt("max-workers"); n > 0 {
		opts.MaxWorkers = n
	}
	if d, _ := cmd.Flags().GetDuration("task-timeout"); d > 0 {
		opts.TaskTimeout = d
	}

	collector := collect.New(sources.Default(sourcesConfig(cmd)), os.Stderr)
	col, err := collector.Collect(context.Background(), region, dates, opts)
	if err != nil {
		return err
	}

	if doArchive, _ := cmd.Flags().GetBool("archive"); doArchive {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		store, err := archive.NewStore(types.ArchiveConfig{DataDir: dataDir})
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveRun(context.Background(), col); err != nil {
			return fmt.Errorf("archiving run: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Archived run %s\n", col.Metadata.RunID)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(col)
	}

	collect.FormatReport(col, os.Stdout)
	return nil
}

// regionFromFlags resolves the run's bounding box: a named region wins,
// explicit bounds otherwise. Validation itself is the core's job.
func regionFromFlags(cmd *cobra.Command) (types.Region, error) {
	name, _ := cmd.Flags().GetString("region")
	if name != "" {
		configured := map[string]types.Region{}
		_ = viper.UnmarshalKey("regions", &configured)
		if r, ok := configured[name]; ok {
			return r, nil
		}
		if r, ok := builtinRegions[name]; ok {
			return r, nil
		}
		known := make([]string, 0, len(builtinRegions))
		for k := range builtinRegions {
			known = append(known, k)
		}
		return types.Region{}, fmt.Errorf("unknown region %q (built-in: %s)", name, strings.Join(known, ", "))
	}

	west, _ := cmd.Flags().GetFloat64("west")
	east, _ := cmd.Flags().GetFloat64("east")
	south, _ := cmd.Flags().GetFloat64("south")
	north, _ := cmd.Flags().GetFloat64("north")
	if !cmd.Flags().Changed("west") && !cmd.Flags().Changed("east") {
		return types.Region{}, fmt.Errorf("provide --region or explicit --west/--east/--south/--north bounds")
	}
	return types.Region{West: west, East: east, South: south, North: north}, nil
}

// datesFromFlags resolves the date range, defaulting to the last 30 days.
func datesFromFlags(cmd *cobra.Command) types.DateRange {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if to == "" {
		to = time.Now().Format("2006-01-02")
	}
	if from == "" {
		from = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	}
	return types.DateRange{Start: from, End: to}
}

// sourcesConfig assembles adapter settings from flags, config file, and
// loaded secrets.
func sourcesConfig(cmd *cobra.Command) types.SourcesConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("sources.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	cfg := types.SourcesConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		OccurrenceLimit:    viper.GetInt("sources.occurrence_limit"),
		ProfileLimit:       viper.GetInt("sources.profile_limit"),
		BuoyStations:       viper.GetStringSlice("sources.buoy_stations"),
		GBIFTaxonKey:       viper.GetInt("sources.gbif_taxon_key"),
		ERDDAPKeywords:     viper.GetString("sources.erddap_keywords"),
		SatelliteDatasetID: viper.GetString("sources.satellite_dataset_id"),
	}
	cfg.FishingWatchToken = secretDefault("gfw-api-token", viper.GetString("sources.fishing_watch_token"))
	cfg.CopernicusToken = secretDefault("copernicus-api-token", viper.GetString("sources.copernicus_token"))
	cfg.OceanNetworksToken = secretDefault("onc-api-token", viper.GetString("sources.ocean_networks_token"))
	return cfg
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"testing"

	"github.com/pdiddy/marine-engine/internal/collect"
	"github.com/pdiddy/marine-engine/pkg/types"
)

func TestDefaultAdapterSet(t *testing.T) {
	srcs := Default(types.SourcesConfig{})
	if len(srcs) != 14 {
		t.Fatalf("len(Default()) = %d, want 14", len(srcs))
	}

	seen := make(map[string]bool, len(srcs))
	covered := make(map[types.Category]bool)
	for _, s := range srcs {
		name := s.Name()
		if seen[name] {
			t.Errorf("duplicate task name %q", name)
		}
		seen[name] = true
		covered[collect.Categorize(name)] = true
	}

	for _, cat := range types.Categories() {
		if !covered[cat] {
			t.Errorf("no default adapter categorizes into %q", cat)
		}
	}
}

func TestDefaultAppliesFallbacks(t *testing.T) {
	srcs := Default(types.SourcesConfig{})

	for _, s := range srcs {
		switch v := s.(type) {
		case *OBIS:
			if v.Limit != defaultOccurrenceLimit {
				t.Errorf("OBIS limit = %d, want %d", v.Limit, defaultOccurrenceLimit)
			}
		case *Buoys:
			if len(v.Stations) != len(defaultBuoyStations) {
				t.Errorf("buoy stations = %v, want defaults", v.Stations)
			}
		case *SatelliteSST:
			if v.DatasetID != defaultSatelliteID {
				t.Errorf("satellite dataset = %q, want %q", v.DatasetID, defaultSatelliteID)
			}
		}
	}
}

func TestDefaultHonorsConfig(t *testing.T) {
	cfg := types.SourcesConfig{
		OccurrenceLimit:    50,
		BuoyStations:       []string{"41001"},
		SatelliteDatasetID: "noaacwBLENDEDsstDaily",
		FishingWatchToken:  "tok",
	}
	for _, s := range Default(cfg) {
		switch v := s.(type) {
		case *GBIF:
			if v.Limit != 50 {
				t.Errorf("GBIF limit = %d, want 50", v.Limit)
			}
		case *Buoys:
			if len(v.Stations) != 1 || v.Stations[0] != "41001" {
				t.Errorf("buoy stations = %v", v.Stations)
			}
		case *SatelliteSST:
			if v.DatasetID != "noaacwBLENDEDsstDaily" {
				t.Errorf("satellite dataset = %q", v.DatasetID)
			}
		case *FishingWatch:
			if v.Token != "tok" {
				t.Errorf("fishing watch token = %q", v.Token)
			}
		}
	}
}

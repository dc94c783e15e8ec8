// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"reflect"
	"testing"

	"github.com/pdiddy/marine-engine/pkg/types"
)

func storeWith(entries map[types.Category]map[string]types.Result) map[types.Category]map[string]types.Result {
	store := emptyStore()
	for cat, datasets := range entries {
		for name, res := range datasets {
			store[cat][name] = res
		}
	}
	return store
}

func TestBuildSummaryCountConvention(t *testing.T) {
	// One 5-record sequence plus one 1-entry mapping: 2 datasets, 6 records
	// under the uniform length-based convention.
	store := storeWith(map[types.Category]map[string]types.Result{
		types.CategoryBiodiversity: {
			"obis_occurrences": nRecords(5),
		},
		types.CategoryPhysicalOceanography: {
			"onc_sensor_readings": types.FieldsResult(map[string]any{"BACAX": map[string]any{"temperature_c": 8.1}}),
		},
	})

	s := buildSummary(store, 2, 0)
	if s.TotalDatasets != 2 {
		t.Errorf("TotalDatasets = %d, want 2", s.TotalDatasets)
	}
	if s.TotalRecords != 6 {
		t.Errorf("TotalRecords = %d, want 6", s.TotalRecords)
	}
	want := []string{"biodiversity", "physical_oceanography"}
	if !reflect.DeepEqual(s.DataTypes, want) {
		t.Errorf("DataTypes = %v, want %v", s.DataTypes, want)
	}
}

func TestBuildSummaryScalarCountsAsOne(t *testing.T) {
	store := storeWith(map[types.Category]map[string]types.Result{
		types.CategoryEnvironmental: {
			"satellite_sst": types.ScalarResult("jplMURSST41"),
		},
	})

	s := buildSummary(store, 1, 0)
	if s.TotalRecords != 1 {
		t.Errorf("TotalRecords = %d, want 1", s.TotalRecords)
	}
}

func TestBuildSummaryAdvisory(t *testing.T) {
	tests := []struct {
		name         string
		attempted    int
		failed       int
		wantAdvisory bool
	}{
		{"no failures", 10, 0, false},
		{"minority failed", 10, 3, false},
		{"exactly half failed", 10, 5, false},
		{"majority failed", 10, 6, true},
		{"all failed", 4, 4, true},
		{"nothing attempted", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := buildSummary(emptyStore(), tt.attempted, tt.failed)
			if got := s.Advisory != ""; got != tt.wantAdvisory {
				t.Errorf("advisory presence = %v (%q), want %v", got, s.Advisory, tt.wantAdvisory)
			}
		})
	}
}

func TestBuildCatalogCompleteness(t *testing.T) {
	store := storeWith(map[types.Category]map[string]types.Result{
		types.CategoryBiodiversity: {
			"obis_occurrences": nRecords(5),
			"gbif_occurrences": types.Absent(),
		},
		types.CategoryPhysicalOceanography: {
			"noaa_buoys": types.TabularResult(
				[]types.Record{{"WVHT": "1.2", "station": "46050"}},
				[]string{"WVHT", "station"},
			),
		},
	})

	catalog := BuildCatalog(store)

	bio := catalog[types.CategoryBiodiversity]
	if len(bio) != 1 {
		t.Fatalf("biodiversity descriptors = %d, want 1 (absent results are skipped)", len(bio))
	}
	info := bio["obis_occurrences"]
	if info.RecordCount != 5 || info.Kind != string(types.KindRecords) || info.Status != "available" {
		t.Errorf("descriptor = %+v, want 5 records / records kind / available", info)
	}

	buoys := catalog[types.CategoryPhysicalOceanography]["noaa_buoys"]
	if !reflect.DeepEqual(buoys.Columns, []string{"WVHT", "station"}) {
		t.Errorf("tabular descriptor columns = %v, want [WVHT station]", buoys.Columns)
	}

	// Categories with no present result have no catalog entry at all.
	if _, ok := catalog[types.CategoryConservation]; ok {
		t.Error("empty category should not appear in the catalog")
	}
}

func TestBuildCatalogDoesNotMutateStore(t *testing.T) {
	store := storeWith(map[types.Category]map[string]types.Result{
		types.CategoryBiodiversity: {"obis_occurrences": nRecords(2)},
	})

	before := store[types.CategoryBiodiversity]["obis_occurrences"].Count()
	BuildCatalog(store)
	after := store[types.CategoryBiodiversity]["obis_occurrences"].Count()
	if before != after {
		t.Errorf("catalog build mutated the store: %d -> %d", before, after)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"testing"

	"github.com/pdiddy/marine-engine/pkg/types"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want types.Category
	}{
		{"obis_occurrences", types.CategoryBiodiversity},
		{"gbif_occurrences", types.CategoryBiodiversity},
		{"fishbase_species_profiles", types.CategoryBiodiversity},
		{"noaa_buoys", types.CategoryPhysicalOceanography},
		{"argo_float_profiles", types.CategoryPhysicalOceanography},
		{"onc_sensor_readings", types.CategoryPhysicalOceanography},
		{"glodap_carbon_stations", types.CategoryBiogeochemistry},
		{"socat_co2_observations", types.CategoryBiogeochemistry},
		{"fishing_effort", types.CategoryHumanActivities},
		{"vessel_traffic_density", types.CategoryHumanActivities},
		{"coral_reef_watch_alerts", types.CategoryConservation},
		{"erddap_sst_datasets", types.CategoryEnvironmental},
		{"satellite_sst", types.CategoryEnvironmental},
		{"copernicus_marine_products", types.CategoryEnvironmental},
		// No rule matches: falls into the environmental catch-all.
		{"mystery_feed", types.CategoryEnvironmental},
		{"", types.CategoryEnvironmental},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.name); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestCategorizeIsDeterministic(t *testing.T) {
	names := []string{
		"obis_occurrences", "noaa_buoys", "glodap_carbon_stations",
		"fishing_effort", "coral_reef_watch_alerts", "satellite_sst",
		"something_unregistered",
	}
	for _, name := range names {
		first := Categorize(name)
		for i := 0; i < 10; i++ {
			if got := Categorize(name); got != first {
				t.Fatalf("Categorize(%q) changed between calls: %q then %q", name, first, got)
			}
		}
	}
}

func TestCategorizeIsCaseInsensitive(t *testing.T) {
	if got := Categorize("OBIS_Occurrences"); got != types.CategoryBiodiversity {
		t.Errorf("Categorize(mixed case) = %q, want %q", got, types.CategoryBiodiversity)
	}
}

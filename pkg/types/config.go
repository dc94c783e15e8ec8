// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by sources that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "marine-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourcesConfig holds settings for the source adapters.
type SourcesConfig struct {
	HTTPConfig `yaml:",inline"`

	// OccurrenceLimit caps the number of occurrence records requested from
	// biodiversity APIs (default 500). GBIF additionally caps a single page
	// at 300 server-side.
	OccurrenceLimit int `json:"occurrence_limit" yaml:"occurrence_limit"`

	// ProfileLimit caps the number of Argo float profiles kept (default 500).
	ProfileLimit int `json:"profile_limit" yaml:"profile_limit"`

	// BuoyStations lists the NOAA NDBC station IDs to query.
	BuoyStations []string `json:"buoy_stations" yaml:"buoy_stations"`

	// GBIFTaxonKey optionally restricts GBIF occurrences to one taxon.
	GBIFTaxonKey int `json:"gbif_taxon_key,omitempty" yaml:"gbif_taxon_key,omitempty"`

	// ERDDAPKeywords is the dataset search phrase (default "sea surface temperature").
	ERDDAPKeywords string `json:"erddap_keywords" yaml:"erddap_keywords"`

	// SatelliteDatasetID is the ERDDAP griddap dataset described by the
	// satellite source (default "jplMURSST41").
	SatelliteDatasetID string `json:"satellite_dataset_id" yaml:"satellite_dataset_id"`

	// FishingWatchToken is an optional Global Fishing Watch API token.
	FishingWatchToken string `json:"fishing_watch_token,omitempty" yaml:"fishing_watch_token,omitempty"`

	// CopernicusToken is an optional Copernicus Marine Service token.
	CopernicusToken string `json:"copernicus_token,omitempty" yaml:"copernicus_token,omitempty"`

	// OceanNetworksToken is an optional Ocean Networks Canada token.
	OceanNetworksToken string `json:"ocean_networks_token,omitempty" yaml:"ocean_networks_token,omitempty"`
}

// CollectConfig holds settings for the aggregation core.
type CollectConfig struct {
	// MaxWorkers bounds the number of source tasks running concurrently
	// (default 5, minimum 1).
	MaxWorkers int `json:"max_workers" yaml:"max_workers"`

	// TaskTimeout bounds one source task; a task exceeding it is recorded
	// as failed and abandoned (default 90s).
	TaskTimeout time.Duration `json:"task_timeout" yaml:"task_timeout"`
}

// ArchiveConfig holds settings for the local run archive.
type ArchiveConfig struct {
	// DataDir is the base directory for archived runs (contains index/, exports/).
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

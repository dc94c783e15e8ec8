// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sources implements one adapter per upstream marine-data API. Each
// adapter normalizes its response into a types.Result and satisfies
// collect.Source; the aggregation core never sees transport details.
//
// The GLODAP, SOCAT, Global Fishing Watch, Ocean Networks Canada, coral reef
// watch, FishBase and vessel-traffic adapters serve deterministic sample
// payloads behind the same contract until live clients replace them.
package sources

import (
	"net/http"
	"time"

	"github.com/pdiddy/marine-engine/internal/collect"
	"github.com/pdiddy/marine-engine/pkg/types"
)

const (
	defaultOccurrenceLimit = 500
	defaultProfileLimit    = 500
	defaultERDDAPKeywords  = "sea surface temperature"
	defaultSatelliteID     = "jplMURSST41"
)

// defaultBuoyStations are open-Pacific NDBC stations with reliable
// realtime2 feeds.
var defaultBuoyStations = []string{"46050", "46005", "46013"}

// Default returns the full adapter set in registration order. Missing
// config fields fall back to usable defaults; optional tokens gate the
// sources that need them without removing them from the set.
func Default(cfg types.SourcesConfig) []collect.Source {
	client := &http.Client{Timeout: cfg.Timeout}
	if cfg.Timeout == 0 {
		client.Timeout = 60 * time.Second
	}
	if cfg.OccurrenceLimit <= 0 {
		cfg.OccurrenceLimit = defaultOccurrenceLimit
	}
	if cfg.ProfileLimit <= 0 {
		cfg.ProfileLimit = defaultProfileLimit
	}
	if len(cfg.BuoyStations) == 0 {
		cfg.BuoyStations = defaultBuoyStations
	}
	if cfg.ERDDAPKeywords == "" {
		cfg.ERDDAPKeywords = defaultERDDAPKeywords
	}
	if cfg.SatelliteDatasetID == "" {
		cfg.SatelliteDatasetID = defaultSatelliteID
	}

	return []collect.Source{
		&OBIS{Client: client, UserAgent: cfg.UserAgent, Limit: cfg.OccurrenceLimit},
		&GBIF{Client: client, UserAgent: cfg.UserAgent, Limit: cfg.OccurrenceLimit, TaxonKey: cfg.GBIFTaxonKey},
		&Buoys{Client: client, UserAgent: cfg.UserAgent, Stations: cfg.BuoyStations},
		&Argo{Client: client, UserAgent: cfg.UserAgent, Limit: cfg.ProfileLimit},
		&ERDDAPSearch{Client: client, UserAgent: cfg.UserAgent, Keywords: cfg.ERDDAPKeywords},
		&SatelliteSST{Client: client, UserAgent: cfg.UserAgent, DatasetID: cfg.SatelliteDatasetID},
		&Copernicus{Token: cfg.CopernicusToken},
		&GLODAP{},
		&SOCAT{},
		&FishingWatch{Token: cfg.FishingWatchToken},
		&OceanNetworks{Token: cfg.OceanNetworksToken},
		&CoralReefWatch{},
		&FishBase{},
		&VesselTraffic{},
	}
}

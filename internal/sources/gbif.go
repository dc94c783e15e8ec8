// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/marine-engine/internal/httputil"
	"github.com/pdiddy/marine-engine/pkg/types"
)

// gbifAPIBase is the Global Biodiversity Information Facility v1 endpoint.
// Declared as a var so tests can substitute an httptest server.
var gbifAPIBase = "https://api.gbif.org/v1"

// gbifPageCap is the server-side maximum page size of the GBIF search API.
const gbifPageCap = 300

// GBIF fetches species occurrence records from the GBIF occurrence search API.
type GBIF struct {
	Client    *http.Client
	UserAgent string
	Limit     int
	// TaxonKey optionally restricts results to one taxon.
	TaxonKey int
}

// Name returns the task identifier.
func (s *GBIF) Name() string { return "gbif_occurrences" }

// Fetch queries GBIF for georeferenced observations inside the region and
// date range.
func (s *GBIF) Fetch(ctx context.Context, region types.Region, dates types.DateRange) (types.Result, error) {
	limit := s.Limit
	if limit > gbifPageCap {
		limit = gbifPageCap
	}

	params := url.Values{
		"decimalLatitude":    {fmt.Sprintf("%g,%g", region.South, region.North)},
		"decimalLongitude":   {fmt.Sprintf("%g,%g", region.West, region.East)},
		"eventDate":          {dates.Start + "," + dates.End},
		"hasCoordinate":      {"true"},
		"hasGeospatialIssue": {"false"},
		"limit":              {fmt.Sprintf("%d", limit)},
		"basisOfRecord":      {"OBSERVATION"},
	}
	if s.TaxonKey > 0 {
		params.Set("taxonKey", fmt.Sprintf("%d", s.TaxonKey))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		gbifAPIBase+"/occurrence/search?"+params.Encode(), nil)
	if err != nil {
		return types.Absent(), fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return types.Absent(), fmt.Errorf("GBIF API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Absent(), fmt.Errorf("GBIF API returned HTTP %d", resp.StatusCode)
	}

	var body struct {
		Results []types.Record `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return types.Absent(), fmt.Errorf("parsing GBIF response: %w", err)
	}

	return types.RecordsResult(body.Results), nil
}

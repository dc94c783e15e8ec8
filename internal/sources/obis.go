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

// obisAPIBase is the Ocean Biodiversity Information System v3 endpoint.
// Declared as a var so tests can substitute an httptest server.
var obisAPIBase = "https://api.obis.org/v3"

// OBIS fetches species occurrence records from the OBIS occurrence API.
type OBIS struct {
	Client    *http.Client
	UserAgent string
	Limit     int
}

// Name returns the task identifier.
func (s *OBIS) Name() string { return "obis_occurrences" }

// Fetch queries OBIS for occurrences inside the region and date range.
func (s *OBIS) Fetch(ctx context.Context, region types.Region, dates types.DateRange) (types.Result, error) {
	params := url.Values{
		"geometry":  {polygonWKT(region)},
		"startdate": {dates.Start},
		"enddate":   {dates.End},
		"size":      {fmt.Sprintf("%d", s.Limit)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		obisAPIBase+"/occurrence?"+params.Encode(), nil)
	if err != nil {
		return types.Absent(), fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return types.Absent(), fmt.Errorf("OBIS API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Absent(), fmt.Errorf("OBIS API returned HTTP %d", resp.StatusCode)
	}

	var body struct {
		Results []types.Record `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return types.Absent(), fmt.Errorf("parsing OBIS response: %w", err)
	}

	return types.RecordsResult(body.Results), nil
}

// polygonWKT renders the bounding box as the WKT polygon the OBIS API
// expects, closing the ring at the south-west corner.
func polygonWKT(r types.Region) string {
	return fmt.Sprintf("POLYGON((%g %g,%g %g,%g %g,%g %g,%g %g))",
		r.West, r.South,
		r.East, r.South,
		r.East, r.North,
		r.West, r.North,
		r.West, r.South)
}

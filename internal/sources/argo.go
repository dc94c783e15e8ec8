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

// argovisAPIBase is the Argovis profile selection endpoint. Declared as a
// var so tests can substitute an httptest server.
var argovisAPIBase = "https://argovis.colorado.edu"

// Argo fetches float profiles from the Argovis API.
type Argo struct {
	Client    *http.Client
	UserAgent string
	Limit     int
}

// Name returns the task identifier.
func (s *Argo) Name() string { return "argo_float_profiles" }

// Fetch queries Argovis for profiles inside the region and date range. The
// API takes the region as a closed polygon ring in JSON form and does not
// cap results itself, so the limit is applied client-side.
func (s *Argo) Fetch(ctx context.Context, region types.Region, dates types.DateRange) (types.Result, error) {
	ring := [][][2]float64{{
		{region.West, region.South},
		{region.East, region.South},
		{region.East, region.North},
		{region.West, region.North},
		{region.West, region.South},
	}}
	shape, err := json.Marshal(ring)
	if err != nil {
		return types.Absent(), fmt.Errorf("encoding region shape: %w", err)
	}

	params := url.Values{
		"startDate": {dates.Start},
		"endDate":   {dates.End},
		"shape":     {string(shape)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		argovisAPIBase+"/selection/profiles?"+params.Encode(), nil)
	if err != nil {
		return types.Absent(), fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return types.Absent(), fmt.Errorf("Argovis API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Absent(), fmt.Errorf("Argovis API returned HTTP %d", resp.StatusCode)
	}

	var profiles []types.Record
	if err := json.NewDecoder(resp.Body).Decode(&profiles); err != nil {
		return types.Absent(), fmt.Errorf("parsing Argovis response: %w", err)
	}

	if s.Limit > 0 && len(profiles) > s.Limit {
		profiles = profiles[:s.Limit]
	}

	return types.RecordsResult(profiles), nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/marine-engine/internal/httputil"
	"github.com/pdiddy/marine-engine/pkg/types"
)

// ndbcAPIBase is the NOAA National Data Buoy Center host. Declared as a var
// so tests can substitute an httptest server.
var ndbcAPIBase = "https://www.ndbc.noaa.gov"

// Buoys fetches realtime observations from NOAA NDBC stations. Station
// feeds are fixed-width text: a header row of column names, a units row,
// then one observation per line.
type Buoys struct {
	Client    *http.Client
	UserAgent string
	Stations  []string
}

// Name returns the task identifier.
func (s *Buoys) Name() string { return "noaa_buoys" }

// Fetch retrieves every configured station and merges the observations into
// one tabular result with a station column. Stations that fail are skipped;
// the task only fails when no station yields data.
func (s *Buoys) Fetch(ctx context.Context, _ types.Region, _ types.DateRange) (types.Result, error) {
	var records []types.Record
	var columns []string
	var lastErr error

	for _, station := range s.Stations {
		rows, cols, err := s.fetchStation(ctx, station)
		if err != nil {
			lastErr = err
			continue
		}
		records = append(records, rows...)
		if len(cols) > len(columns) {
			columns = cols
		}
	}

	if len(records) == 0 {
		if lastErr != nil {
			return types.Absent(), fmt.Errorf("no buoy data from stations %v: %w", s.Stations, lastErr)
		}
		return types.Absent(), fmt.Errorf("no buoy data from stations %v", s.Stations)
	}

	return types.TabularResult(records, append(columns, "station")), nil
}

func (s *Buoys) fetchStation(ctx context.Context, station string) ([]types.Record, []string, error) {
	url := fmt.Sprintf("%s/data/realtime2/%s.txt", ndbcAPIBase, station)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("NDBC request for %s: %w", station, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("NDBC returned HTTP %d for station %s", resp.StatusCode, station)
	}

	return parseBuoyFeed(resp.Body, station)
}

// parseBuoyFeed parses the NDBC fixed-width text format. The first line
// holds column names and the second units; both are prefixed with '#'.
// Rows whose field count does not match the header are dropped.
func parseBuoyFeed(body io.Reader, station string) ([]types.Record, []string, error) {
	scanner := bufio.NewScanner(body)

	var headers []string
	var records []types.Record
	line := 0
	for scanner.Scan() {
		fields := strings.Fields(strings.TrimPrefix(scanner.Text(), "#"))
		line++
		switch {
		case line == 1:
			headers = fields
		case line == 2:
			// units row, not data
		default:
			if len(fields) != len(headers) {
				continue
			}
			rec := make(types.Record, len(headers)+1)
			for i, h := range headers {
				rec[h] = fields[i]
			}
			rec["station"] = station
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading NDBC feed for %s: %w", station, err)
	}
	if line < 3 || len(records) == 0 {
		return nil, nil, fmt.Errorf("no observation rows for station %s", station)
	}
	return records, headers, nil
}

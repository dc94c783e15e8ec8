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

// erddapAPIBase is the NOAA CoastWatch ERDDAP server. Declared as a var so
// tests can substitute an httptest server.
var erddapAPIBase = "https://coastwatch.pfeg.noaa.gov/erddap"

// erddapTopDatasets bounds how many search hits are kept.
const erddapTopDatasets = 5

// erddapTable is the tabular JSON envelope ERDDAP wraps every index
// response in.
type erddapTable struct {
	Table struct {
		ColumnNames []string `json:"columnNames"`
		Rows        [][]any  `json:"rows"`
	} `json:"table"`
}

// ERDDAPSearch finds environmental datasets matching a keyword phrase.
type ERDDAPSearch struct {
	Client    *http.Client
	UserAgent string
	Keywords  string
}

// Name returns the task identifier.
func (s *ERDDAPSearch) Name() string { return "erddap_sst_datasets" }

// Fetch searches the ERDDAP catalog and returns descriptors for the top
// matching datasets. Row layout follows the ERDDAP search index: dataset ID
// first, title and summary at fixed offsets.
func (s *ERDDAPSearch) Fetch(ctx context.Context, _ types.Region, _ types.DateRange) (types.Result, error) {
	params := url.Values{
		"page":         {"1"},
		"itemsPerPage": {"100"},
		"searchFor":    {s.Keywords},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		erddapAPIBase+"/search/index.json?"+params.Encode(), nil)
	if err != nil {
		return types.Absent(), fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return types.Absent(), fmt.Errorf("ERDDAP search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Absent(), fmt.Errorf("ERDDAP returned HTTP %d", resp.StatusCode)
	}

	var body erddapTable
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return types.Absent(), fmt.Errorf("parsing ERDDAP response: %w", err)
	}

	var datasets []types.Record
	for _, row := range body.Table.Rows {
		if len(row) < 3 {
			continue
		}
		rec := types.Record{
			"dataset_id": rowString(row, 0),
			"title":      rowString(row, 2),
		}
		if v := rowString(row, 3); v != "" {
			rec["summary"] = v
		}
		if v := rowString(row, 4); v != "" {
			rec["institution"] = v
		}
		datasets = append(datasets, rec)
		if len(datasets) == erddapTopDatasets {
			break
		}
	}

	return types.RecordsResult(datasets), nil
}

// SatelliteSST describes a satellite sea-surface-temperature gridded
// product via the ERDDAP dataset info endpoint.
type SatelliteSST struct {
	Client    *http.Client
	UserAgent string
	DatasetID string
}

// Name returns the task identifier.
func (s *SatelliteSST) Name() string { return "satellite_sst" }

// Fetch reads the dataset's info table and returns its global attributes
// and variable list as a keyed mapping.
func (s *SatelliteSST) Fetch(ctx context.Context, _ types.Region, _ types.DateRange) (types.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/info/%s/index.json", erddapAPIBase, s.DatasetID), nil)
	if err != nil {
		return types.Absent(), fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return types.Absent(), fmt.Errorf("ERDDAP info request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Absent(), fmt.Errorf("ERDDAP returned HTTP %d for dataset %s", resp.StatusCode, s.DatasetID)
	}

	var body erddapTable
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return types.Absent(), fmt.Errorf("parsing ERDDAP info response: %w", err)
	}

	// Info rows are [rowType, variableName, attributeName, dataType, value].
	fields := map[string]any{"dataset_id": s.DatasetID}
	var variables []string
	for _, row := range body.Table.Rows {
		if len(row) < 5 {
			continue
		}
		switch rowString(row, 0) {
		case "attribute":
			if rowString(row, 1) == "NC_GLOBAL" {
				if name := rowString(row, 2); name == "title" || name == "summary" || name == "institution" {
					fields[name] = rowString(row, 4)
				}
			}
		case "variable":
			variables = append(variables, rowString(row, 1))
		}
	}
	if len(variables) > 0 {
		fields["variables"] = variables
	}

	return types.FieldsResult(fields), nil
}

// rowString reads row[i] as a string, tolerating short rows and non-string
// cells.
func rowString(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdiddy/marine-engine/pkg/types"
)

func TestGBIFFetch(t *testing.T) {
	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"decimalLatitude":  q.Get("decimalLatitude"),
			"decimalLongitude": q.Get("decimalLongitude"),
			"eventDate":        q.Get("eventDate"),
			"limit":            q.Get("limit"),
			"basisOfRecord":    q.Get("basisOfRecord"),
			"taxonKey":         q.Get("taxonKey"),
		}
		fmt.Fprint(w, `{"results": [{"species": "Phoca vitulina", "decimalLatitude": 36.6}]}`)
	}))
	defer ts.Close()

	orig := gbifAPIBase
	gbifAPIBase = ts.URL
	defer func() { gbifAPIBase = orig }()

	s := &GBIF{Client: ts.Client(), UserAgent: "test/0.1", Limit: 500, TaxonKey: 2433451}
	res, err := s.Fetch(context.Background(), testRegion(), testDates())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.Count() != 1 {
		t.Errorf("Count = %d, want 1", res.Count())
	}

	if gotQuery["decimalLatitude"] != "36,37" {
		t.Errorf("decimalLatitude = %q, want 36,37", gotQuery["decimalLatitude"])
	}
	if gotQuery["decimalLongitude"] != "-122.5,-121.5" {
		t.Errorf("decimalLongitude = %q, want -122.5,-121.5", gotQuery["decimalLongitude"])
	}
	if gotQuery["eventDate"] != "2026-07-01,2026-07-31" {
		t.Errorf("eventDate = %q", gotQuery["eventDate"])
	}
	// The requested 500 is capped at GBIF's server-side page maximum.
	if gotQuery["limit"] != "300" {
		t.Errorf("limit = %q, want 300", gotQuery["limit"])
	}
	if gotQuery["basisOfRecord"] != "OBSERVATION" {
		t.Errorf("basisOfRecord = %q", gotQuery["basisOfRecord"])
	}
	if gotQuery["taxonKey"] != "2433451" {
		t.Errorf("taxonKey = %q, want 2433451", gotQuery["taxonKey"])
	}
}

func TestGBIFFetchNoTaxonKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("taxonKey") {
			t.Error("taxonKey sent despite zero config")
		}
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer ts.Close()

	orig := gbifAPIBase
	gbifAPIBase = ts.URL
	defer func() { gbifAPIBase = orig }()

	s := &GBIF{Client: ts.Client(), Limit: 100}
	res, err := s.Fetch(context.Background(), testRegion(), testDates())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.Kind != types.KindRecords || res.Count() != 0 {
		t.Errorf("result = %s/%d, want empty records", res.Kind, res.Count())
	}
}

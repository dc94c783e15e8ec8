// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestArgoFetch(t *testing.T) {
	var gotShape string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/selection/profiles" {
			t.Errorf("path = %q, want /selection/profiles", r.URL.Path)
		}
		gotShape = r.URL.Query().Get("shape")
		fmt.Fprint(w, `[{"_id": "5906543_101", "date": "2026-07-10"}, {"_id": "5906543_102", "date": "2026-07-20"}]`)
	}))
	defer ts.Close()

	orig := argovisAPIBase
	argovisAPIBase = ts.URL
	defer func() { argovisAPIBase = orig }()

	s := &Argo{Client: ts.Client(), Limit: 500}
	res, err := s.Fetch(context.Background(), testRegion(), testDates())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.Count() != 2 {
		t.Errorf("Count = %d, want 2", res.Count())
	}

	// The shape parameter is a closed polygon ring: five vertices, the last
	// repeating the first.
	var ring [][][2]float64
	if err := json.Unmarshal([]byte(gotShape), &ring); err != nil {
		t.Fatalf("shape param not valid JSON: %v", err)
	}
	if len(ring) != 1 || len(ring[0]) != 5 {
		t.Fatalf("ring shape = %d/%d vertices, want 1 ring of 5", len(ring), len(ring[0]))
	}
	if ring[0][0] != ring[0][4] {
		t.Errorf("ring not closed: first %v, last %v", ring[0][0], ring[0][4])
	}
	if ring[0][0] != [2]float64{-122.5, 36} {
		t.Errorf("first vertex = %v, want [-122.5 36]", ring[0][0])
	}
}

func TestArgoFetchRetriesOnThrottle(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `[{"_id": "5906543_101"}]`)
	}))
	defer ts.Close()

	orig := argovisAPIBase
	argovisAPIBase = ts.URL
	defer func() { argovisAPIBase = orig }()

	s := &Argo{Client: ts.Client(), Limit: 10}
	res, err := s.Fetch(context.Background(), testRegion(), testDates())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.Count() != 1 {
		t.Errorf("Count = %d, want 1", res.Count())
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("upstream calls = %d, want 2 (one retry after 503)", n)
	}
}

func TestArgoFetchAppliesLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"_id": "a"}, {"_id": "b"}, {"_id": "c"}]`)
	}))
	defer ts.Close()

	orig := argovisAPIBase
	argovisAPIBase = ts.URL
	defer func() { argovisAPIBase = orig }()

	s := &Argo{Client: ts.Client(), Limit: 2}
	res, err := s.Fetch(context.Background(), testRegion(), testDates())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.Count() != 2 {
		t.Errorf("Count = %d, want 2 (client-side limit)", res.Count())
	}
}

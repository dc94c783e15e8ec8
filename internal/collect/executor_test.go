// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pdiddy/marine-engine/pkg/types"
)

func tasksFrom(srcs []Source) []Task {
	return buildTasks(srcs, testRegion(), testDates(), DefaultOptions())
}

func TestRunTasksCollectsAllResults(t *testing.T) {
	srcs := []Source{
		&fakeSource{name: "obis_occurrences", res: nRecords(3)},
		&fakeSource{name: "noaa_buoys", res: nRecords(2)},
		&fakeSource{name: "glodap_carbon_stations", res: nRecords(5)},
	}

	results, failures := runTasks(context.Background(), tasksFrom(srcs), 5, time.Second, io.Discard)
	if len(failures) != 0 {
		t.Fatalf("failures = %v, want none", failures)
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if got := results["glodap_carbon_stations"].Count(); got != 5 {
		t.Errorf("glodap count = %d, want 5", got)
	}
}

func TestRunTasksIsolatesFailures(t *testing.T) {
	boom := errors.New("upstream exploded")
	srcs := []Source{
		&fakeSource{name: "obis_occurrences", res: nRecords(3)},
		&fakeSource{name: "noaa_buoys", err: boom},
		&fakeSource{name: "glodap_carbon_stations", res: nRecords(5)},
	}

	results, failures := runTasks(context.Background(), tasksFrom(srcs), 5, time.Second, io.Discard)

	if len(failures) != 1 {
		t.Fatalf("len(failures) = %d, want 1: %v", len(failures), failures)
	}
	if failures[0].Task != "noaa_buoys" {
		t.Errorf("failures[0].Task = %q, want noaa_buoys", failures[0].Task)
	}
	if _, ok := results["noaa_buoys"]; ok {
		t.Error("failed task should have no result entry")
	}
	for _, name := range []string{"obis_occurrences", "glodap_carbon_stations"} {
		if !results[name].Present() {
			t.Errorf("sibling task %s lost its result", name)
		}
	}
}

func TestRunTasksTimeout(t *testing.T) {
	srcs := []Source{
		&fakeSource{name: "obis_occurrences", res: nRecords(1)},
		&fakeSource{name: "noaa_buoys", res: nRecords(1), delay: 5 * time.Second},
	}

	start := time.Now()
	results, failures := runTasks(context.Background(), tasksFrom(srcs), 5, 50*time.Millisecond, io.Discard)
	elapsed := time.Since(start)

	if elapsed > time.Second {
		t.Fatalf("runTasks took %v, should return shortly after the 50ms timeout", elapsed)
	}
	if len(failures) != 1 || failures[0].Task != "noaa_buoys" {
		t.Fatalf("failures = %v, want the blocked task recorded", failures)
	}
	if _, ok := results["noaa_buoys"]; ok {
		t.Error("timed-out task should have no result entry")
	}
	if !results["obis_occurrences"].Present() {
		t.Error("fast sibling should be unaffected by the timeout")
	}
}

func TestRunTasksOrderIndependence(t *testing.T) {
	// The same task set with opposite completion orders must fold to an
	// identical result map.
	forward := []Source{
		&fakeSource{name: "obis_occurrences", res: nRecords(3), delay: 5 * time.Millisecond},
		&fakeSource{name: "glodap_carbon_stations", res: nRecords(7), delay: 40 * time.Millisecond},
	}
	reverse := []Source{
		&fakeSource{name: "obis_occurrences", res: nRecords(3), delay: 40 * time.Millisecond},
		&fakeSource{name: "glodap_carbon_stations", res: nRecords(7), delay: 5 * time.Millisecond},
	}

	a, _ := runTasks(context.Background(), tasksFrom(forward), 2, time.Second, io.Discard)
	b, _ := runTasks(context.Background(), tasksFrom(reverse), 2, time.Second, io.Discard)

	if len(a) != len(b) {
		t.Fatalf("result sizes differ: %d vs %d", len(a), len(b))
	}
	for name, res := range a {
		other, ok := b[name]
		if !ok {
			t.Fatalf("task %s missing from reversed run", name)
		}
		if res.Count() != other.Count() || res.Kind != other.Kind {
			t.Errorf("task %s differs across orders: %+v vs %+v", name, res, other)
		}
	}
}

func TestRunTasksBoundsConcurrency(t *testing.T) {
	const maxWorkers = 2

	var running, peak int32
	var mu sync.Mutex
	srcs := make([]Source, 8)
	for i := range srcs {
		srcs[i] = &trackedSource{
			name:    fmt.Sprintf("task_%d", i),
			running: &running,
			peak:    &peak,
			mu:      &mu,
		}
	}

	runTasks(context.Background(), tasksFrom(srcs), maxWorkers, time.Second, io.Discard)

	if p := atomic.LoadInt32(&peak); p > maxWorkers {
		t.Errorf("peak concurrency = %d, want <= %d", p, maxWorkers)
	}
}

// trackedSource records peak concurrent Fetch calls.
type trackedSource struct {
	name    string
	running *int32
	peak    *int32
	mu      *sync.Mutex
}

func (s *trackedSource) Name() string { return s.name }

func (s *trackedSource) Fetch(context.Context, types.Region, types.DateRange) (types.Result, error) {
	n := atomic.AddInt32(s.running, 1)
	s.mu.Lock()
	if n > *s.peak {
		*s.peak = n
	}
	s.mu.Unlock()
	time.Sleep(10 * time.Millisecond)
	atomic.AddInt32(s.running, -1)
	return nRecords(1), nil
}

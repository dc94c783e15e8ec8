// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pdiddy/marine-engine/pkg/types"
)

// fakeSource is a deterministic Source for core tests.
type fakeSource struct {
	name  string
	res   types.Result
	err   error
	delay time.Duration
	calls *int32
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(ctx context.Context, _ types.Region, _ types.DateRange) (types.Result, error) {
	if f.calls != nil {
		atomic.AddInt32(f.calls, 1)
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return types.Absent(), ctx.Err()
		}
	}
	if f.err != nil {
		return types.Absent(), f.err
	}
	return f.res, nil
}

func testRegion() types.Region {
	return types.Region{West: -122.5, East: -121.5, South: 36, North: 37}
}

func testDates() types.DateRange {
	return types.DateRange{Start: "2026-07-01", End: "2026-07-31"}
}

// nRecords builds a record-sequence result with n rows.
func nRecords(n int) types.Result {
	records := make([]types.Record, n)
	for i := range records {
		records[i] = types.Record{"i": i}
	}
	return types.RecordsResult(records)
}

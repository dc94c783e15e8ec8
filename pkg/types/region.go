// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the marine-engine collector:
// geographic regions, date ranges, normalized source results, the fixed set of
// data categories, and per-stage configuration.
package types

import (
	"errors"
	"fmt"
	"time"
)

// Validation failures surfaced by Collect before any source is contacted.
// Callers distinguish them with errors.Is.
var (
	ErrInvalidRegion    = errors.New("invalid region")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Region is a geographic bounding box in decimal degrees.
type Region struct {
	West  float64 `json:"west" yaml:"west"`
	East  float64 `json:"east" yaml:"east"`
	South float64 `json:"south" yaml:"south"`
	North float64 `json:"north" yaml:"north"`
}

// Validate checks coordinate ranges and box orientation.
func (r Region) Validate() error {
	if r.South < -90 || r.South > 90 || r.North < -90 || r.North > 90 {
		return fmt.Errorf("%w: latitude out of range [-90, 90]: south=%g north=%g",
			ErrInvalidRegion, r.South, r.North)
	}
	if r.West < -180 || r.West > 180 || r.East < -180 || r.East > 180 {
		return fmt.Errorf("%w: longitude out of range [-180, 180]: west=%g east=%g",
			ErrInvalidRegion, r.West, r.East)
	}
	if r.West >= r.East {
		return fmt.Errorf("%w: west (%g) must be less than east (%g)", ErrInvalidRegion, r.West, r.East)
	}
	if r.South >= r.North {
		return fmt.Errorf("%w: south (%g) must be less than north (%g)", ErrInvalidRegion, r.South, r.North)
	}
	return nil
}

// dateLayout is the ISO 8601 calendar date format all sources accept.
const dateLayout = "2006-01-02"

// DateRange is an inclusive calendar date interval in YYYY-MM-DD form.
type DateRange struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// Validate checks that both dates parse and that Start is not after End.
func (d DateRange) Validate() error {
	start, err := time.Parse(dateLayout, d.Start)
	if err != nil {
		return fmt.Errorf("%w: start %q is not a YYYY-MM-DD date", ErrInvalidDateRange, d.Start)
	}
	end, err := time.Parse(dateLayout, d.End)
	if err != nil {
		return fmt.Errorf("%w: end %q is not a YYYY-MM-DD date", ErrInvalidDateRange, d.End)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidDateRange, d.Start, d.End)
	}
	return nil
}

// Times returns the parsed endpoints. Call Validate first; Times returns
// zero values for unparseable dates.
func (d DateRange) Times() (start, end time.Time) {
	start, _ = time.Parse(dateLayout, d.Start)
	end, _ = time.Parse(dateLayout, d.End)
	return start, end
}

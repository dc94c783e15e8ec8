// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect is the aggregation core: it fans run parameters out to the
// registered sources under a bounded worker pool, isolates per-source
// failures, folds whatever came back into the six fixed categories, and
// derives summary statistics and a dataset catalog.
package collect

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/marine-engine/pkg/types"
)

const (
	defaultMaxWorkers  = 5
	defaultTaskTimeout = 90 * time.Second
)

// Options tune one collection run.
type Options struct {
	// Targets restricts the run to the named tasks; empty means all.
	Targets []string

	// IncludeEnvironmental includes environmental-category tasks.
	IncludeEnvironmental bool

	// MaxWorkers bounds concurrent source tasks (default 5).
	MaxWorkers int

	// TaskTimeout bounds one source task (default 90s).
	TaskTimeout time.Duration
}

// DefaultOptions returns the options a plain run uses.
func DefaultOptions() Options {
	return Options{
		IncludeEnvironmental: true,
		MaxWorkers:           defaultMaxWorkers,
		TaskTimeout:          defaultTaskTimeout,
	}
}

// Metadata describes one completed run.
type Metadata struct {
	RunID     string          `json:"run_id" yaml:"run_id"`
	Region    types.Region    `json:"region" yaml:"region"`
	DateRange types.DateRange `json:"date_range" yaml:"date_range"`
	Timestamp time.Time       `json:"timestamp" yaml:"timestamp"`

	// DataSources lists the task names that produced a non-empty result, sorted.
	DataSources []string `json:"data_sources" yaml:"data_sources"`

	// Failures lists the tasks that failed or timed out.
	Failures []TaskError `json:"failures,omitempty" yaml:"failures,omitempty"`

	Summary Summary `json:"summary" yaml:"summary"`
}

// Collection is the fully assembled output of one run: the categorized
// result tree plus run metadata. All six category keys are always present,
// possibly holding empty maps.
type Collection struct {
	Categorized map[types.Category]map[string]types.Result `json:"categorized_results" yaml:"categorized_results"`
	Metadata    Metadata                                    `json:"metadata" yaml:"metadata"`
}

// Collector aggregates data from a fixed set of sources. The Log writer
// receives per-source warnings; it is the run's only observability sink.
type Collector struct {
	sources []Source
	log     io.Writer
}

// New returns a Collector over the given sources. A nil log writer
// discards warnings.
func New(sources []Source, log io.Writer) *Collector {
	if log == nil {
		log = io.Discard
	}
	return &Collector{sources: sources, log: log}
}

// Collect runs one best-effort collection. It validates inputs eagerly and
// returns types.ErrInvalidRegion or types.ErrInvalidDateRange (wrapped)
// before launching any task. Per-source failures are absorbed into the
// metadata; even a run where every source fails returns successfully with
// empty categories and a zero-record summary. A source that succeeds with
// an empty payload contributes nothing: only non-empty results are folded
// into the store and listed as data sources.
func (c *Collector) Collect(ctx context.Context, region types.Region, dates types.DateRange, opts Options) (*Collection, error) {
	if err := region.Validate(); err != nil {
		return nil, err
	}
	if err := dates.Validate(); err != nil {
		return nil, err
	}

	tasks := buildTasks(c.sources, region, dates, opts)
	results, failures := runTasks(ctx, tasks, opts.MaxWorkers, opts.TaskTimeout, c.log)

	categorized := emptyStore()
	var sourcesOK []string
	for name, res := range results {
		if res.Count() == 0 {
			continue
		}
		categorized[Categorize(name)][name] = res
		sourcesOK = append(sourcesOK, name)
	}
	sort.Strings(sourcesOK)

	return &Collection{
		Categorized: categorized,
		Metadata: Metadata{
			RunID:       uuid.NewString(),
			Region:      region,
			DateRange:   dates,
			Timestamp:   time.Now().UTC(),
			DataSources: sourcesOK,
			Failures:    failures,
			Summary:     buildSummary(categorized, len(tasks), len(failures)),
		},
	}, nil
}

// emptyStore returns a categorized store with all six category keys present.
func emptyStore() map[types.Category]map[string]types.Result {
	store := make(map[types.Category]map[string]types.Result, len(types.Categories()))
	for _, cat := range types.Categories() {
		store[cat] = make(map[string]types.Result)
	}
	return store
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"

	"github.com/pdiddy/marine-engine/pkg/types"
)

// Source fetches one upstream dataset for a region and date range. Each
// upstream API (OBIS, GBIF, NDBC, ...) implements this interface per the
// Strategy pattern; the core is agnostic to transport and credentials.
type Source interface {
	Name() string
	Fetch(ctx context.Context, region types.Region, dates types.DateRange) (types.Result, error)
}

// Task is one named, bound source invocation within a run.
type Task struct {
	Name string
	Run  func(ctx context.Context) (types.Result, error)
}

// buildTasks produces the ordered task list for one run. It is a pure
// function of the run parameters: no I/O happens until the executor invokes
// a task. Targets, when non-empty, restricts the list to the named tasks.
// Environmental-category tasks are included only when includeEnvironmental
// is set. Duplicate source names are dropped (first registration wins).
func buildTasks(sources []Source, region types.Region, dates types.DateRange, opts Options) []Task {
	targets := make(map[string]bool, len(opts.Targets))
	for _, t := range opts.Targets {
		targets[t] = true
	}

	seen := make(map[string]bool, len(sources))
	tasks := make([]Task, 0, len(sources))
	for _, src := range sources {
		name := src.Name()
		if seen[name] {
			continue
		}
		seen[name] = true

		if len(targets) > 0 && !targets[name] {
			continue
		}
		if !opts.IncludeEnvironmental && Categorize(name) == types.CategoryEnvironmental {
			continue
		}

		src := src
		tasks = append(tasks, Task{
			Name: name,
			Run: func(ctx context.Context) (types.Result, error) {
				return src.Fetch(ctx, region, dates)
			},
		})
	}
	return tasks
}

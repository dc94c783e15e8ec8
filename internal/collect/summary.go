// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"fmt"
	"sort"

	"github.com/pdiddy/marine-engine/pkg/types"
)

// Summary holds the derived statistics over one run's categorized store.
type Summary struct {
	// TotalDatasets counts the tasks with a present result.
	TotalDatasets int `json:"total_datasets" yaml:"total_datasets"`

	// TotalRecords sums Result.Count over all present results.
	TotalRecords int `json:"total_records" yaml:"total_records"`

	// DataTypes lists the categories with at least one dataset, sorted.
	DataTypes []string `json:"data_types" yaml:"data_types"`

	// SourcesAttempted and SourcesFailed describe the run's success ratio.
	SourcesAttempted int `json:"sources_attempted" yaml:"sources_attempted"`
	SourcesFailed    int `json:"sources_failed" yaml:"sources_failed"`

	// Advisory is set when more than half the attempted sources failed.
	// It is a metadata signal, never an error: the run still succeeds.
	Advisory string `json:"advisory,omitempty" yaml:"advisory,omitempty"`
}

// buildSummary recomputes the summary from a categorized store. It is a
// pure projection; the store is never mutated.
func buildSummary(store map[types.Category]map[string]types.Result, attempted, failed int) Summary {
	s := Summary{
		SourcesAttempted: attempted,
		SourcesFailed:    failed,
	}

	var dataTypes []string
	for cat, datasets := range store {
		if len(datasets) == 0 {
			continue
		}
		dataTypes = append(dataTypes, string(cat))
		for _, res := range datasets {
			s.TotalDatasets++
			s.TotalRecords += res.Count()
		}
	}
	sort.Strings(dataTypes)
	s.DataTypes = dataTypes

	if failed > 0 && attempted > 0 && failed*2 > attempted {
		s.Advisory = fmt.Sprintf("partial collection: %d of %d sources failed", failed, attempted)
	}

	return s
}

// DatasetInfo describes one retrieved dataset in the catalog.
type DatasetInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Kind        string   `json:"kind" yaml:"kind"`
	RecordCount int      `json:"record_count" yaml:"record_count"`
	Columns     []string `json:"columns,omitempty" yaml:"columns,omitempty"`
	Status      string   `json:"status" yaml:"status"`
}

// BuildCatalog derives a read-only index over a categorized store: one
// descriptor per task with a present result, grouped by category. Absent
// results produce no descriptor; the catalog only documents what was
// actually retrieved.
func BuildCatalog(store map[types.Category]map[string]types.Result) map[types.Category]map[string]DatasetInfo {
	catalog := make(map[types.Category]map[string]DatasetInfo)
	for cat, datasets := range store {
		for name, res := range datasets {
			if !res.Present() {
				continue
			}
			if catalog[cat] == nil {
				catalog[cat] = make(map[string]DatasetInfo)
			}
			catalog[cat][name] = DatasetInfo{
				Name:        name,
				Kind:        string(res.Kind),
				RecordCount: res.Count(),
				Columns:     res.Columns,
				Status:      "available",
			}
		}
	}
	return catalog
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/marine-engine/pkg/types"
)

// FormatReport writes a human-readable run report to w.
func FormatReport(col *Collection, w io.Writer) {
	m := col.Metadata
	fmt.Fprintf(w, "Run %s  (%s)\n", m.RunID, m.Timestamp.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Region: %g..%g E, %g..%g N   Dates: %s to %s\n\n",
		m.Region.West, m.Region.East, m.Region.South, m.Region.North,
		m.DateRange.Start, m.DateRange.End)

	fmt.Fprintf(w, "%-24s  %-30s  %-8s  %s\n", "Category", "Dataset", "Kind", "Records")
	fmt.Fprintln(w, strings.Repeat("-", 78))

	for _, cat := range types.Categories() {
		datasets := col.Categorized[cat]
		if len(datasets) == 0 {
			continue
		}
		names := make([]string, 0, len(datasets))
		for name := range datasets {
			names = append(names, name)
		}
		sort.Strings(names)

		label := string(cat)
		for _, name := range names {
			res := datasets[name]
			fmt.Fprintf(w, "%-24s  %-30s  %-8s  %d\n", label, name, res.Kind, res.Count())
			label = ""
		}
	}

	s := m.Summary
	fmt.Fprintf(w, "\n%d datasets, %d records across %d categories (%d of %d sources failed)\n",
		s.TotalDatasets, s.TotalRecords, len(s.DataTypes), s.SourcesFailed, s.SourcesAttempted)
	for _, f := range m.Failures {
		fmt.Fprintf(w, "  failed: %s (%s)\n", f.Task, f.Detail)
	}
	if s.Advisory != "" {
		fmt.Fprintf(w, "advisory: %s\n", s.Advisory)
	}
}

// FormatCatalog writes a dataset catalog as a human-readable table to w.
func FormatCatalog(catalog map[types.Category]map[string]DatasetInfo, w io.Writer) {
	total := 0
	for _, datasets := range catalog {
		total += len(datasets)
	}
	if total == 0 {
		fmt.Fprintln(w, "No datasets available.")
		return
	}

	fmt.Fprintf(w, "%-24s  %-30s  %-8s  %-8s  %s\n", "Category", "Dataset", "Kind", "Records", "Columns")
	fmt.Fprintln(w, strings.Repeat("-", 92))

	for _, cat := range types.Categories() {
		datasets := catalog[cat]
		if len(datasets) == 0 {
			continue
		}
		names := make([]string, 0, len(datasets))
		for name := range datasets {
			names = append(names, name)
		}
		sort.Strings(names)

		label := string(cat)
		for _, name := range names {
			info := datasets[name]
			cols := ""
			if len(info.Columns) > 0 {
				cols = strings.Join(info.Columns, ",")
				if len(cols) > 40 {
					cols = cols[:37] + "..."
				}
			}
			fmt.Fprintf(w, "%-24s  %-30s  %-8s  %-8d  %s\n", label, name, info.Kind, info.RecordCount, cols)
			label = ""
		}
	}

	fmt.Fprintf(w, "\n%d datasets\n", total)
}

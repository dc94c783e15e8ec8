// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/marine-engine/pkg/types"
)

// ExportJSON writes an archived run to dataDir/exports/[id].json and
// returns the file path.
func (s *Store) ExportJSON(ctx context.Context, id string) (string, error) {
	col, err := s.GetRun(ctx, id)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.dataDir, exportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating exports directory: %w", err)
	}

	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(dir, id+".json")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportYAML writes an archived run to dataDir/exports/[id].yaml and
// returns the file path.
func (s *Store) ExportYAML(ctx context.Context, id string) (string, error) {
	col, err := s.GetRun(ctx, id)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.dataDir, exportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating exports directory: %w", err)
	}

	data, err := yaml.Marshal(col)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(dir, id+".yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportCSV writes every record-sequence dataset of an archived run to
// dataDir/exports/[id]/[category]/[name].csv and returns the file paths.
// Mapping and scalar datasets are skipped; they have no row structure.
func (s *Store) ExportCSV(ctx context.Context, id string) ([]string, error) {
	col, err := s.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}

	var paths []string
	for cat, datasets := range col.Categorized {
		for name, res := range datasets {
			if res.Kind != types.KindRecords || len(res.Records) == 0 {
				continue
			}

			dir := filepath.Join(s.dataDir, exportsDir, id, string(cat))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating export directory: %w", err)
			}
			path := filepath.Join(dir, name+".csv")
			if err := writeCSV(path, res); err != nil {
				return nil, fmt.Errorf("exporting %s: %w", name, err)
			}
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// writeCSV writes one record set. The header comes from Result.Columns when
// the dataset is tabular, otherwise from the sorted keys of the first record.
func writeCSV(path string, res types.Result) error {
	columns := res.Columns
	if len(columns) == 0 {
		for k := range res.Records[0] {
			columns = append(columns, k)
		}
		sort.Strings(columns)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return err
	}
	row := make([]string, len(columns))
	for _, rec := range res.Records {
		for i, c := range columns {
			if v, ok := rec[c]; ok {
				row[i] = fmt.Sprint(v)
			} else {
				row[i] = ""
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

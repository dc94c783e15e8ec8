// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists completed collection runs to a local SQLite
// database and exports them to YAML, JSON, and CSV. It is a consumer of the
// collect output: nothing in the aggregation core depends on it.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/marine-engine/internal/collect"
	"github.com/pdiddy/marine-engine/pkg/types"
)

const (
	indexDir   = "index"
	exportsDir = "exports"
	dbFile     = "marine.db"
)

// Store manages the run archive SQLite database.
type Store struct {
	db      *sql.DB
	dataDir string
}

// NewStore opens or creates the archive database at dataDir/index/marine.db,
// creating the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dataDir: cfg.DataDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			region TEXT NOT NULL,
			date_range TEXT NOT NULL,
			data_sources TEXT,
			failures TEXT,
			summary TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS datasets (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			record_count INTEGER NOT NULL,
			payload TEXT NOT NULL,
			PRIMARY KEY (run_id, name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_datasets_category ON datasets(category)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun archives one completed collection atomically.
func (s *Store) SaveRun(ctx context.Context, col *collect.Collection) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	regionJSON, _ := json.Marshal(col.Metadata.Region)
	datesJSON, _ := json.Marshal(col.Metadata.DateRange)
	sourcesJSON, _ := json.Marshal(col.Metadata.DataSources)
	failuresJSON, _ := json.Marshal(col.Metadata.Failures)
	summaryJSON, _ := json.Marshal(col.Metadata.Summary)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, region, date_range, data_sources, failures, summary)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		col.Metadata.RunID, col.Metadata.Timestamp.Format(time.RFC3339),
		string(regionJSON), string(datesJSON),
		string(sourcesJSON), string(failuresJSON), string(summaryJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO datasets (run_id, category, name, kind, record_count, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for cat, datasets := range col.Categorized {
		for name, res := range datasets {
			payload, err := json.Marshal(res)
			if err != nil {
				return fmt.Errorf("encoding dataset %s: %w", name, err)
			}
			if _, err := stmt.ExecContext(ctx,
				col.Metadata.RunID, string(cat), name, string(res.Kind), res.Count(), string(payload),
			); err != nil {
				return fmt.Errorf("inserting dataset %s: %w", name, err)
			}
		}
	}

	return tx.Commit()
}

// RunInfo summarizes one archived run for listings.
type RunInfo struct {
	ID            string          `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	Region        types.Region    `json:"region"`
	DateRange     types.DateRange `json:"date_range"`
	TotalDatasets int             `json:"total_datasets"`
	TotalRecords  int             `json:"total_records"`
}

// ListRuns returns archived runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, region, date_range, summary FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var info RunInfo
		var createdAt, regionJSON, datesJSON, summaryJSON string
		if err := rows.Scan(&info.ID, &createdAt, &regionJSON, &datesJSON, &summaryJSON); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		json.Unmarshal([]byte(regionJSON), &info.Region)
		json.Unmarshal([]byte(datesJSON), &info.DateRange)
		var summary collect.Summary
		if json.Unmarshal([]byte(summaryJSON), &summary) == nil {
			info.TotalDatasets = summary.TotalDatasets
			info.TotalRecords = summary.TotalRecords
		}
		runs = append(runs, info)
	}
	return runs, rows.Err()
}

// LatestRunID returns the most recently archived run's ID.
func (s *Store) LatestRunID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM runs ORDER BY created_at DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("archive is empty")
	}
	if err != nil {
		return "", fmt.Errorf("querying latest run: %w", err)
	}
	return id, nil
}

// GetRun reconstructs an archived collection, including all six category
// keys even when some hold no datasets.
func (s *Store) GetRun(ctx context.Context, id string) (*collect.Collection, error) {
	var createdAt, regionJSON, datesJSON, sourcesJSON, failuresJSON, summaryJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT created_at, region, date_range, data_sources, failures, summary
		 FROM runs WHERE id = ?`, id).
		Scan(&createdAt, &regionJSON, &datesJSON, &sourcesJSON, &failuresJSON, &summaryJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", id, err)
	}

	col := &collect.Collection{
		Categorized: make(map[types.Category]map[string]types.Result, len(types.Categories())),
		Metadata:    collect.Metadata{RunID: id},
	}
	for _, cat := range types.Categories() {
		col.Categorized[cat] = make(map[string]types.Result)
	}
	col.Metadata.Timestamp, _ = time.Parse(time.RFC3339, createdAt)
	json.Unmarshal([]byte(regionJSON), &col.Metadata.Region)
	json.Unmarshal([]byte(datesJSON), &col.Metadata.DateRange)
	json.Unmarshal([]byte(sourcesJSON), &col.Metadata.DataSources)
	json.Unmarshal([]byte(failuresJSON), &col.Metadata.Failures)
	json.Unmarshal([]byte(summaryJSON), &col.Metadata.Summary)

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, name, payload FROM datasets WHERE run_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("querying datasets for run %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var category, name, payload string
		if err := rows.Scan(&category, &name, &payload); err != nil {
			return nil, fmt.Errorf("scanning dataset: %w", err)
		}
		var res types.Result
		if err := json.Unmarshal([]byte(payload), &res); err != nil {
			return nil, fmt.Errorf("decoding dataset %s: %w", name, err)
		}
		cat := types.Category(category)
		if col.Categorized[cat] == nil {
			col.Categorized[cat] = make(map[string]types.Result)
		}
		col.Categorized[cat][name] = res
	}
	return col, rows.Err()
}

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtnitsch/wikitable-features/models"
)

// Run describes one stored extraction run.
type Run struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	Source    string    `json:"source" yaml:"source"`
	Bins      int       `json:"bins" yaml:"bins"`
	Records   int       `json:"records" yaml:"records"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// StoredRecord is a table record's identity with its stored features.
type StoredRecord struct {
	RecordID        int64             `json:"record_id" yaml:"record_id"`
	Entity          string            `json:"entity" yaml:"entity"`
	Section         string            `json:"section" yaml:"section"`
	TableID         int               `json:"table_id" yaml:"table_id"`
	Label           string            `json:"label" yaml:"label"`
	LabelConfidence float64           `json:"label_confidence" yaml:"label_confidence"`
	ContentHash     string            `json:"content_hash" yaml:"content_hash"`
	Features        models.FeatureSet `json:"features" yaml:"features"`
}

// CreateRun registers a new run and returns its id.
func (db *DB) CreateRun(source string, bins int) (string, error) {
	runID := uuid.New().String()
	_, err := db.Exec(`
		INSERT INTO runs (run_id, source, bins)
		VALUES (?, ?, ?)
	`, runID, source, bins)
	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}
	return runID, nil
}

// SaveFeatures stores a record and its features under runID. Saving the same
// content twice in one run returns the existing record id.
func (db *DB) SaveFeatures(runID string, t *models.TableRecord, contentHash string, fs models.FeatureSet) (int64, error) {
	var existingID int64
	err := db.QueryRow(`
		SELECT record_id FROM table_records WHERE run_id = ? AND content_hash = ?
	`, runID, contentHash).Scan(&existingID)
	if err == nil {
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing record: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(`
		INSERT INTO table_records (run_id, entity, section, table_id, label, label_confidence, num_rows, num_cols, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, t.Entity, t.Section, t.TableID, t.Label, t.LabelConfidence, len(t.TableRows), len(t.Columns), contentHash)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	recordID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get record ID: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO features (record_id, key, value) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare feature insert: %w", err)
	}
	defer stmt.Close()

	for _, key := range fs.Keys() {
		if _, err := stmt.Exec(recordID, key, fs[key]); err != nil {
			return 0, fmt.Errorf("failed to insert feature %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit record: %w", err)
	}
	return recordID, nil
}

// GetRunFeatures returns every record of a run with its features, in insert order.
func (db *DB) GetRunFeatures(runID string) ([]StoredRecord, error) {
	rows, err := db.Query(`
		SELECT record_id, entity, section, table_id, label, label_confidence, content_hash
		FROM table_records
		WHERE run_id = ?
		ORDER BY record_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}

	var records []StoredRecord
	for rows.Next() {
		var r StoredRecord
		if err := rows.Scan(&r.RecordID, &r.Entity, &r.Section, &r.TableID, &r.Label, &r.LabelConfidence, &r.ContentHash); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range records {
		fs, err := db.getFeatures(records[i].RecordID)
		if err != nil {
			return nil, err
		}
		records[i].Features = fs
	}
	return records, nil
}

func (db *DB) getFeatures(recordID int64) (models.FeatureSet, error) {
	rows, err := db.Query(`SELECT key, value FROM features WHERE record_id = ?`, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query features: %w", err)
	}
	defer rows.Close()

	fs := models.FeatureSet{}
	for rows.Next() {
		var key string
		var value float64
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		fs[key] = value
	}
	return fs, rows.Err()
}

// ListRuns returns all runs, newest first, with their record counts.
func (db *DB) ListRuns() ([]Run, error) {
	rows, err := db.Query(`
		SELECT r.run_id, r.source, r.bins, r.created_at, COUNT(t.record_id)
		FROM runs r
		LEFT JOIN table_records t ON t.run_id = r.run_id
		GROUP BY r.run_id
		ORDER BY r.created_at DESC, r.rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.Source, &r.Bins, &r.CreatedAt, &r.Records); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Package sqlite persists yearly calendar-mapping exports. Each export run
// records which profile and year were mapped plus the full day-by-day
// Gregorian-to-DSC table, so mappings can be regenerated, diffed, or served
// without re-deriving them.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/astrocycle/dectime/internal/app/calendar"
)

// DB wraps the SQLite connection for the export store.
type DB struct {
	db *sql.DB
}

// Migrations returns the schema migration statements.
// Each string is a single SQL statement (SQLite executes one at a time).
func Migrations() []string {
	return []string{
		// One row per export invocation
		`CREATE TABLE IF NOT EXISTS export_runs (
			id         TEXT PRIMARY KEY,
			profile    TEXT NOT NULL,
			year       INTEGER NOT NULL,
			day_count  INTEGER NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_export_runs_year ON export_runs(year)`,

		// Day-by-day mapping belonging to a run
		`CREATE TABLE IF NOT EXISTS day_mappings (
			run_id         TEXT NOT NULL,
			gregorian_date TEXT NOT NULL,
			dsc_year       INTEGER NOT NULL,
			dsc_month      INTEGER NOT NULL,
			dsc_day        INTEGER NOT NULL,
			formatted      TEXT NOT NULL,
			PRIMARY KEY (run_id, gregorian_date)
		)`,
	}
}

// Open opens (creating if needed) the export store and applies migrations.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store %s: %w", path, err)
	}
	for _, stmt := range Migrations() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply migration: %w", err)
		}
	}
	return &DB{db: db}, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error { return d.db.Close() }

// ExportRun describes one recorded export.
type ExportRun struct {
	ID        string
	Profile   string
	Year      int
	DayCount  int
	CreatedAt time.Time
}

// Mapping is one civil day and its DSC date.
type Mapping struct {
	Gregorian time.Time
	DSC       calendar.Date
}

// RecordRun stores a full year mapping atomically and returns the run ID.
func (d *DB) RecordRun(profile string, year int, mappings []Mapping) (string, error) {
	runID := uuid.NewString()

	tx, err := d.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin export transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO export_runs (id, profile, year, day_count, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		runID, profile, year, len(mappings), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("insert export run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO day_mappings (run_id, gregorian_date, dsc_year, dsc_month, dsc_day, formatted)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare mapping insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range mappings {
		_, err := stmt.Exec(runID, m.Gregorian.Format("2006-01-02"),
			m.DSC.Year, m.DSC.Month, m.DSC.Day, m.DSC.String())
		if err != nil {
			return "", fmt.Errorf("insert mapping for %s: %w", m.Gregorian.Format("2006-01-02"), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit export run: %w", err)
	}
	return runID, nil
}

// ListRuns returns recorded runs, newest first.
func (d *DB) ListRuns() ([]ExportRun, error) {
	rows, err := d.db.Query(`
		SELECT id, profile, year, day_count, created_at
		FROM export_runs ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("query export runs: %w", err)
	}
	defer rows.Close()

	var runs []ExportRun
	for rows.Next() {
		var r ExportRun
		var created string
		if err := rows.Scan(&r.ID, &r.Profile, &r.Year, &r.DayCount, &created); err != nil {
			return nil, fmt.Errorf("scan export run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunMappings returns a run's mappings in civil-date order.
func (d *DB) RunMappings(runID string) ([]Mapping, error) {
	rows, err := d.db.Query(`
		SELECT gregorian_date, dsc_year, dsc_month, dsc_day
		FROM day_mappings WHERE run_id = ? ORDER BY gregorian_date`, runID)
	if err != nil {
		return nil, fmt.Errorf("query mappings: %w", err)
	}
	defer rows.Close()

	var mappings []Mapping
	for rows.Next() {
		var m Mapping
		var gregorian string
		if err := rows.Scan(&gregorian, &m.DSC.Year, &m.DSC.Month, &m.DSC.Day); err != nil {
			return nil, fmt.Errorf("scan mapping: %w", err)
		}
		t, err := time.Parse("2006-01-02", gregorian)
		if err != nil {
			return nil, fmt.Errorf("bad gregorian_date %q: %w", gregorian, err)
		}
		m.Gregorian = t
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

// Package archive stores decoded reports in a SQLite database.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gometar/gometar/report"
)

// ErrInvalidLimit is returned by queries given a non-positive limit.
var ErrInvalidLimit = errors.New("archive: limit must be positive")

// DB wraps a database connection.
type DB struct {
	*sql.DB
}

// Record is one archived report.
type Record struct {
	ID         int64
	Location   string
	Type       string
	Error      string
	Raw        string
	Groups     int
	ReportTime *time.Time // resolved against ReceivedAt
	ReceivedAt time.Time
}

// NewRecord builds the archive form of a decoded report. raw is the report
// text as received.
func NewRecord(raw string, r report.Result, receivedAt time.Time) Record {
	rec := Record{
		Location:   r.Metadata.Location,
		Type:       r.Metadata.Type.String(),
		Raw:        raw,
		Groups:     len(r.Groups),
		ReceivedAt: receivedAt.UTC(),
	}
	if !r.OK() {
		rec.Error = r.Metadata.Error.String()
	}
	if t := r.Metadata.ReportTime; t != nil && t.HasDay() {
		abs := t.Resolve(receivedAt).UTC()
		rec.ReportTime = &abs
	}
	return rec
}

// Open opens (creating if needed) the SQLite database at path and
// initializes its schema. ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	location    TEXT NOT NULL,
	type        TEXT NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	raw         TEXT NOT NULL,
	groups      INTEGER NOT NULL,
	report_time TEXT,
	received_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS reports_location ON reports (location, received_at);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Save inserts records in a single transaction and sets their IDs.
func (db *DB) Save(ctx context.Context, recs ...*Record) error {
	if len(recs) == 0 {
		return nil
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO reports (location, type, error, raw, groups, report_time, received_at) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range recs {
		var reportTime sql.NullString
		if rec.ReportTime != nil {
			reportTime = sql.NullString{String: rec.ReportTime.Format(time.RFC3339), Valid: true}
		}
		res, err := stmt.ExecContext(ctx,
			rec.Location, rec.Type, rec.Error, rec.Raw, rec.Groups,
			reportTime, rec.ReceivedAt.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("insert report: %w", err)
		}
		if rec.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("insert report: %w", err)
		}
	}
	return tx.Commit()
}

// Latest returns up to limit records for a location, newest first.
func (db *DB) Latest(ctx context.Context, location string, limit int) ([]Record, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	rows, err := db.QueryContext(ctx,
		`SELECT id, location, type, error, raw, groups, report_time, received_at
		 FROM reports WHERE location = ? ORDER BY received_at DESC, id DESC LIMIT ?`,
		location, limit)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var (
			rec        Record
			reportTime sql.NullString
			receivedAt string
		)
		if err := rows.Scan(&rec.ID, &rec.Location, &rec.Type, &rec.Error, &rec.Raw,
			&rec.Groups, &reportTime, &receivedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		if rec.ReceivedAt, err = time.Parse(time.RFC3339Nano, receivedAt); err != nil {
			return nil, fmt.Errorf("scan report %d: %w", rec.ID, err)
		}
		if reportTime.Valid {
			t, err := time.Parse(time.RFC3339, reportTime.String)
			if err != nil {
				return nil, fmt.Errorf("scan report %d: %w", rec.ID, err)
			}
			rec.ReportTime = &t
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Count returns the number of archived reports.
func (db *DB) Count(ctx context.Context) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reports").Scan(&n); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return n, nil
}

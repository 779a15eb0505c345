// Package history records hook invocations in SQLite so users can see
// what the advisor decided and why, after the fact. The hook writes one
// row per run on a best-effort basis; a failed write never affects the
// advisory result.
package history

import (
	"database/sql"
	"time"
)

// Run is one recorded hook invocation.
type Run struct {
	ID              int64     `json:"id"`
	SessionID       string    `json:"session_id"`
	CreatedAt       time.Time `json:"created_at"`
	TranscriptChars int       `json:"transcript_chars"`
	SessionType     string    `json:"session_type"`
	Advised         bool      `json:"advised"`
	AdviceChars     int       `json:"advice_chars"`
	Error           string    `json:"error,omitempty"`
}

// RecordRun inserts a run and fills in its ID. A zero CreatedAt is set
// to the current time.
func (db *DB) RecordRun(r *Run) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	result, err := db.conn.Exec(
		`INSERT INTO runs
		(session_id, created_at, transcript_chars, session_type, advised, advice_chars, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.CreatedAt.Format(time.RFC3339), r.TranscriptChars,
		r.SessionType, r.Advised, r.AdviceChars, r.Error,
	)
	if err != nil {
		return err
	}

	r.ID, err = result.LastInsertId()
	return err
}

// RecentRuns returns up to limit runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	rows, err := db.conn.Query(
		`SELECT id, session_id, created_at, transcript_chars, session_type, advised, advice_chars, error
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// LastRun returns the most recent run, or nil if none exist.
func (db *DB) LastRun() (*Run, error) {
	row := db.conn.QueryRow(
		`SELECT id, session_id, created_at, transcript_chars, session_type, advised, advice_chars, error
		FROM runs ORDER BY id DESC LIMIT 1`)
	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return r, err
}

// CountRuns returns the total number of recorded runs.
func (db *DB) CountRuns() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n)
	return n, err
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var r Run
	var createdAt string
	if err := row.Scan(&r.ID, &r.SessionID, &createdAt, &r.TranscriptChars,
		&r.SessionType, &r.Advised, &r.AdviceChars, &r.Error); err != nil {
		return nil, err
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &r, nil
}

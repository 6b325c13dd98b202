// Package history is an optional, opt-in audit ledger: one row per
// successfully checked item, written to a local sqlite database so a user
// can see what was checked and when. It is never read back to decide
// whether to skip a check — pure side-channel record-keeping, switched on
// only when config.HistoryDBEnvVar is set.
//
// Grounded on the teacher's internal/evaluator/builtins_sql.go (the
// database/sql + modernc.org/sqlite wiring) and builtins_uuid.go (tagging
// each row with a run UUID).
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Ledger is a handle to the history database.
type Ledger struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS checks (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	file_path  TEXT NOT NULL,
	summary    TEXT NOT NULL,
	checked_at TEXT NOT NULL
);
`

// Open opens (creating if necessary) the sqlite database at path and
// ensures its schema exists.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: opening %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: connecting to %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: ensuring schema: %w", err)
	}
	return &Ledger{db: db}, nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

// RecordRun appends one row per rendered "name: type" line from a single
// successful run, all tagged with the same fresh run UUID.
func (l *Ledger) RecordRun(filePath string, lines []string, checkedAt time.Time) error {
	runID := uuid.New().String()
	stmt, err := l.db.Prepare(`INSERT INTO checks (run_id, file_path, summary, checked_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("history: preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, line := range lines {
		if _, err := stmt.Exec(runID, filePath, line, checkedAt.UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("history: recording %q: %w", line, err)
		}
	}
	return nil
}

// Entry is one recorded line of a past run.
type Entry struct {
	RunID     string
	FilePath  string
	Summary   string
	CheckedAt time.Time
}

// Recent returns the most recent entries, newest first, capped at limit.
func (l *Ledger) Recent(limit int) ([]Entry, error) {
	rows, err := l.db.Query(
		`SELECT run_id, file_path, summary, checked_at FROM checks ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: querying: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var checkedAt string
		if err := rows.Scan(&e.RunID, &e.FilePath, &e.Summary, &checkedAt); err != nil {
			return nil, fmt.Errorf("history: scanning row: %w", err)
		}
		e.CheckedAt, _ = time.Parse(time.RFC3339, checkedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FormatEntry renders an entry as a "3 minutes ago" style listing line.
func FormatEntry(e Entry) string {
	return fmt.Sprintf("%s  %s  %s", humanize.Time(e.CheckedAt), e.FilePath, e.Summary)
}

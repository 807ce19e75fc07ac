// Package history keeps a SQLite log of command lines run through the IPC
// server and the dialog. Bindings are not recorded here.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeFormat is fixed-width so created_at sorts lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// DefaultLimit is used by Recent when limit is not positive.
const DefaultLimit = 50

// Source names where a command line came from.
type Source string

const (
	SourceIPC     Source = "ipc"
	SourceDialog  Source = "dialog"
	SourceStartup Source = "startup"
	SourceCLI     Source = "cli"
)

// Entry is one executed command line.
type Entry struct {
	ID        string        `json:"id"`
	Line      string        `json:"line"`
	Source    Source        `json:"source"`
	Output    string        `json:"output,omitempty"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}

// OK reports whether the command succeeded.
func (e Entry) OK() bool { return e.Error == "" }

// Store reads and writes the command_log table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Record inserts e and returns it with ID and CreatedAt filled in when they
// were empty.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.Source == "" {
		return Entry{}, errors.New("history source is empty")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	e.CreatedAt = e.CreatedAt.UTC()

	var output, errText any
	if e.Output != "" {
		output = e.Output
	}
	if e.Error != "" {
		errText = e.Error
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO command_log(id, line, source, output, error, duration_us, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?);
`, e.ID, e.Line, string(e.Source), output, errText, e.Duration.Microseconds(), e.CreatedAt.Format(timeFormat))
	if err != nil {
		return Entry{}, fmt.Errorf("record command: %w", err)
	}
	return e, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, line, source, output, error, duration_us, created_at
FROM command_log
ORDER BY created_at DESC, rowid DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var (
			e          Entry
			source     string
			output     sql.NullString
			errText    sql.NullString
			durationUS int64
			createdAtS string
		)
		if err := rows.Scan(&e.ID, &e.Line, &source, &output, &errText, &durationUS, &createdAtS); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.Source = Source(source)
		e.Output = output.String
		e.Error = errText.String
		e.Duration = time.Duration(durationUS) * time.Microsecond
		if t, err := time.Parse(timeFormat, createdAtS); err == nil {
			e.CreatedAt = t
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

// Prune deletes entries older than retention and returns how many were
// removed. A non-positive retention keeps everything.
func (s *Store) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}

	cutoff := s.now().Add(-retention).UTC().Format(timeFormat)
	res, err := s.db.ExecContext(ctx, "DELETE FROM command_log WHERE created_at < ?;", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune history rows: %w", err)
	}
	return n, nil
}

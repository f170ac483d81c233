// Package archive keeps a local history of mene runs in SQLite. Each entry
// stores the command, its inputs, the outcome and the encoded report,
// compressed with zstd.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get for an unknown entry id.
var ErrNotFound = errors.New("archive: entry not found")

// Entry is one archived run.
type Entry struct {
	ID        string
	Command   string
	Inputs    []string
	Status    string
	StartedAt time.Time
	Duration  time.Duration

	// Payload is the encoded report. List leaves it nil; Get fills it.
	Payload []byte
}

// Store is an open archive database. It is safe for concurrent use.
type Store struct {
	conn *sql.DB
	enc  *zstd.Encoder
	dec  *zstd.Decoder
}

// Open opens or creates the archive at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("archive: create directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("archive: set pragma: %w", err)
		}
	}
	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("archive: initialize schema: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &Store{conn: conn, enc: enc, dec: dec}, nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		command TEXT NOT NULL,
		inputs TEXT NOT NULL,
		status TEXT NOT NULL,
		started_at TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		payload BLOB
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
`

// Close releases the database and codecs.
func (s *Store) Close() error {
	s.dec.Close()
	_ = s.enc.Close()

	return s.conn.Close()
}

// Record inserts e and returns its id. A new id is assigned when e.ID is
// empty; a zero StartedAt is set to now.
func (s *Store) Record(ctx context.Context, e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.StartedAt.IsZero() {
		e.StartedAt = time.Now()
	}
	inputs, err := json.Marshal(nonNil(e.Inputs))
	if err != nil {
		return "", err
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO runs (id, command, inputs, status, started_at, duration_ms, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Command,
		string(inputs),
		e.Status,
		e.StartedAt.UTC().Format(time.RFC3339Nano),
		e.Duration.Milliseconds(),
		s.enc.EncodeAll(e.Payload, nil),
	)
	if err != nil {
		return "", fmt.Errorf("archive: record %s: %w", e.Command, err)
	}

	return e.ID, nil
}

// List returns up to limit entries, newest first, without payloads.
// A non-positive limit lists everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, command, inputs, status, started_at, duration_ms
		FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scan(rows, false)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Get returns one entry with its decompressed payload.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT id, command, inputs, status, started_at, duration_ms, payload
		FROM runs WHERE id = ?`, id)
	e, err := scan(row, true)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Entry{}, err
	}
	if e.Payload, err = s.dec.DecodeAll(e.Payload, nil); err != nil {
		return Entry{}, fmt.Errorf("archive: decode payload of %s: %w", id, err)
	}

	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(r scanner, withPayload bool) (Entry, error) {
	var (
		e       Entry
		inputs  string
		started string
		ms      int64
	)
	dest := []any{&e.ID, &e.Command, &inputs, &e.Status, &started, &ms}
	if withPayload {
		dest = append(dest, &e.Payload)
	}
	if err := r.Scan(dest...); err != nil {
		return Entry{}, err
	}
	if err := json.Unmarshal([]byte(inputs), &e.Inputs); err != nil {
		return Entry{}, fmt.Errorf("archive: inputs of %s: %w", e.ID, err)
	}
	t, err := time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return Entry{}, fmt.Errorf("archive: started_at of %s: %w", e.ID, err)
	}
	e.StartedAt = t
	e.Duration = time.Duration(ms) * time.Millisecond

	return e, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

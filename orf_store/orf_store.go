// Package orf_store persists ORF finder runs in a SQLite database using the
// pure Go modernc.org/sqlite driver, so no CGO toolchain is needed.
//
// A run records which sequence (by BLAKE3 digest) was scanned with which
// parameters; its ORFs are stored in canonical (start, strand, frame) order.
package orf_store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// timeLayout is fixed width so created_at sorts as text in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var ErrRunNotFound = errors.New("run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	seq_id      TEXT NOT NULL,
	seq_digest  TEXT NOT NULL,
	genome_len  INTEGER NOT NULL,
	min_length  INTEGER NOT NULL,
	table_id    INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS orfs (
	run_id     TEXT NOT NULL REFERENCES runs(id),
	start_pos  INTEGER NOT NULL,
	end_pos    INTEGER NOT NULL,
	length     INTEGER NOT NULL,
	frame      INTEGER NOT NULL,
	strand     TEXT NOT NULL,
	dna        TEXT NOT NULL,
	protein    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS orfs_run ON orfs(run_id, start_pos);
`

// Run describes one scan of one sequence.
type Run struct {
	ID        string
	SeqID     string
	SeqDigest string
	GenomeLen int
	MinLength int
	TableID   int
	CreatedAt time.Time
}

// Record is one stored ORF. Strand is "+" or "-".
type Record struct {
	Start   int
	End     int
	Length  int
	Frame   int
	Strand  string
	DNA     string
	Protein string
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows a single writer; one connection also keeps ":memory:" usable.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores run and its records in one transaction and returns the run
// id. An empty run.ID gets a fresh UUID; a zero CreatedAt gets the current time.
func (s *Store) SaveRun(ctx context.Context, run Run, records []Record) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, seq_id, seq_digest, genome_len, min_length, table_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SeqID, run.SeqDigest, run.GenomeLen, run.MinLength, run.TableID,
		run.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO orfs (run_id, start_pos, end_pos, length, frame, strand, dna, protein)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare orf insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, run.ID, r.Start, r.End, r.Length, r.Frame, r.Strand, r.DNA, r.Protein); err != nil {
			return "", fmt.Errorf("insert orf %d-%d: %w", r.Start, r.End, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return run.ID, nil
}

// LoadRun returns the run with the given id or ErrRunNotFound.
func (s *Store) LoadRun(ctx context.Context, id string) (Run, error) {
	var run Run
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, seq_id, seq_digest, genome_len, min_length, table_id, created_at
		 FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &run.SeqID, &run.SeqDigest, &run.GenomeLen, &run.MinLength, &run.TableID, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("load run: %w", err)
	}
	if run.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	return run, nil
}

// LoadORFs returns the ORFs of a run in (start, strand, frame) order.
func (s *Store) LoadORFs(ctx context.Context, runID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT start_pos, end_pos, length, frame, strand, dna, protein
		 FROM orfs WHERE run_id = ?
		 ORDER BY start_pos, strand, frame`, runID)
	if err != nil {
		return nil, fmt.Errorf("query orfs: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Start, &r.End, &r.Length, &r.Frame, &r.Strand, &r.DNA, &r.Protein); err != nil {
			return nil, fmt.Errorf("scan orf: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RunsForDigest lists the ids of runs over a sequence digest, oldest first.
func (s *Store) RunsForDigest(ctx context.Context, digest string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM runs WHERE seq_digest = ? ORDER BY created_at, id`, digest)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

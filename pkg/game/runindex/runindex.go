// Package runindex records generation runs in a SQLite database and flags
// seeds whose output changed under an unchanged configuration.
package runindex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrDigestChanged reports a seed that produced a different dungeon under the same config hash.
var ErrDigestChanged = errors.New("digest changed for seed and config")

// Run is one recorded generation
type Run struct {
	Seed       int64
	ConfigHash string
	Width      int
	Height     int
	Length     int
	Rooms      int
	Corridors  int
	Staircases int
	Skipped    int
	Digest     string
	Duration   time.Duration
	RecordedAt time.Time
}

// Index is an open run database
type Index struct {
	db *sql.DB
}

// Open creates or opens the database at path
func Open(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Index{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			config_hash TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			length INTEGER NOT NULL,
			rooms INTEGER NOT NULL,
			corridors INTEGER NOT NULL,
			staircases INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			digest TEXT NOT NULL,
			duration_us INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_seed_config ON runs(seed, config_hash, id);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database
func (x *Index) Close() error {
	return x.db.Close()
}

// Record stores run. If an earlier run of the same seed and config hash has a
// different digest, the run is still stored and the returned error wraps
// ErrDigestChanged.
func (x *Index) Record(ctx context.Context, run Run) error {
	if run.RecordedAt.IsZero() {
		run.RecordedAt = time.Now().UTC()
	}

	var prev string
	err := x.db.QueryRowContext(ctx,
		`SELECT digest FROM runs WHERE seed=? AND config_hash=? ORDER BY id DESC LIMIT 1`,
		run.Seed, run.ConfigHash).Scan(&prev)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("lookup previous run: %w", err)
	}

	_, err = x.db.ExecContext(ctx,
		`INSERT INTO runs(seed,config_hash,width,height,length,rooms,corridors,staircases,skipped,digest,duration_us,recorded_at)
		 VALUES(?,?,?,?,?,?,?,?,?,?,?,?)`,
		run.Seed, run.ConfigHash, run.Width, run.Height, run.Length,
		run.Rooms, run.Corridors, run.Staircases, run.Skipped,
		run.Digest, run.Duration.Microseconds(), run.RecordedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if prev != "" && prev != run.Digest {
		return fmt.Errorf("%w: seed %d config %s: was %s, now %s", ErrDigestChanged, run.Seed, run.ConfigHash, prev, run.Digest)
	}
	return nil
}

// Runs returns every recorded run of seed, oldest first
func (x *Index) Runs(ctx context.Context, seed int64) ([]Run, error) {
	rows, err := x.db.QueryContext(ctx,
		`SELECT seed,config_hash,width,height,length,rooms,corridors,staircases,skipped,digest,duration_us,recorded_at
		 FROM runs WHERE seed=? ORDER BY id`, seed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r        Run
			us       int64
			recorded string
		)
		if err := rows.Scan(&r.Seed, &r.ConfigHash, &r.Width, &r.Height, &r.Length,
			&r.Rooms, &r.Corridors, &r.Staircases, &r.Skipped, &r.Digest, &us, &recorded); err != nil {
			return nil, err
		}
		r.Duration = time.Duration(us) * time.Microsecond
		if t, err := time.Parse(time.RFC3339Nano, recorded); err == nil {
			r.RecordedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

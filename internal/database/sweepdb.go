package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/zipsweep/zipsweep/internal/model"
)

// dbFileName is the SQLite file created inside the data directory.
const dbFileName = "zipsweep.db"

// SweepDB stores run history: one row per run plus one row per seed
// processed. It manages connection pooling and schema creation.
type SweepDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures SweepDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging. Recommended; the sweep
	// writes one row per seed while the history command may read.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Run is a stored sweep run.
type Run struct {
	ID             int64
	Profile        string
	Region         string
	StartedAt      time.Time
	FinishedAt     time.Time
	SeedsProcessed int
	FailedSeeds    int
	NewAddresses   int
	UniqueTotal    int
}

// SeedResult is one stored per-seed progress record.
type SeedResult struct {
	RunID int64
	Index int
	Seed  string
	Mode  string
	Found int
	New   int
}

// Open opens or creates a SweepDB in the specified directory.
func Open(dbDir string, opts Options) (*SweepDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to prevent creating new files and
	// mode=rwc to allow creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &SweepDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close() //nolint:errcheck // Best effort cleanup
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := sdb.createTables(); err != nil {
		_ = db.Close() //nolint:errcheck // Best effort cleanup
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sdb, nil
}

// Close closes the database connection.
func (sdb *SweepDB) Close() error {
	return sdb.db.Close()
}

// Path returns the path to the SQLite database file.
func (sdb *SweepDB) Path() string {
	return sdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (sdb *SweepDB) createTables() error {
	schema := `
	-- One row per sweep run
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile TEXT NOT NULL,
		region TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		finished_at DATETIME,
		seeds_processed INTEGER DEFAULT 0,
		failed_seeds INTEGER DEFAULT 0,
		new_addresses INTEGER DEFAULT 0,
		unique_total INTEGER DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

	-- One row per seed processed within a run
	CREATE TABLE IF NOT EXISTS seed_results (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		idx INTEGER NOT NULL,
		seed TEXT NOT NULL,
		mode TEXT NOT NULL,
		found INTEGER DEFAULT 0,
		new_count INTEGER DEFAULT 0,
		PRIMARY KEY (run_id, idx)
	);

	CREATE INDEX IF NOT EXISTS idx_seed_results_run ON seed_results(run_id);
	`

	_, err := sdb.db.ExecContext(context.Background(), schema)
	return err
}

// CreateRun inserts a new run and returns its ID.
func (sdb *SweepDB) CreateRun(ctx context.Context, profile, region string, startedAt time.Time) (int64, error) {
	result, err := sdb.db.ExecContext(ctx,
		`INSERT INTO runs (profile, region, started_at) VALUES (?, ?, ?)`,
		profile, region, startedAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	return id, nil
}

// SaveSeedResult stores one per-seed progress record. The same (run, idx)
// pair is written at most once per run, so plain INSERT suffices.
func (sdb *SweepDB) SaveSeedResult(ctx context.Context, runID int64, rec model.ProgressRecord) error {
	_, err := sdb.db.ExecContext(ctx,
		`INSERT INTO seed_results (run_id, idx, seed, mode, found, new_count) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, rec.Index, rec.Seed.String(), rec.Mode.String(), rec.Found, rec.New,
	)
	if err != nil {
		return fmt.Errorf("failed to save seed result: %w", err)
	}
	return nil
}

// FinishRun records the run's final counters.
func (sdb *SweepDB) FinishRun(ctx context.Context, runID int64, sum *model.RunSummary, finishedAt time.Time) error {
	_, err := sdb.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, seeds_processed = ?, failed_seeds = ?, new_addresses = ?, unique_total = ? WHERE id = ?`,
		finishedAt.UTC(), sum.SeedsProcessed, sum.FailedSeeds, sum.NewAddresses, sum.UniqueTotal, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// ListRuns returns stored runs, most recent first, up to limit.
// A limit of 0 returns all runs.
func (sdb *SweepDB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, profile, region, started_at, finished_at,
		seeds_processed, failed_seeds, new_addresses, unique_total
		FROM runs ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := sdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finishedAt sql.NullTime
		if err := rows.Scan(&r.ID, &r.Profile, &r.Region, &r.StartedAt, &finishedAt,
			&r.SeedsProcessed, &r.FailedSeeds, &r.NewAddresses, &r.UniqueTotal); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		// finished_at is NULL until FinishRun; fall back to started_at.
		r.FinishedAt = r.StartedAt
		if finishedAt.Valid {
			r.FinishedAt = finishedAt.Time
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// SeedResults returns the per-seed records of a run in seed order.
func (sdb *SweepDB) SeedResults(ctx context.Context, runID int64) ([]SeedResult, error) {
	rows, err := sdb.db.QueryContext(ctx,
		`SELECT run_id, idx, seed, mode, found, new_count FROM seed_results WHERE run_id = ? ORDER BY idx`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query seed results: %w", err)
	}
	defer rows.Close()

	var results []SeedResult
	for rows.Next() {
		var sr SeedResult
		if err := rows.Scan(&sr.RunID, &sr.Index, &sr.Seed, &sr.Mode, &sr.Found, &sr.New); err != nil {
			return nil, fmt.Errorf("failed to scan seed result: %w", err)
		}
		results = append(results, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate seed results: %w", err)
	}
	return results, nil
}

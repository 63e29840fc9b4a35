// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog caches problem listings from the fetch executor in a
// local SQLite database so the picker and list commands do not invoke the
// executor on every run.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/leetfetch/internal/leetcli"
	"github.com/pdiddy/leetfetch/pkg/types"
)

const dbFile = "leetfetch.db"

// Store manages the problem catalog SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at cacheDir/leetfetch.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(cfg.CacheDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS problems (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			state TEXT NOT NULL,
			locked INTEGER NOT NULL DEFAULT 0,
			pass_rate TEXT,
			difficulty TEXT,
			fetched_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_problems_difficulty ON problems(difficulty)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Refresh runs the executor's list command, parses the output, and replaces
// the cached rows in one transaction. Returns the number of problems stored
// and the number of malformed listing rows skipped.
func (s *Store) Refresh(ctx context.Context, client leetcli.Client) (stored, skipped int, err error) {
	output, err := client.List(ctx)
	if err != nil {
		return 0, 0, err
	}

	problems, skipped := leetcli.ParseList(output)
	if len(problems) == 0 {
		return 0, skipped, fmt.Errorf("executor listing contained no problems")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, skipped, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO problems (id, name, state, locked, pass_rate, difficulty, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, state=excluded.state, locked=excluded.locked,
			pass_rate=excluded.pass_rate, difficulty=excluded.difficulty,
			fetched_at=excluded.fetched_at`)
	if err != nil {
		return 0, skipped, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range problems {
		locked := 0
		if p.Locked {
			locked = 1
		}
		if _, err := stmt.ExecContext(ctx,
			p.ID, p.Name, string(p.State), locked, p.PassRate, p.Difficulty, now,
		); err != nil {
			return 0, skipped, fmt.Errorf("upserting problem %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, skipped, fmt.Errorf("committing refresh: %w", err)
	}
	return len(problems), skipped, nil
}

// Filter narrows Problems results. Zero values match everything.
type Filter struct {
	// Difficulty restricts to one of Easy, Medium, Hard.
	Difficulty string

	// State restricts to a submission state.
	State types.ProblemState
}

// Problems returns cached summaries ordered by numeric id.
func (s *Store) Problems(ctx context.Context, f Filter) ([]types.ProblemSummary, error) {
	query := `SELECT id, name, state, locked, pass_rate, difficulty FROM problems`
	var conds []string
	var args []any
	if f.Difficulty != "" {
		conds = append(conds, "difficulty = ?")
		args = append(args, f.Difficulty)
	}
	if f.State != "" {
		conds = append(conds, "state = ?")
		args = append(args, string(f.State))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY CAST(id AS INTEGER)"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying problems: %w", err)
	}
	defer rows.Close()

	var problems []types.ProblemSummary
	for rows.Next() {
		var p types.ProblemSummary
		var state string
		var locked int
		if err := rows.Scan(&p.ID, &p.Name, &state, &locked, &p.PassRate, &p.Difficulty); err != nil {
			return nil, fmt.Errorf("scanning problem row: %w", err)
		}
		p.State = types.ProblemState(state)
		p.Locked = locked != 0
		problems = append(problems, p)
	}
	return problems, rows.Err()
}

// Fresh reports whether the newest cached row is younger than ttl. An empty
// cache is never fresh.
func (s *Store) Fresh(ctx context.Context, ttl time.Duration) (bool, error) {
	var newest sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(fetched_at) FROM problems`,
	).Scan(&newest)
	if err != nil {
		return false, fmt.Errorf("checking cache freshness: %w", err)
	}
	if !newest.Valid || newest.String == "" {
		return false, nil
	}

	t, err := time.Parse(time.RFC3339, newest.String)
	if err != nil {
		return false, fmt.Errorf("parsing fetched_at %q: %w", newest.String, err)
	}
	return time.Since(t) < ttl, nil
}

// Ensure refreshes the catalog when the cache is stale or force is set.
// Returns whether a refresh happened.
func (s *Store) Ensure(ctx context.Context, client leetcli.Client, ttl time.Duration, force bool) (bool, error) {
	if !force {
		fresh, err := s.Fresh(ctx, ttl)
		if err != nil {
			return false, err
		}
		if fresh {
			return false, nil
		}
	}
	if _, _, err := s.Refresh(ctx, client); err != nil {
		return false, err
	}
	return true, nil
}

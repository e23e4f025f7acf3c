// Package storage provides SQLite-based persistence for finished wavle rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcomes recorded for a round.
const (
	OutcomeWin  = "win"
	OutcomeLose = "lose"
)

// Store manages the SQLite database connection for results.
type Store struct {
	db *sql.DB
}

// Result is one finished round.
type Result struct {
	ID             int64
	Outcome        string
	Attempts       int
	MaxAttempts    int
	BestSimilarity int
	FrequencyMode  string
	UsePhase       bool
	SlotCount      int
	Seed           int64
	Round          int
	CreatedAt      time.Time
}

// Stats contains aggregated statistics over all recorded rounds.
type Stats struct {
	Games          int
	Wins           int
	Losses         int
	BestSimilarity int
	AvgSimilarity  float64
	AvgWinAttempts float64 // Mean attempts used in won rounds
	LastPlayed     time.Time
}

// WinRate returns the fraction of rounds won, or 0 with no rounds.
func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			attempts INTEGER NOT NULL,
			max_attempts INTEGER NOT NULL,
			best_similarity INTEGER NOT NULL,
			frequency_mode TEXT NOT NULL,
			use_phase INTEGER NOT NULL DEFAULT 0,
			slot_count INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			round INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(best_similarity DESC, attempts ASC);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished round and returns its ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Outcome != OutcomeWin && r.Outcome != OutcomeLose {
		return 0, fmt.Errorf("storage: cannot save result with outcome %q", r.Outcome)
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (outcome, attempts, max_attempts, best_similarity, frequency_mode, use_phase, slot_count, seed, round)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Outcome, r.Attempts, r.MaxAttempts, r.BestSimilarity,
		r.FrequencyMode, r.UsePhase, r.SlotCount, r.Seed, r.Round,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const resultColumns = `id, outcome, attempts, max_attempts, best_similarity,
		frequency_mode, use_phase, slot_count, seed, round, created_at`

// TopResults returns the best rounds: wins before losses, then by similarity,
// then by fewest attempts.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY outcome = 'win' DESC, best_similarity DESC, attempts ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentResults returns the latest rounds, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Outcome,
			&r.Attempts,
			&r.MaxAttempts,
			&r.BestSimilarity,
			&r.FrequencyMode,
			&r.UsePhase,
			&r.SlotCount,
			&r.Seed,
			&r.Round,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Stats aggregates all recorded rounds.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'win'), 0),
		        COALESCE(SUM(outcome = 'lose'), 0),
		        COALESCE(MAX(best_similarity), 0),
		        COALESCE(AVG(best_similarity), 0),
		        COALESCE(AVG(CASE WHEN outcome = 'win' THEN attempts END), 0)
		 FROM results`,
	).Scan(&stats.Games, &stats.Wins, &stats.Losses, &stats.BestSimilarity, &stats.AvgSimilarity, &stats.AvgWinAttempts)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearResults deletes every recorded round.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

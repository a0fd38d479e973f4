// Package storage provides SQLite-based persistence for arena runs and the
// currency wallet. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
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

// DefaultPlayer names the wallet and runs of the local player.
const DefaultPlayer = "local"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is a single finished run.
type RunEntry struct {
	ID         int64
	Player     string
	Kills      int
	Experience int
	Ticks      int
	CreatedAt  time.Time
}

// Records holds the best values a player has reached across all runs.
type Records struct {
	Kills      int
	Experience int
}

// Stats contains aggregated statistics for a player.
type Stats struct {
	Player     string
	Runs       int
	BestKills  int
	BestXP     int
	TotalKills int64
	AvgXP      float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			kills INTEGER NOT NULL,
			experience INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(player, kills DESC);

		CREATE TABLE IF NOT EXISTS wallet (
			player TEXT PRIMARY KEY,
			balance INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveRun records a finished run and returns the ID of the inserted record.
func (s *Store) SaveRun(r RunEntry) (int64, error) {
	if r.Player == "" {
		r.Player = DefaultPlayer
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (player, kills, experience, ticks) VALUES (?, ?, ?, ?)",
		r.Player, r.Kills, r.Experience, r.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best runs of a player ordered by kills, then
// experience. An empty player lists runs of everyone.
func (s *Store) TopRuns(player string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, kills, experience, ticks, created_at
		 FROM runs
		 WHERE ? = '' OR player = ?
		 ORDER BY kills DESC, experience DESC, id ASC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Kills, &e.Experience, &e.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Best returns the highest kills and experience of a player.
// Both are 0 when no runs exist.
func (s *Store) Best(player string) (Records, error) {
	var rec Records
	err := s.db.QueryRow(
		"SELECT COALESCE(MAX(kills), 0), COALESCE(MAX(experience), 0) FROM runs WHERE player = ?",
		player,
	).Scan(&rec.Kills, &rec.Experience)
	if err != nil {
		return Records{}, fmt.Errorf("storage: cannot query records: %w", err)
	}
	return rec, nil
}

// ClearRuns deletes all runs of a player.
func (s *Store) ClearRuns(player string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Balance returns the wallet balance of a player, 0 when none is stored.
func (s *Store) Balance(player string) (int, error) {
	var balance int
	err := s.db.QueryRow("SELECT balance FROM wallet WHERE player = ?", player).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query balance: %w", err)
	}
	return balance, nil
}

// SetBalance stores an absolute wallet balance.
func (s *Store) SetBalance(player string, balance int) error {
	if balance < 0 {
		return fmt.Errorf("storage: negative balance %d", balance)
	}
	_, err := s.db.Exec(
		`INSERT INTO wallet (player, balance, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET balance = excluded.balance, updated_at = excluded.updated_at`,
		player, balance,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set balance: %w", err)
	}
	return nil
}

// AddCurrency adjusts the wallet by delta and returns the new balance.
// The balance never drops below zero.
func (s *Store) AddCurrency(player string, delta int) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var balance int
	err = tx.QueryRow("SELECT balance FROM wallet WHERE player = ?", player).Scan(&balance)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("storage: cannot query balance: %w", err)
	}

	balance = max(balance+delta, 0)
	_, err = tx.Exec(
		`INSERT INTO wallet (player, balance, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET balance = excluded.balance, updated_at = excluded.updated_at`,
		player, balance,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot update balance: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit balance: %w", err)
	}
	return balance, nil
}

// GetStats retrieves aggregated statistics for a player.
func (s *Store) GetStats(player string) (*Stats, error) {
	stats := &Stats{Player: player}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(kills), 0), COALESCE(MAX(experience), 0),
		        COALESCE(SUM(kills), 0), COALESCE(AVG(experience), 0), MAX(created_at)
		 FROM runs WHERE player = ?`,
		player,
	).Scan(&stats.Runs, &stats.BestKills, &stats.BestXP, &stats.TotalKills, &stats.AvgXP, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and the string form SQLite returns.
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

// Package storage provides SQLite-based persistence for session results and
// the best score. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Outcome values stored with each result.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Result is a single finished session.
type Result struct {
	ID        int64
	GameID    string
	Score     int
	Outcome   string // OutcomeWon or OutcomeLost
	Seed      int64
	Ticks     int64
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS best_scores (
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
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

// SaveResult records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (game_id, score, outcome, seed, ticks) VALUES (?, ?, ?, ?, ?)",
		r.GameID, r.Score, r.Outcome, r.Seed, r.Ticks,
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

// TopResults retrieves the top N results for the given game.
// Results are ordered by score descending, earliest first on ties.
func (s *Store) TopResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, outcome, seed, ticks, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// RecentResults retrieves the most recent results for the given game.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, outcome, seed, ticks, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Outcome, &r.Seed, &r.Ticks, &createdAt); err != nil {
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

// BestScore returns the best score recorded for the given game.
// Returns 0 if none was recorded.
func (s *Store) BestScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE game_id = ?", gameID).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// SetBestScore stores a best score for the given game. A lower value never
// replaces a higher one, so concurrent sessions cannot lose a record.
func (s *Store) SetBestScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
		   score = MAX(score, excluded.score),
		   updated_at = CURRENT_TIMESTAMP`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set best score: %w", err)
	}
	return nil
}

// ClearResults deletes the results history and the best score for the given game.
func (s *Store) ClearResults(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM best_scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0)
		 FROM results WHERE game_id = ?`,
		OutcomeWon, gameID,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
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

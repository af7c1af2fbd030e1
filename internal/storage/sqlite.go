// Package storage provides SQLite-based persistence for finished games.
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

// Store manages the SQLite database connection for result history.
type Store struct {
	db *sql.DB
}

// Result is one finished game. In-progress games are never stored.
type Result struct {
	ID        int64
	GameID    string // difficulty name
	Won       bool
	Seconds   int64 // game clock at the end
	Revealed  int   // safe cells revealed
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a difficulty.
type GameStats struct {
	GameID      string
	Played      int
	Wins        int
	BestSeconds int64   // fastest win, 0 if never won
	AvgSeconds  float64 // mean winning time
	LastPlayed  time.Time
}

// WinRate returns wins as a fraction of games played.
func (s GameStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Played)
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
			won INTEGER NOT NULL,
			seconds INTEGER NOT NULL,
			revealed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(game_id, won, seconds);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: result has no game id")
	}

	res, err := s.db.Exec(
		"INSERT INTO results (game_id, won, seconds, revealed) VALUES (?, ?, ?, ?)",
		r.GameID, r.Won, r.Seconds, r.Revealed,
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

// BestTimes retrieves the fastest N wins for the given difficulty.
// Losses are never listed.
func (s *Store) BestTimes(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, won, seconds, revealed, created_at
		 FROM results
		 WHERE game_id = ? AND won = 1
		 ORDER BY seconds ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	return scanResults(rows)
}

// RecentResults retrieves the latest N results, newest first. An empty
// gameID lists every difficulty.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, won, seconds, revealed, created_at
		 FROM results
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
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
		if err := rows.Scan(&r.ID, &r.GameID, &r.Won, &r.Seconds, &r.Revealed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearResults deletes all results for the given difficulty.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

const statsColumns = `COUNT(*),
	COALESCE(SUM(won), 0),
	MIN(CASE WHEN won = 1 THEN seconds END),
	AVG(CASE WHEN won = 1 THEN seconds END),
	MAX(created_at)`

// Stats retrieves aggregated statistics for a specific difficulty.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var best sql.NullInt64
	var avg sql.NullFloat64
	var lastPlayed any
	err := s.db.QueryRow(
		"SELECT "+statsColumns+" FROM results WHERE game_id = ?",
		gameID,
	).Scan(&stats.Played, &stats.Wins, &best, &avg, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.BestSeconds = best.Int64
	stats.AvgSeconds = avg.Float64
	stats.LastPlayed = parseTimestamp(lastPlayed)
	return stats, nil
}

// AllStats retrieves statistics for every difficulty that has been played.
func (s *Store) AllStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		"SELECT game_id, " + statsColumns + " FROM results GROUP BY game_id",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var best sql.NullInt64
		var avg sql.NullFloat64
		var lastPlayed any
		if err := rows.Scan(&st.GameID, &st.Played, &st.Wins, &best, &avg, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestSeconds = best.Int64
		st.AvgSeconds = avg.Float64
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats[st.GameID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTimestamp handles both time.Time and the string SQLite returns
// from aggregates.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

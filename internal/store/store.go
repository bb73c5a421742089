// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/lyricbeat/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for high scores, game records, and the local
// leaderboard.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY,
			played_at TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			perfect INTEGER NOT NULL,
			best_streak INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS leaderboard (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_games_played_at ON games(played_at);`,
		`CREATE INDEX IF NOT EXISTS idx_leaderboard_score ON leaderboard(score DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LoadHighScore returns the persisted high score, or zero when none is
// stored yet.
func (s *Store) LoadHighScore(ctx context.Context) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx, `SELECT score FROM high_score WHERE id = 1`).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return score, nil
}

// SaveHighScore stores the high score, replacing any previous value.
func (s *Store) SaveHighScore(ctx context.Context, score int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO high_score (id, score) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score`,
		score,
	)
	return err
}

// InsertGame stores a finished game record.
func (s *Store) InsertGame(ctx context.Context, game model.GameStats) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO games (played_at, score, total, correct, perfect, best_streak, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		game.PlayedAt.Format(time.RFC3339Nano),
		game.Score,
		game.Total,
		game.Correct,
		game.Perfect,
		game.BestStreak,
		game.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListGames returns game records ordered oldest first. A positive Last
// limits the result to the most recent N games.
func (s *Store) ListGames(ctx context.Context, cfg model.StatsConfig) ([]model.GameStats, error) {
	query := `SELECT played_at, score, total, correct, perfect, best_streak, duration_ms
		FROM games ORDER BY played_at ASC`
	args := []any{}
	if cfg.Last > 0 {
		query = `SELECT played_at, score, total, correct, perfect, best_streak, duration_ms
			FROM (SELECT * FROM games ORDER BY played_at DESC LIMIT ?)
			ORDER BY played_at ASC`
		args = append(args, cfg.Last)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var games []model.GameStats
	for rows.Next() {
		var g model.GameStats
		var playedAt string
		if err := rows.Scan(&playedAt, &g.Score, &g.Total, &g.Correct, &g.Perfect, &g.BestStreak, &g.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, playedAt)
		if err != nil {
			return nil, err
		}
		g.PlayedAt = parsed
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

// FetchTop returns the top n leaderboard entries, best score first, with
// ranks assigned.
func (s *Store) FetchTop(ctx context.Context, n int) ([]model.LeaderboardEntry, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, score, created_at FROM leaderboard
		 ORDER BY score DESC, created_at ASC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.LeaderboardEntry
	rank := 1
	for rows.Next() {
		var entry model.LeaderboardEntry
		var createdAt string
		if err := rows.Scan(&entry.Name, &entry.Score, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		entry.CreatedAt = parsed
		entry.Rank = rank
		rank++
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// SubmitScore appends a leaderboard entry.
func (s *Store) SubmitScore(ctx context.Context, name string, score int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leaderboard (name, score, created_at) VALUES (?, ?, ?)`,
		name, score, time.Now().Format(time.RFC3339Nano),
	)
	return err
}

// QualifiesForTop reports whether a score would enter the top n: true when
// fewer than n entries exist or the score beats the nth-place score.
func (s *Store) QualifiesForTop(ctx context.Context, score, n int) (bool, error) {
	if n <= 0 {
		return false, nil
	}
	entries, err := s.FetchTop(ctx, n)
	if err != nil {
		return false, err
	}
	if len(entries) < n {
		return true, nil
	}
	return score > entries[len(entries)-1].Score, nil
}

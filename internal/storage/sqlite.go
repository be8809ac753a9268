// Package storage provides SQLite-based persistence for finished games and
// versus matches. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tetris-duel/internal/multiplayer"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one recorded game.
type ScoreEntry struct {
	ID        int64
	MatchID   string
	Mode      string
	Player    string
	Score     int
	Level     int
	Lines     int
	Tetrises  int
	Pieces    int
	CreatedAt time.Time
}

// MatchEntry is one recorded versus game.
type MatchEntry struct {
	ID        int64
	MatchID   string
	Score1    int
	Score2    int
	Winner    string // empty for a draw
	Wins1     int
	Wins2     int
	Ticks     int
	CreatedAt time.Time
}

// ModeStats aggregates the games of one mode.
type ModeStats struct {
	Mode        string
	GamesCount  int
	HighScore   int
	AvgScore    float64
	TotalLines  int
	TotalTetris int
	LastPlayed  time.Time
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
	// One writer at a time; SSH sessions record concurrently.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL DEFAULT '',
			mode TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'P1',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			lines INTEGER NOT NULL DEFAULT 0,
			tetrises INTEGER NOT NULL DEFAULT 0,
			pieces INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode, score DESC);

		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner TEXT,
			wins1 INTEGER NOT NULL DEFAULT 0,
			wins2 INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveScore records a finished game and returns its row ID.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO scores (match_id, mode, player, score, level, lines, tetrises, pieces)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.MatchID, e.Mode, e.Player, e.Score, e.Level, e.Lines, e.Tetrises, e.Pieces,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the best limit games of a mode, highest first.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, mode, player, score, level, lines, tetrises, pieces, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.MatchID, &e.Mode, &e.Player, &e.Score,
			&e.Level, &e.Lines, &e.Tetrises, &e.Pieces, &createdAt); err != nil {
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

// HighScore returns the best score for a mode, or 0 if none exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE mode = ?", mode).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all games of a mode.
func (s *Store) ClearScores(mode string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveMatch records a versus result and returns its row ID.
func (s *Store) SaveMatch(m MatchEntry) (int64, error) {
	var winner sql.NullString
	if m.Winner != "" {
		winner = sql.NullString{String: m.Winner, Valid: true}
	}
	res, err := s.db.Exec(
		`INSERT INTO matches (match_id, score1, score2, winner, wins1, wins2, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID, m.Score1, m.Score2, winner, m.Wins1, m.Wins2, m.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const matchColumns = `id, match_id, score1, score2, winner, wins1, wins2, ticks, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchEntry, error) {
	var m MatchEntry
	var winner sql.NullString
	var createdAt any
	err := row.Scan(&m.ID, &m.MatchID, &m.Score1, &m.Score2, &winner,
		&m.Wins1, &m.Wins2, &m.Ticks, &createdAt)
	if err != nil {
		return m, err
	}
	m.Winner = winner.String
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// MatchByID retrieves a match by its match ID, or nil if absent.
func (s *Store) MatchByID(matchID string) (*MatchEntry, error) {
	m, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`, matchID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the latest versus results, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+` FROM matches ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchEntry
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// ModeStats aggregates every recorded game of a mode.
func (s *Store) ModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(lines), 0), COALESCE(SUM(tetrises), 0), MAX(created_at)
		 FROM scores WHERE mode = ?`,
		mode,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore,
		&stats.TotalLines, &stats.TotalTetris, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// SaveGameResult implements multiplayer.Recorder.
func (s *Store) SaveGameResult(rec multiplayer.GameRecord) error {
	_, err := s.SaveScore(ScoreEntry{
		MatchID:  rec.MatchID,
		Mode:     rec.Mode,
		Player:   rec.Player,
		Score:    rec.Score,
		Level:    rec.Level,
		Lines:    rec.Lines,
		Tetrises: rec.Tetrises,
		Pieces:   rec.Pieces,
	})
	return err
}

// SaveMatchResult implements multiplayer.Recorder.
func (s *Store) SaveMatchResult(rec multiplayer.MatchRecord) error {
	_, err := s.SaveMatch(MatchEntry{
		MatchID: rec.MatchID,
		Score1:  rec.Score1,
		Score2:  rec.Score2,
		Winner:  rec.Winner,
		Wins1:   rec.Wins1,
		Wins2:   rec.Wins2,
		Ticks:   rec.Ticks,
	})
	return err
}

var _ multiplayer.Recorder = (*Store)(nil)

// parseTime handles both driver-native times and SQLite text timestamps.
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

package arena

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// MatchRecord is one persisted arena game. Winner is empty for games cut
// off by the turn guard.
type MatchRecord struct {
	ID        string
	PlayerOne string
	PlayerTwo string
	Winner    string
	Blocked   bool
	Turns     int
	Duration  time.Duration
	PlayedAt  time.Time
}

// Store keeps match records in a sqlite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at path and ensures the schema.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS matches (
		id          TEXT PRIMARY KEY,
		player_one  TEXT NOT NULL,
		player_two  TEXT NOT NULL,
		winner      TEXT NOT NULL,
		blocked     INTEGER NOT NULL,
		turns       INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		played_at   TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create matches table: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts one match, assigning an id when the record has none.
func (s *Store) Record(rec MatchRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO matches (id, player_one, player_two, winner, blocked, turns, duration_ms, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.PlayerOne, rec.PlayerTwo, rec.Winner, rec.Blocked,
		rec.Turns, rec.Duration.Milliseconds(), rec.PlayedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert match %s: %w", rec.ID, err)
	}
	return nil
}

// Matches returns every stored record, oldest first.
func (s *Store) Matches() ([]MatchRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, player_one, player_two, winner, blocked, turns, duration_ms, played_at
		 FROM matches ORDER BY played_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var durationMs int64
		var playedAt string
		err := rows.Scan(&rec.ID, &rec.PlayerOne, &rec.PlayerTwo, &rec.Winner,
			&rec.Blocked, &rec.Turns, &durationMs, &playedAt)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		rec.PlayedAt, err = time.Parse(time.RFC3339, playedAt)
		if err != nil {
			return nil, fmt.Errorf("parse played_at of match %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

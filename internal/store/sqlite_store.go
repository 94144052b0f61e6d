package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/model"
)

const (
	metaPlayerName    = "player_name"
	metaCurrentSeason = "current_season"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(filePath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filePath)
	if err != nil {
		return nil, err
	}
	st := &SQLiteStore{db: db}
	if err := st.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return st, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS progress (
	day  TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS history (
	season INTEGER NOT NULL,
	day    TEXT NOT NULL,
	points INTEGER NOT NULL,
	PRIMARY KEY (season, day)
);
CREATE TABLE IF NOT EXISTS notes (
	season INTEGER NOT NULL,
	day    TEXT NOT NULL,
	note   TEXT NOT NULL,
	PRIMARY KEY (season, day)
);
`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) setMeta(key, value string) error {
	_, err := s.db.Exec(`
INSERT INTO meta (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (s *SQLiteStore) meta(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) SavePlayerName(name string) error {
	return s.setMeta(metaPlayerName, name)
}

func (s *SQLiteStore) PlayerName() (string, bool, error) {
	name, ok, err := s.meta(metaPlayerName)
	if err != nil || !ok {
		return "", false, err
	}
	return name, name != "", nil
}

func (s *SQLiteStore) SaveProgress(day string, p model.Progress) error {
	p.Normalize()
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
INSERT INTO progress (day, data) VALUES (?, ?)
ON CONFLICT(day) DO UPDATE SET data = excluded.data`, day, string(data))
	return err
}

// Progress reads the record for a day. A row whose payload no longer
// parses reads as absent.
func (s *SQLiteStore) Progress(day string) (model.Progress, bool, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM progress WHERE day = ?`, day).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Progress{}, false, nil
	}
	if err != nil {
		return model.Progress{}, false, err
	}
	var p model.Progress
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return model.Progress{}, false, nil
	}
	p.Normalize()
	return p, true, nil
}

func (s *SQLiteStore) RecordHistory(season int, day string, points int) error {
	_, err := s.db.Exec(`
INSERT INTO history (season, day, points) VALUES (?, ?, ?)
ON CONFLICT(season, day) DO UPDATE SET points = excluded.points`, season, day, points)
	return err
}

func (s *SQLiteStore) History(season int) (map[string]int, error) {
	rows, err := s.db.Query(`SELECT day, points FROM history WHERE season = ?`, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var day string
		var points int
		if err := rows.Scan(&day, &points); err != nil {
			return nil, err
		}
		out[day] = points
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SetNote(season int, day, text string) error {
	_, err := s.db.Exec(`
INSERT INTO notes (season, day, note) VALUES (?, ?, ?)
ON CONFLICT(season, day) DO UPDATE SET note = excluded.note`, season, day, text)
	return err
}

func (s *SQLiteStore) Notes(season int) (map[string]string, error) {
	rows, err := s.db.Query(`SELECT day, note FROM notes WHERE season = ?`, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var day, note string
		if err := rows.Scan(&day, &note); err != nil {
			return nil, err
		}
		out[day] = note
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CurrentSeason() (int, error) {
	value, ok, err := s.meta(metaCurrentSeason)
	if err != nil {
		return 0, err
	}
	if !ok {
		return FirstSeason, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < FirstSeason {
		return FirstSeason, nil
	}
	return n, nil
}

func (s *SQLiteStore) SetCurrentSeason(n int) error {
	return s.setMeta(metaCurrentSeason, strconv.Itoa(n))
}

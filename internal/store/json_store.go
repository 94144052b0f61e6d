package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/model"
)

type seasonSlice struct {
	History map[string]int    `json:"history"`
	Notes   map[string]string `json:"notes"`
}

type fileState struct {
	PlayerName    string                    `json:"playerName,omitempty"`
	CurrentSeason int                       `json:"currentSeason,omitempty"`
	Progress      map[string]model.Progress `json:"progress"`
	Seasons       map[int]seasonSlice       `json:"seasons"`
}

func newFileState() fileState {
	return fileState{
		Progress: map[string]model.Progress{},
		Seasons:  map[int]seasonSlice{},
	}
}

// JSONStore keeps the whole tracker state in a single JSON file. Every
// change rewrites the file in full (atomic tmp+rename).
type JSONStore struct {
	filePath string
	mu       sync.RWMutex
	state    fileState
}

func NewJSONStore(filePath string) (*JSONStore, error) {
	s := &JSONStore{
		filePath: filePath,
		state:    newFileState(),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the state file. Malformed content resets to an empty state
// rather than failing: a corrupted store reads as absent.
func (s *JSONStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		s.state = newFileState()
		return nil
	}
	if state.Progress == nil {
		state.Progress = map[string]model.Progress{}
	}
	if state.Seasons == nil {
		state.Seasons = map[int]seasonSlice{}
	}
	s.state = state
	return nil
}

func (s *JSONStore) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.filePath)
}

func (s *JSONStore) seasonLocked(season int) seasonSlice {
	sl, ok := s.state.Seasons[season]
	if !ok {
		sl = seasonSlice{History: map[string]int{}, Notes: map[string]string{}}
		s.state.Seasons[season] = sl
		return sl
	}
	if sl.History == nil {
		sl.History = map[string]int{}
	}
	if sl.Notes == nil {
		sl.Notes = map[string]string{}
	}
	s.state.Seasons[season] = sl
	return sl
}

func (s *JSONStore) SavePlayerName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PlayerName = name
	return s.persistLocked()
}

func (s *JSONStore) PlayerName() (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.PlayerName, s.state.PlayerName != "", nil
}

func (s *JSONStore) SaveProgress(day string, p model.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Normalize()
	s.state.Progress[day] = p
	return s.persistLocked()
}

func (s *JSONStore) Progress(day string) (model.Progress, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.state.Progress[day]
	if ok {
		p.Normalize()
	}
	return p, ok, nil
}

func (s *JSONStore) RecordHistory(season int, day string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := s.seasonLocked(season)
	sl.History[day] = points
	return s.persistLocked()
}

func (s *JSONStore) History(season int) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := map[string]int{}
	if sl, ok := s.state.Seasons[season]; ok {
		for day, points := range sl.History {
			out[day] = points
		}
	}
	return out, nil
}

func (s *JSONStore) SetNote(season int, day, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := s.seasonLocked(season)
	sl.Notes[day] = text
	return s.persistLocked()
}

func (s *JSONStore) Notes(season int) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := map[string]string{}
	if sl, ok := s.state.Seasons[season]; ok {
		for day, text := range sl.Notes {
			out[day] = text
		}
	}
	return out, nil
}

func (s *JSONStore) CurrentSeason() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CurrentSeason < FirstSeason {
		return FirstSeason, nil
	}
	return s.state.CurrentSeason, nil
}

func (s *JSONStore) SetCurrentSeason(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentSeason = n
	return s.persistLocked()
}

func (s *JSONStore) Close() error {
	return nil
}

package store

import (
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/model"
)

// Store is the persistence layer for the tracker. Every record is
// addressed by game day and, for history and notes, a season number.
// Season scoping is explicit on every call: the store itself has no
// notion of a "current view" and will write to whatever season it is
// handed.
type Store interface {
	SavePlayerName(name string) error
	PlayerName() (string, bool, error)

	SaveProgress(day string, p model.Progress) error
	Progress(day string) (model.Progress, bool, error)

	RecordHistory(season int, day string, points int) error
	History(season int) (map[string]int, error)

	SetNote(season int, day, text string) error
	Notes(season int) (map[string]string, error)

	CurrentSeason() (int, error)
	SetCurrentSeason(n int) error

	Close() error
}

// FirstSeason is reported when no season counter has ever been stored.
const FirstSeason = 1

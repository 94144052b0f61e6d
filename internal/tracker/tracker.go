package tracker

import (
	"errors"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/catalog"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/gameday"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/model"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/scoring"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/store"
)

var (
	ErrNameRequired  = errors.New("player name is required")
	ErrDayNotStarted = errors.New("no progress recorded for the active day")
)

// RecentLimit caps the recent-history view.
const RecentLimit = 7

// Tracker ties the scoring engine to the store. It owns the season view:
// the store is season-agnostic, so "which season reads and writes go to"
// lives here. Writes while viewing a past season write through to that
// season.
type Tracker struct {
	mu   sync.Mutex
	cat  *catalog.Catalog
	st   store.Store
	days *gameday.Resolver

	viewSeason int
}

func New(cat *catalog.Catalog, st store.Store, days *gameday.Resolver) (*Tracker, error) {
	current, err := st.CurrentSeason()
	if err != nil {
		return nil, err
	}
	return &Tracker{
		cat:        cat,
		st:         st,
		days:       days,
		viewSeason: current,
	}, nil
}

func (t *Tracker) Catalog() *catalog.Catalog { return t.cat }

func (t *Tracker) Today() string { return t.days.CurrentDay() }

func (t *Tracker) UntilReset() gameday.Countdown { return t.days.UntilReset() }

// CurrentSeason is the highest season ever allocated.
func (t *Tracker) CurrentSeason() (int, error) {
	return t.st.CurrentSeason()
}

// ViewedSeason is the season whose history and notes are in view.
func (t *Tracker) ViewedSeason() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.viewSeason
}

func (t *Tracker) PlayerName() (string, bool, error) {
	return t.st.PlayerName()
}

// StartDay remembers the player name and returns the active day's
// progress, creating a fresh record if this is the first entry for the
// day. A previous day's record is never reused.
func (t *Tracker) StartDay(name string) (model.Progress, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Progress{}, ErrNameRequired
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.st.SavePlayerName(name); err != nil {
		return model.Progress{}, err
	}

	day := t.days.CurrentDay()
	if p, ok, err := t.st.Progress(day); err != nil {
		return model.Progress{}, err
	} else if ok {
		return p, nil
	}

	p := model.NewProgress(name)
	if err := t.st.SaveProgress(day, p); err != nil {
		return model.Progress{}, err
	}
	if err := t.st.RecordHistory(t.viewSeason, day, 0); err != nil {
		return model.Progress{}, err
	}
	return p, nil
}

func (t *Tracker) TodayProgress() (model.Progress, bool, error) {
	return t.st.Progress(t.days.CurrentDay())
}

// mutate applies one update to the active day, then synchronously
// recomputes and records the day's point total.
func (t *Tracker) mutate(fn func(*model.Progress)) (Summary, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	day := t.days.CurrentDay()
	p, ok, err := t.st.Progress(day)
	if err != nil {
		return Summary{}, err
	}
	if !ok {
		return Summary{}, ErrDayNotStarted
	}

	fn(&p)

	if err := t.st.SaveProgress(day, p); err != nil {
		return Summary{}, err
	}
	points := scoring.Points(p, t.cat)
	if err := t.st.RecordHistory(t.viewSeason, day, points); err != nil {
		return Summary{}, err
	}
	return t.summaryLocked(day, points)
}

func (t *Tracker) SetDungeon(key string, done bool) (Summary, error) {
	return t.mutate(func(p *model.Progress) { p.SetDungeon(key, done) })
}

func (t *Tracker) SetWorldEvent(key string, done bool) (Summary, error) {
	return t.mutate(func(p *model.Progress) { p.SetWorldEvent(key, done) })
}

func (t *Tracker) SetTower(name string, done bool) (Summary, error) {
	return t.mutate(func(p *model.Progress) { p.SetTower(name, done) })
}

func (t *Tracker) SetInfiniteFloor(floor int) (Summary, error) {
	return t.mutate(func(p *model.Progress) { p.SetInfiniteFloor(floor) })
}

func (t *Tracker) SetGuildQuest(tier model.QuestTier, done bool) (Summary, error) {
	return t.mutate(func(p *model.Progress) { p.SetGuildQuest(tier, done) })
}

// EditPoints overwrites a recorded day in the viewed season.
func (t *Tracker) EditPoints(day string, points int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st.RecordHistory(t.viewSeason, day, points)
}

func (t *Tracker) SetNote(day, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st.SetNote(t.viewSeason, day, text)
}

func (t *Tracker) Notes() (map[string]string, error) {
	t.mu.Lock()
	season := t.viewSeason
	t.mu.Unlock()
	return t.st.Notes(season)
}

// StartNewSeason allocates the next season number and switches the view
// to it. Prior seasons' data stays in the store.
func (t *Tracker) StartNewSeason() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, err := t.st.CurrentSeason()
	if err != nil {
		return 0, err
	}
	next := current + 1
	if err := t.st.SetCurrentSeason(next); err != nil {
		return 0, err
	}
	t.viewSeason = next
	return next, nil
}

// SwitchSeason moves the view to season n. Requests outside
// [1, current] are silently ignored; the resulting view is returned.
func (t *Tracker) SwitchSeason(n int) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, err := t.st.CurrentSeason()
	if err != nil {
		return 0, err
	}
	if n >= store.FirstSeason && n <= current {
		t.viewSeason = n
	}
	return t.viewSeason, nil
}

// HistoryEntry is one day in the recent view.
type HistoryEntry struct {
	Date   string `json:"date"`
	Points int    `json:"points"`
	Note   string `json:"note,omitempty"`
}

// Recent returns at most RecentLimit recorded days for the viewed
// season, strictly descending by date, with notes attached.
func (t *Tracker) Recent() ([]HistoryEntry, error) {
	t.mu.Lock()
	season := t.viewSeason
	t.mu.Unlock()

	history, err := t.st.History(season)
	if err != nil {
		return nil, err
	}
	notes, err := t.st.Notes(season)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(history))
	for date := range history {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > RecentLimit {
		dates = dates[:RecentLimit]
	}

	out := make([]HistoryEntry, 0, len(dates))
	for _, date := range dates {
		out = append(out, HistoryEntry{
			Date:   date,
			Points: history[date],
			Note:   notes[date],
		})
	}
	return out, nil
}

// Summary is the header block: today's total against the goal plus the
// viewed season's aggregates.
type Summary struct {
	Day          string `json:"day"`
	Season       int    `json:"season"`
	Points       int    `json:"points"`
	Goal         int    `json:"goal"`
	GoalReached  bool   `json:"goalReached"`
	SeasonTotal  int    `json:"seasonTotal"`
	DaysRecorded int    `json:"daysRecorded"`
	DailyAverage int    `json:"dailyAverage"`
}

func (t *Tracker) Summary() (Summary, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	day := t.days.CurrentDay()
	points := 0
	if p, ok, err := t.st.Progress(day); err != nil {
		return Summary{}, err
	} else if ok {
		points = scoring.Points(p, t.cat)
	}
	return t.summaryLocked(day, points)
}

// summaryLocked averages over every recorded day of the season, not just
// the days the recent view shows.
func (t *Tracker) summaryLocked(day string, points int) (Summary, error) {
	history, err := t.st.History(t.viewSeason)
	if err != nil {
		return Summary{}, err
	}

	total := 0
	for _, pts := range history {
		total += pts
	}
	average := 0
	if len(history) > 0 {
		average = int(math.Round(float64(total) / float64(len(history))))
	}

	return Summary{
		Day:          day,
		Season:       t.viewSeason,
		Points:       points,
		Goal:         t.cat.DailyGoal,
		GoalReached:  points >= t.cat.DailyGoal,
		SeasonTotal:  total,
		DaysRecorded: len(history),
		DailyAverage: average,
	}, nil
}

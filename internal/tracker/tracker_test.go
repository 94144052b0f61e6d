package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/catalog"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/gameday"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/model"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/store"
)

// testClock lets tests move the game day forward.
type testClock struct {
	now time.Time
}

func newTracker(t *testing.T) (*Tracker, *testClock, store.Store) {
	t.Helper()

	st, err := store.NewJSONStore(filepath.Join(t.TempDir(), "tracker.json"))
	require.NoError(t, err)

	// 20:00 UTC is past the 17:00 boundary, so the game day equals the
	// calendar date.
	clock := &testClock{now: time.Date(2026, time.August, 27, 20, 0, 0, 0, time.UTC)}
	days := gameday.NewResolverAt(time.UTC, func() time.Time { return clock.now })

	tr, err := New(catalog.Default(), st, days)
	require.NoError(t, err)
	return tr, clock, st
}

func TestStartDay_RequiresName(t *testing.T) {
	tr, _, _ := newTracker(t)

	_, err := tr.StartDay("   ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestStartDay_CreatesFreshRecordAndZeroHistory(t *testing.T) {
	tr, _, st := newTracker(t)

	p, err := tr.StartDay("kayla")
	require.NoError(t, err)
	assert.Equal(t, "kayla", p.Name)
	assert.Empty(t, p.Dungeons)

	name, ok, err := st.PlayerName()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "kayla", name)

	h, err := st.History(1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-08-27": 0}, h)
}

func TestStartDay_ReturnsExistingRecord(t *testing.T) {
	tr, _, _ := newTracker(t)

	_, err := tr.StartDay("kayla")
	require.NoError(t, err)
	_, err = tr.SetTower("Prison Tower", true)
	require.NoError(t, err)

	p, err := tr.StartDay("kayla")
	require.NoError(t, err)
	assert.True(t, p.Towers["Prison Tower"])
}

func TestUpdate_RecordsPointsSynchronously(t *testing.T) {
	tr, _, st := newTracker(t)

	_, err := tr.StartDay("kayla")
	require.NoError(t, err)

	summary, err := tr.SetTower("Prison Tower", true)
	require.NoError(t, err)
	assert.Equal(t, 15, summary.Points)

	summary, err = tr.SetGuildQuest(model.QuestHard, true)
	require.NoError(t, err)
	assert.Equal(t, 115, summary.Points)

	h, err := st.History(1)
	require.NoError(t, err)
	assert.Equal(t, 115, h["2026-08-27"])
}

func TestUpdate_BeforeStartFails(t *testing.T) {
	tr, _, _ := newTracker(t)

	_, err := tr.SetTower("Prison Tower", true)
	assert.ErrorIs(t, err, ErrDayNotStarted)
}

func TestDayRollover_NeverReusesPreviousRecord(t *testing.T) {
	tr, clock, _ := newTracker(t)

	_, err := tr.StartDay("kayla")
	require.NoError(t, err)
	_, err = tr.SetTower("Prison Tower", true)
	require.NoError(t, err)

	clock.now = clock.now.AddDate(0, 0, 1)

	p, err := tr.StartDay("kayla")
	require.NoError(t, err)
	assert.False(t, p.Towers["Prison Tower"], "new day must start from a fresh record")

	summary, err := tr.Summary()
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", summary.Day)
	assert.Equal(t, 0, summary.Points)
}

func TestEditPointsAndNotes(t *testing.T) {
	tr, _, st := newTracker(t)

	require.NoError(t, tr.EditPoints("2026-08-20", 250))
	require.NoError(t, tr.SetNote("2026-08-20", "forgot infinite tower"))

	h, err := st.History(1)
	require.NoError(t, err)
	assert.Equal(t, 250, h["2026-08-20"])

	notes, err := tr.Notes()
	require.NoError(t, err)
	assert.Equal(t, "forgot infinite tower", notes["2026-08-20"])
}

func TestRecent_CapsAtSevenStrictlyDescending(t *testing.T) {
	tr, _, _ := newTracker(t)

	for day := 1; day <= 10; day++ {
		date := time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC).Format(gameday.DayLayout)
		require.NoError(t, tr.EditPoints(date, day*10))
	}
	require.NoError(t, tr.SetNote("2026-08-10", "good run"))

	recent, err := tr.Recent()
	require.NoError(t, err)
	require.Len(t, recent, RecentLimit)

	assert.Equal(t, "2026-08-10", recent[0].Date)
	assert.Equal(t, "good run", recent[0].Note)
	for i := 1; i < len(recent); i++ {
		assert.Greater(t, recent[i-1].Date, recent[i].Date)
	}
}

// The average divides the season-wide total by every recorded day, not
// just the seven the recent view shows. That mismatch is inherited
// behavior and pinned here on purpose.
func TestDailyAverageUsesAllRecordedDays(t *testing.T) {
	tr, _, _ := newTracker(t)

	for day := 1; day <= 10; day++ {
		date := time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC).Format(gameday.DayLayout)
		require.NoError(t, tr.EditPoints(date, 100))
	}

	summary, err := tr.Summary()
	require.NoError(t, err)
	assert.Equal(t, 10, summary.DaysRecorded)
	assert.Equal(t, 1000, summary.SeasonTotal)
	assert.Equal(t, 100, summary.DailyAverage)

	recent, err := tr.Recent()
	require.NoError(t, err)
	assert.Len(t, recent, 7)
}

func TestStartNewSeason_KeepsPriorSeasonRetrievable(t *testing.T) {
	tr, _, st := newTracker(t)
	require.NoError(t, st.SetCurrentSeason(18))
	season, err := tr.SwitchSeason(18)
	require.NoError(t, err)
	require.Equal(t, 18, season)

	require.NoError(t, tr.EditPoints("2026-08-26", 300))

	next, err := tr.StartNewSeason()
	require.NoError(t, err)
	assert.Equal(t, 19, next)
	assert.Equal(t, 19, tr.ViewedSeason())

	recent, err := tr.Recent()
	require.NoError(t, err)
	assert.Empty(t, recent)

	summary, err := tr.Summary()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.DaysRecorded)

	season, err = tr.SwitchSeason(18)
	require.NoError(t, err)
	assert.Equal(t, 18, season)
	recent, err = tr.Recent()
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, 300, recent[0].Points)
}

func TestSwitchSeason_OutOfRangeSilentlyIgnored(t *testing.T) {
	tr, _, st := newTracker(t)
	require.NoError(t, st.SetCurrentSeason(3))

	season, err := tr.SwitchSeason(2)
	require.NoError(t, err)
	assert.Equal(t, 2, season)

	season, err = tr.SwitchSeason(0)
	require.NoError(t, err)
	assert.Equal(t, 2, season)

	season, err = tr.SwitchSeason(4)
	require.NoError(t, err)
	assert.Equal(t, 2, season)
}

// The store has no read-only guard for past seasons; edits while viewing
// one write through to it.
func TestRecordAfterSwitchWritesToViewedSeason(t *testing.T) {
	tr, _, st := newTracker(t)
	require.NoError(t, st.SetCurrentSeason(5))

	season, err := tr.SwitchSeason(2)
	require.NoError(t, err)
	require.Equal(t, 2, season)

	require.NoError(t, tr.EditPoints("2026-01-10", 80))

	h2, err := st.History(2)
	require.NoError(t, err)
	assert.Equal(t, 80, h2["2026-01-10"])

	h5, err := st.History(5)
	require.NoError(t, err)
	assert.Empty(t, h5)
}

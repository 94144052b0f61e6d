package gameday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eastern(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(Locale)
	require.NoError(t, err)
	return loc
}

func at(loc *time.Location, y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, loc)
}

func TestDayAt_BeforeResetIsPreviousDate(t *testing.T) {
	loc := eastern(t)
	r := NewResolverAt(loc, nil)

	assert.Equal(t, "2026-03-09", r.DayAt(at(loc, 2026, time.March, 10, 16, 59)))
}

func TestDayAt_AfterResetIsCurrentDate(t *testing.T) {
	loc := eastern(t)
	r := NewResolverAt(loc, nil)

	assert.Equal(t, "2026-03-10", r.DayAt(at(loc, 2026, time.March, 10, 17, 1)))
	assert.Equal(t, "2026-03-10", r.DayAt(at(loc, 2026, time.March, 10, 17, 0)))
}

func TestDayAt_EarlyMorningBelongsToPreviousDate(t *testing.T) {
	loc := eastern(t)
	r := NewResolverAt(loc, nil)

	assert.Equal(t, "2026-02-28", r.DayAt(at(loc, 2026, time.March, 1, 0, 30)))
}

func TestCurrentDay_UsesInjectedClock(t *testing.T) {
	loc := eastern(t)
	now := at(loc, 2026, time.July, 4, 18, 0)
	r := NewResolverAt(loc, func() time.Time { return now })

	assert.Equal(t, "2026-07-04", r.CurrentDay())
}

func TestNextReset(t *testing.T) {
	loc := eastern(t)
	r := NewResolverAt(loc, nil)

	before := at(loc, 2026, time.March, 10, 9, 0)
	assert.Equal(t, at(loc, 2026, time.March, 10, 17, 0), r.NextReset(before))

	after := at(loc, 2026, time.March, 10, 17, 0)
	assert.Equal(t, at(loc, 2026, time.March, 11, 17, 0), r.NextReset(after))
}

func TestUntilResetAt(t *testing.T) {
	loc := eastern(t)
	r := NewResolverAt(loc, nil)

	c := r.UntilResetAt(at(loc, 2026, time.March, 10, 14, 30))
	assert.Equal(t, 2, c.Hours)
	assert.Equal(t, 30, c.Minutes)
	assert.Equal(t, "2h 30m", c.String())

	// Just past the boundary the countdown restarts near 24h.
	c = r.UntilResetAt(at(loc, 2026, time.March, 10, 17, 1))
	assert.Equal(t, 23, c.Hours)
	assert.Equal(t, 59, c.Minutes)
}

func TestUntilResetAt_UTCInstantResolvesThroughLocale(t *testing.T) {
	loc := eastern(t)
	r := NewResolverAt(loc, nil)

	// 2026-01-15 21:00 UTC is 16:00 in New York (EST, UTC-5).
	utc := time.Date(2026, time.January, 15, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-14", r.DayAt(utc))

	c := r.UntilResetAt(utc)
	assert.Equal(t, 1, c.Hours)
	assert.Equal(t, 0, c.Minutes)
}

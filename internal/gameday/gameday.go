package gameday

import (
	"fmt"
	"time"
)

const (
	// DayLayout is the ISO date key used for progress and history records.
	DayLayout = "2006-01-02"

	// ResetHour is the wall-clock hour of the daily rollover.
	ResetHour = 17

	// Locale is the operating calendar of the game servers.
	Locale = "America/New_York"
)

// Resolver maps instants to game days. The boundary is 17:00 wall clock
// in the game locale: before the boundary the active day is still the
// previous calendar date. The wall-clock rule is applied naively across
// DST transitions, matching the game's own reset.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

func NewResolver() (*Resolver, error) {
	loc, err := time.LoadLocation(Locale)
	if err != nil {
		return nil, fmt.Errorf("load game locale: %w", err)
	}
	return &Resolver{loc: loc, now: time.Now}, nil
}

// NewResolverAt builds a resolver with an injected clock and location.
func NewResolverAt(loc *time.Location, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{loc: loc, now: now}
}

// CurrentDay returns the active game-day key for the current instant.
func (r *Resolver) CurrentDay() string {
	return r.DayAt(r.now())
}

func (r *Resolver) DayAt(t time.Time) string {
	local := t.In(r.loc)
	if local.Hour() < ResetHour {
		local = local.AddDate(0, 0, -1)
	}
	return local.Format(DayLayout)
}

// NextReset returns the next 17:00 boundary at or after t.
func (r *Resolver) NextReset(t time.Time) time.Time {
	local := t.In(r.loc)
	reset := time.Date(local.Year(), local.Month(), local.Day(), ResetHour, 0, 0, 0, r.loc)
	if !local.Before(reset) {
		reset = reset.AddDate(0, 0, 1)
	}
	return reset
}

// Countdown is the time remaining until rollover, reported as whole
// hours and whole minutes.
type Countdown struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func (c Countdown) String() string {
	return fmt.Sprintf("%dh %dm", c.Hours, c.Minutes)
}

// UntilReset computes the countdown for the current instant.
func (r *Resolver) UntilReset() Countdown {
	return r.UntilResetAt(r.now())
}

func (r *Resolver) UntilResetAt(t time.Time) Countdown {
	d := r.NextReset(t).Sub(t)
	if d < 0 {
		d = 0
	}
	return Countdown{
		Hours:   int(d.Hours()),
		Minutes: int(d.Minutes()) % 60,
	}
}

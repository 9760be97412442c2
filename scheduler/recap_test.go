package scheduler

import (
	"testing"
	"time"

	"github.com/mbriand/atelier-bot/database"
)

func TestWeekKey(t *testing.T) {
	// 2026-01-01 falls in ISO week 1 of 2026; 2026-12-28 in week 53.
	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC), "2026-W35"},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "2026-W01"},
		// An early January day belonging to the previous ISO year.
		{time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "2026-W53"},
	}
	for _, tt := range tests {
		if got := WeekKey(tt.t); got != tt.want {
			t.Errorf("WeekKey(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestRecapDue(t *testing.T) {
	spec := database.RecapSpec{ChannelID: "500", Weekday: time.Sunday, At: "18:00"}
	sunday := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC) // a Sunday

	if !recapDue(spec, "", sunday) {
		t.Error("recap not due at the configured minute")
	}
	if recapDue(spec, WeekKey(sunday), sunday) {
		t.Error("recap due again within the latched week")
	}
	if recapDue(spec, "", sunday.Add(time.Minute)) {
		t.Error("recap due outside the configured minute")
	}
	if recapDue(spec, "", sunday.AddDate(0, 0, 1)) {
		t.Error("recap due on the wrong weekday")
	}
	// The next week clears the latch implicitly.
	nextSunday := sunday.AddDate(0, 0, 7)
	if !recapDue(spec, WeekKey(sunday), nextSunday) {
		t.Error("recap not due the following week")
	}
}

// A restart inside the scheduled minute reloads the latch from disk, so the
// second pass over the same minute must not be due.
func TestRecapExactlyOncePerWeek(t *testing.T) {
	spec := database.RecapSpec{ChannelID: "500", Weekday: time.Sunday, At: "18:00"}
	sunday := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	latch := ""
	sent := 0
	for _, now := range []time.Time{sunday, sunday.Add(30 * time.Second), sunday.Add(45 * time.Second)} {
		if recapDue(spec, latch, now) {
			sent++
			latch = WeekKey(now)
		}
	}
	if sent != 1 {
		t.Errorf("recap sent %d times in one minute, want once", sent)
	}
}

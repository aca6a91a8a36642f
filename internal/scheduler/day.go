package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
)

// Day is a calendar date pinned to the location whose midnight bounds it.
type Day struct {
	date time.Time // midnight UTC of the calendar date
	loc  *time.Location
}

// NewDay takes the calendar date of t as seen in loc.
func NewDay(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return Day{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), loc: loc}
}

// ParseDay parses a YYYY-MM-DD date in loc.
func ParseDay(s string, loc *time.Location) (Day, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(domain.DateLayout, s, loc)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return NewDay(t, loc), nil
}

func (d Day) Location() *time.Location { return d.loc }

// Start is midnight of the day in its location.
func (d Day) Start() time.Time {
	return d.At(0, 0)
}

// End is midnight of the following day; the day covers [Start, End).
func (d Day) End() time.Time {
	return d.AddDays(1).Start()
}

// At returns the wall-clock time hour:min on the day.
func (d Day) At(hour, min int) time.Time {
	y, m, dd := d.date.Date()
	return time.Date(y, m, dd, hour, min, 0, 0, d.loc)
}

func (d Day) AddDays(n int) Day {
	return Day{date: d.date.AddDate(0, 0, n), loc: d.loc}
}

func (d Day) Weekday() time.Weekday { return d.date.Weekday() }

// Date returns midnight UTC of the calendar date, the form repositories store.
func (d Day) Date() time.Time { return d.date }

func (d Day) String() string { return d.date.Format(domain.DateLayout) }

// DaysSince counts whole calendar days from the date part of t up to d.
// t is read as a calendar date in its own location, never converted.
func (d Day) DaysSince(t time.Time) int {
	y, m, dd := t.Date()
	from := time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	return int(d.date.Sub(from).Hours() / 24)
}

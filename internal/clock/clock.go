// Package clock centralises "now" and local day boundaries, so that
// "today" and "yesterday" are derived once per operation and can be
// pinned in tests.
package clock

import (
	"encoding/json"
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// System is the wall clock in a fixed location.
type System struct {
	loc *time.Location
}

func NewSystem(loc *time.Location) *System {
	if loc == nil {
		loc = time.UTC
	}
	return &System{loc: loc}
}

// LoadSystem resolves an IANA time zone name, empty means UTC.
func LoadSystem(timezone string) (*System, error) {
	if timezone == "" {
		return NewSystem(time.UTC), nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", timezone, err)
	}
	return NewSystem(loc), nil
}

func (s *System) Now() time.Time {
	return time.Now().In(s.loc)
}

func (s *System) Location() *time.Location {
	return s.loc
}

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

func (f Fixed) Location() *time.Location {
	return f.T.Location()
}

// Day is a calendar day in the clock location.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

func DayOf(t time.Time, loc *time.Location) Day {
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

func Today(c Clock) Day {
	return DayOf(c.Now(), c.Location())
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t, time.UTC), nil
}

// Start returns the first instant of the day in loc.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Range returns [start-of-day, start-of-next-day).
func (d Day) Range(loc *time.Location) Range {
	return Range{From: d.Start(loc), To: d.AddDays(1).Start(loc)}
}

func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC), time.UTC)
}

func (d Day) Before(o Day) bool {
	return d.String() < o.String()
}

func (d Day) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// Time returns midnight UTC of the day, used as a DATE value in queries.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Range is a half-open time window [From, To).
type Range struct {
	From time.Time
	To   time.Time
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// LastDays returns the window covering the n days ending with today (inclusive).
func LastDays(c Clock, n int) Range {
	today := Today(c)
	return Range{
		From: today.AddDays(-(n - 1)).Start(c.Location()),
		To:   today.AddDays(1).Start(c.Location()),
	}
}

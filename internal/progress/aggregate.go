package progress

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/2beens/fittrack/internal/clock"
)

type Order int

const (
	Descending Order = iota
	Ascending
)

func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "", "desc":
		return Descending, nil
	case "asc":
		return Ascending, nil
	default:
		return Descending, fmt.Errorf("invalid order: %q", s)
	}
}

type Options struct {
	Order Order
	// Limit keeps the most recent entries, 0 keeps all.
	Limit int
	// Location decides the calendar day of timestamped records, UTC when nil.
	Location *time.Location
}

// Aggregation holds the built entries and the errors of the streams that failed.
type Aggregation struct {
	Entries  []Entry
	Warnings error
	// Failed names the streams behind Warnings.
	Failed []string
}

func (a Aggregation) Partial() bool {
	return len(a.Failed) > 0
}

// FailedStreams lists the names of the streams that could not be loaded.
func (s Sources) FailedStreams() []string {
	var failed []string
	if s.Weights.Failed() {
		failed = append(failed, "weights")
	}
	if s.Protein.Failed() {
		failed = append(failed, "protein")
	}
	if s.Workouts.Failed() {
		failed = append(failed, "workouts")
	}
	if s.BodyLogs.Failed() {
		failed = append(failed, "body_logs")
	}
	return failed
}

type dayValues struct {
	entry      Entry
	weightAt   time.Time
	proteinAt  time.Time
	bodyLogAt  time.Time
	hasWeight  bool
	hasProtein bool
	hasBodyLog bool
}

// BuildEntries merges the successful streams into one entry per calendar day.
// It never fails: failed streams contribute no values and end up in Warnings.
func BuildEntries(src Sources, opts Options) Aggregation {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	var warnings error
	days := map[clock.Day]*dayValues{}
	get := func(d clock.Day) *dayValues {
		v, ok := days[d]
		if !ok {
			v = &dayValues{entry: Entry{Date: d}}
			days[d] = v
		}
		return v
	}

	if src.Weights.Failed() {
		warnings = multierr.Append(warnings, fmt.Errorf("weights: %w", src.Weights.Err))
	} else {
		for _, w := range src.Weights.Records {
			v := get(clock.DayOf(w.RecordedAt, loc))
			if !v.hasWeight || w.RecordedAt.After(v.weightAt) {
				v.entry.Weight = w.WeightKg
				v.weightAt = w.RecordedAt
				v.hasWeight = true
			}
		}
	}

	if src.Protein.Failed() {
		warnings = multierr.Append(warnings, fmt.Errorf("protein: %w", src.Protein.Err))
	} else {
		for _, p := range src.Protein.Records {
			v := get(p.Day)
			if !v.hasProtein || p.RecordedAt.After(v.proteinAt) {
				v.entry.ProteinConsumed = p.Grams
				v.proteinAt = p.RecordedAt
				v.hasProtein = true
			}
		}
	}

	if src.Workouts.Failed() {
		warnings = multierr.Append(warnings, fmt.Errorf("workouts: %w", src.Workouts.Err))
	} else {
		for _, c := range src.Workouts.Records {
			get(c.Day).entry.WorkoutCompleted = true
		}
	}

	if src.BodyLogs.Failed() {
		warnings = multierr.Append(warnings, fmt.Errorf("body logs: %w", src.BodyLogs.Err))
	} else {
		for _, b := range src.BodyLogs.Records {
			v := get(b.Day)
			if v.hasBodyLog && !b.RecordedAt.After(v.bodyLogAt) {
				continue
			}
			v.entry.SleepHours = 0
			if b.SleepHours != nil {
				v.entry.SleepHours = *b.SleepHours
			}
			v.entry.Measurements = nil
			if b.Measurements != nil && !b.Measurements.IsEmpty() {
				m := *b.Measurements
				v.entry.Measurements = &m
			}
			v.bodyLogAt = b.RecordedAt
			v.hasBodyLog = true
		}
	}

	entries := make([]Entry, 0, len(days))
	for _, v := range days {
		entries = append(entries, v.entry)
	}
	// most recent first, then cap
	sort.Slice(entries, func(i, j int) bool {
		return entries[j].Date.Before(entries[i].Date)
	})
	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	if opts.Order == Ascending {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}

	return Aggregation{
		Entries:  entries,
		Warnings: warnings,
		Failed:   src.FailedStreams(),
	}
}

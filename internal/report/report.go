// Package report builds exportable progress reports: three record sheets and a
// one page summary, encoded as a spreadsheet or a PDF document.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/progress"
	"github.com/2beens/fittrack/internal/workouts"
)

const (
	Title            = "FitTrack Progress Report"
	NoDataMarker     = "No data available"
	SummaryRecentMax = 5

	SheetWeightHistory   = "Weight History"
	SheetProteinTracking = "Protein Tracking"
	SheetWorkouts        = "Workouts"

	generatedLayout = "2006-01-02 15:04"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusEmpty       Status = "empty"
	StatusUnavailable Status = "unavailable"
)

// Table is one category of records. Tables that are not available carry no rows
// and are rendered with the NoDataMarker instead.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
	Status Status
}

func (t Table) HasData() bool {
	return t.Status == StatusAvailable
}

type Field struct {
	Label string
	Value string
}

type Summary struct {
	Title   string
	Profile []Field
	Recent  []Table
	Footer  string
}

type Report struct {
	GeneratedAt time.Time
	Sheets      []Table
	Summary     Summary
}

// Assemble formats the profile and the record streams into report content.
// Every category is present: a failed stream becomes an unavailable table.
func Assemble(p profile.Profile, src progress.Sources, now time.Time) Report {
	loc := now.Location()
	sheets := []Table{
		weightTable(src.Weights, loc),
		proteinTable(src.Protein),
		workoutsTable(src.Workouts),
	}

	recent := make([]Table, 0, len(sheets))
	for _, s := range sheets {
		r := s
		r.Title = "Recent " + s.Title
		if len(r.Rows) > SummaryRecentMax {
			r.Rows = r.Rows[:SummaryRecentMax]
		}
		recent = append(recent, r)
	}

	return Report{
		GeneratedAt: now,
		Sheets:      sheets,
		Summary: Summary{
			Title:   Title,
			Profile: profileFields(p),
			Recent:  recent,
			Footer:  "Generated on " + now.Format(generatedLayout),
		},
	}
}

// FileName returns the download name for the given extension, e.g. FitTrack_Report_2024-03-06.pdf.
func FileName(now time.Time, ext string) string {
	return fmt.Sprintf("FitTrack_Report_%s.%s", now.Format(clock.DayLayout), ext)
}

func profileFields(p profile.Profile) []Field {
	return []Field{
		{Label: "Name", Value: p.Name},
		{Label: "Current Weight", Value: formatKg(p.WeightKg) + " kg"},
		{Label: "Goal", Value: p.GoalType.Label()},
		{Label: "Workout Streak", Value: fmt.Sprintf("%d days", p.WorkoutStreak)},
		{Label: "Completed Workouts", Value: strconv.Itoa(p.CompletedWorkouts)},
	}
}

func newTable(title string, header []string, failed bool, rows [][]string) Table {
	t := Table{
		Title:  title,
		Header: header,
		Rows:   rows,
		Status: StatusAvailable,
	}
	switch {
	case failed:
		t.Status = StatusUnavailable
		t.Rows = nil
	case len(rows) == 0:
		t.Status = StatusEmpty
	}
	return t
}

func weightTable(res progress.Result[progress.WeightRecord], loc *time.Location) Table {
	records := append([]progress.WeightRecord{}, res.Records...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RecordedAt.After(records[j].RecordedAt)
	})

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			clock.DayOf(r.RecordedAt, loc).String(),
			formatKg(r.WeightKg),
		})
	}
	return newTable(SheetWeightHistory, []string{"Date", "Weight (kg)"}, res.Failed(), rows)
}

func proteinTable(res progress.Result[nutrition.ProteinRecord]) Table {
	records := append([]nutrition.ProteinRecord{}, res.Records...)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Day != records[j].Day {
			return records[j].Day.Before(records[i].Day)
		}
		return records[i].RecordedAt.After(records[j].RecordedAt)
	})

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Day.String(), strconv.Itoa(r.Grams)})
	}
	return newTable(SheetProteinTracking, []string{"Date", "Protein (g)"}, res.Failed(), rows)
}

func workoutsTable(res progress.Result[workouts.Completion]) Table {
	records := append([]workouts.Completion{}, res.Records...)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Day != records[j].Day {
			return records[j].Day.Before(records[i].Day)
		}
		return records[i].CompletedAt.After(records[j].CompletedAt)
	})

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Day.String(), r.Title, time.Weekday(r.Weekday).String()})
	}
	return newTable(SheetWorkouts, []string{"Date", "Workout", "Day"}, res.Failed(), rows)
}

func formatKg(kg float64) string {
	return strconv.FormatFloat(kg, 'f', 1, 64)
}

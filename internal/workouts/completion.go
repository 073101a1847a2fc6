package workouts

import (
	"errors"
	"time"

	"github.com/2beens/fittrack/internal/clock"
)

var (
	ErrAlreadyCompleted = errors.New("workout already completed today")
	ErrNotCompleted     = errors.New("workout not completed today")
)

// Completion records a finished workout. StreakBefore and CompletedBefore keep the
// profile counters as they were before the completion, so it can be undone exactly.
type Completion struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"-"`
	Day             clock.Day `json:"date"`
	Weekday         Weekday   `json:"day"`
	Title           string    `json:"title"`
	CompletedAt     time.Time `json:"completedAt"`
	StreakBefore    int       `json:"-"`
	CompletedBefore int       `json:"-"`
}

// EvaluateStreakOnCompletion extends the streak when yesterday has a completion,
// otherwise today starts a new streak of 1.
func EvaluateStreakOnCompletion(currentStreak int, hasYesterdayCompletion bool) int {
	if hasYesterdayCompletion {
		return currentStreak + 1
	}
	return 1
}

// EvaluateStreakOnUnmark returns the counters to restore when c is removed.
func EvaluateStreakOnUnmark(c Completion) (streak int, completed int) {
	return c.StreakBefore, c.CompletedBefore
}

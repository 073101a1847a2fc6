package progress

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/workouts"
)

// TrendLimit is the number of most recent entries shown in trend views.
const TrendLimit = 30

const MaxSleepHours = 24

var (
	ErrInvalidSleep       = errors.New("invalid sleep hours")
	ErrInvalidMeasurement = errors.New("invalid measurement")
	ErrEmptyEntry         = errors.New("empty progress entry")
)

// Measurements are body circumferences in centimeters, each optional.
type Measurements struct {
	Arms  *float64 `json:"arms,omitempty"`
	Chest *float64 `json:"chest,omitempty"`
	Waist *float64 `json:"waist,omitempty"`
	Legs  *float64 `json:"legs,omitempty"`
}

func (m Measurements) IsEmpty() bool {
	return m.Arms == nil && m.Chest == nil && m.Waist == nil && m.Legs == nil
}

func (m Measurements) Validate() error {
	for name, v := range map[string]*float64{"arms": m.Arms, "chest": m.Chest, "waist": m.Waist, "legs": m.Legs} {
		if v == nil {
			continue
		}
		if math.IsNaN(*v) || *v <= 0 || *v > 500 {
			return fmt.Errorf("%w: %s %v", ErrInvalidMeasurement, name, *v)
		}
	}
	return nil
}

// Entry is one calendar day of merged observations.
type Entry struct {
	Date             clock.Day     `json:"date"`
	Weight           float64       `json:"weight"`
	SleepHours       float64       `json:"sleepHours"`
	ProteinConsumed  int           `json:"proteinConsumed"`
	Measurements     *Measurements `json:"measurements,omitempty"`
	WorkoutCompleted bool          `json:"workoutCompleted"`
}

type WeightRecord struct {
	ID         int64     `json:"id"`
	WeightKg   float64   `json:"weight"`
	RecordedAt time.Time `json:"recordedAt"`
}

// BodyLog is the daily sleep and measurements record.
type BodyLog struct {
	Day          clock.Day     `json:"date"`
	SleepHours   *float64      `json:"sleepHours,omitempty"`
	Measurements *Measurements `json:"measurements,omitempty"`
	RecordedAt   time.Time     `json:"recordedAt"`
}

// Result is the outcome of loading one record stream.
// Err set means the stream failed and Records must be ignored.
type Result[T any] struct {
	Records []T
	Err     error
}

func Ok[T any](records []T) Result[T] {
	return Result[T]{Records: records}
}

func Failed[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[T]) Failed() bool {
	return r.Err != nil
}

// Sources are the record streams progress entries are built from.
type Sources struct {
	Weights  Result[WeightRecord]
	Protein  Result[nutrition.ProteinRecord]
	Workouts Result[workouts.Completion]
	BodyLogs Result[BodyLog]
}

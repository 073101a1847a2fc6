package profile

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidWeight   = errors.New("invalid weight")
	ErrInvalidHeight   = errors.New("invalid height")
	ErrInvalidGoal     = errors.New("invalid goal type")
	ErrInvalidName     = errors.New("invalid name")
	ErrEmptyUpdate     = errors.New("nothing to update")
)

const (
	MaxWeightKg = 500
	MaxHeightCm = 300
)

type GoalType string

const (
	GoalMuscle     GoalType = "muscle"
	GoalFatLoss    GoalType = "fat_loss"
	GoalWeightGain GoalType = "weight_gain"
	GoalStrength   GoalType = "strength"
)

var goalLabels = map[GoalType]string{
	GoalMuscle:     "Muscle Gain",
	GoalFatLoss:    "Fat Loss",
	GoalWeightGain: "Weight Gain",
	GoalStrength:   "Strength",
}

func (g GoalType) Valid() bool {
	_, ok := goalLabels[g]
	return ok
}

// Label returns the human-readable goal name. Unknown goals are shown as stored.
func (g GoalType) Label() string {
	if l, ok := goalLabels[g]; ok {
		return l
	}
	return string(g)
}

func ParseGoalType(s string) (GoalType, error) {
	g := GoalType(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGoal, s)
	}
	return g, nil
}

type Profile struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	WeightKg          float64   `json:"weightKg"`
	GoalType          GoalType  `json:"goalType"`
	WorkoutStreak     int       `json:"workoutStreak"`
	CompletedWorkouts int       `json:"completedWorkouts"`
	HeightCm          *float64  `json:"heightCm,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Update is a partial profile change. Nil fields are left untouched.
type Update struct {
	Name              *string   `json:"name,omitempty"`
	WeightKg          *float64  `json:"weightKg,omitempty"`
	GoalType          *GoalType `json:"goalType,omitempty"`
	HeightCm          *float64  `json:"heightCm,omitempty"`
	WorkoutStreak     *int      `json:"workoutStreak,omitempty"`
	CompletedWorkouts *int      `json:"completedWorkouts,omitempty"`
}

func (u Update) IsEmpty() bool {
	return u.Name == nil &&
		u.WeightKg == nil &&
		u.GoalType == nil &&
		u.HeightCm == nil &&
		u.WorkoutStreak == nil &&
		u.CompletedWorkouts == nil
}

// Validate checks the fields a user may set. Counters are checked only for sign.
func (u Update) Validate() error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return ErrInvalidName
	}
	if u.WeightKg != nil {
		if err := ValidateWeight(*u.WeightKg); err != nil {
			return err
		}
	}
	if u.HeightCm != nil {
		if err := ValidateHeight(*u.HeightCm); err != nil {
			return err
		}
	}
	if u.GoalType != nil && !u.GoalType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidGoal, *u.GoalType)
	}
	if u.WorkoutStreak != nil && *u.WorkoutStreak < 0 {
		return errors.New("negative workout streak")
	}
	if u.CompletedWorkouts != nil && *u.CompletedWorkouts < 0 {
		return errors.New("negative completed workouts")
	}
	return nil
}

// Apply returns a copy of p with the update applied.
func (u Update) Apply(p Profile) Profile {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.WeightKg != nil {
		p.WeightKg = *u.WeightKg
	}
	if u.GoalType != nil {
		p.GoalType = *u.GoalType
	}
	if u.HeightCm != nil {
		h := *u.HeightCm
		p.HeightCm = &h
	}
	if u.WorkoutStreak != nil {
		p.WorkoutStreak = *u.WorkoutStreak
	}
	if u.CompletedWorkouts != nil {
		p.CompletedWorkouts = *u.CompletedWorkouts
	}
	return p
}

func ValidateWeight(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 || weightKg > MaxWeightKg {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weightKg)
	}
	return nil
}

func ValidateHeight(heightCm float64) error {
	if math.IsNaN(heightCm) || math.IsInf(heightCm, 0) || heightCm <= 0 || heightCm > MaxHeightCm {
		return fmt.Errorf("%w: %v", ErrInvalidHeight, heightCm)
	}
	return nil
}

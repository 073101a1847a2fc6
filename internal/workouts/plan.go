package workouts

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/clock"
)

type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleBack       MuscleGroup = "back"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleQuads      MuscleGroup = "quads"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleCalves     MuscleGroup = "calves"
)

// Weekday is a time.Weekday that travels as a lowercase name ("monday").
type Weekday time.Weekday

func (d Weekday) String() string {
	return strings.ToLower(time.Weekday(d).String())
}

func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if Weekday(wd).String() == s {
			return Weekday(wd), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", s)
}

func (d Weekday) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Weekday) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseWeekday(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type Exercise struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Sets         int         `json:"sets"`
	RepsRange    string      `json:"repsRange"`
	MuscleGroup  MuscleGroup `json:"muscleGroup"`
	ImageURL     string      `json:"imageUrl"`
	Instructions string      `json:"instructions"`
}

type Workout struct {
	Day         Weekday    `json:"day"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
}

func (w Workout) IsRestDay() bool {
	return len(w.Exercises) == 0
}

// Plan holds one workout per weekday, indexed by time.Weekday.
type Plan [7]Workout

func (p Plan) ForDay(wd time.Weekday) Workout {
	return p[wd]
}

func (p Plan) Today(c clock.Clock) Workout {
	return p.ForDay(clock.Today(c).Weekday())
}

// Week returns the workouts from Monday to Sunday.
func (p Plan) Week() []Workout {
	week := make([]Workout, 0, len(p))
	for i := 1; i <= 7; i++ {
		week = append(week, p[time.Weekday(i%7)])
	}
	return week
}

const placeholderImage = "/public/placeholder.svg"

var (
	pushExercises = []Exercise{
		{ID: "bench-press", Name: "Barbell Bench Press", Sets: 4, RepsRange: "6-8", MuscleGroup: MuscleChest, ImageURL: placeholderImage,
			Instructions: "Lie on a flat bench with feet on the ground. Grip the bar slightly wider than shoulder-width. Lower the bar to your chest, then press back up."},
		{ID: "shoulder-press", Name: "Dumbbell Shoulder Press", Sets: 4, RepsRange: "8-10", MuscleGroup: MuscleShoulders, ImageURL: placeholderImage,
			Instructions: "Sit on a bench with back support. Hold dumbbells at shoulder height. Press weights upward until arms are extended, then lower."},
		{ID: "incline-press", Name: "Incline Dumbbell Press", Sets: 3, RepsRange: "8-10", MuscleGroup: MuscleChest, ImageURL: placeholderImage,
			Instructions: "Lie on an incline bench. Hold dumbbells at shoulder width. Press weights up until arms are extended, then lower."},
		{ID: "lateral-raises", Name: "Lateral Raises", Sets: 3, RepsRange: "12-15", MuscleGroup: MuscleShoulders, ImageURL: placeholderImage,
			Instructions: "Stand with dumbbells at your sides. Raise arms out to the sides until parallel with the floor, then lower."},
		{ID: "chest-fly", Name: "Cable Chest Fly", Sets: 3, RepsRange: "10-12", MuscleGroup: MuscleChest, ImageURL: placeholderImage,
			Instructions: "Stand between cable machines. Grab handles with arms extended. Pull handles together in front of you, then return."},
		{ID: "tricep-pushdown", Name: "Tricep Pushdowns", Sets: 3, RepsRange: "10-12", MuscleGroup: MuscleTriceps, ImageURL: placeholderImage,
			Instructions: "Stand at cable machine with high pulley. Grab bar with overhand grip. Push down until arms are straight, then return."},
		{ID: "tricep-extension", Name: "Overhead Tricep Extensions", Sets: 3, RepsRange: "10-12", MuscleGroup: MuscleTriceps, ImageURL: placeholderImage,
			Instructions: "Hold dumbbell with both hands behind your head. Extend arms upward, then lower weight back down."},
	}

	pullExercises = []Exercise{
		{ID: "pull-ups", Name: "Pull-Ups or Lat Pulldowns", Sets: 4, RepsRange: "8-10", MuscleGroup: MuscleBack, ImageURL: placeholderImage,
			Instructions: "Hang from a bar with hands wider than shoulder width. Pull yourself up until chin is over the bar, then lower."},
		{ID: "barbell-rows", Name: "Barbell Rows", Sets: 4, RepsRange: "8-10", MuscleGroup: MuscleBack, ImageURL: placeholderImage,
			Instructions: "Bend at hips with slight knee bend. Hold bar with overhand grip. Pull bar to lower chest, then lower."},
		{ID: "seated-rows", Name: "Seated Cable Rows", Sets: 3, RepsRange: "10-12", MuscleGroup: MuscleBack, ImageURL: placeholderImage,
			Instructions: "Sit at cable row machine. Pull handle to waist while keeping back straight, then extend arms."},
		{ID: "face-pulls", Name: "Face Pulls", Sets: 3, RepsRange: "12-15", MuscleGroup: MuscleShoulders, ImageURL: placeholderImage,
			Instructions: "Stand at cable machine with rope attachment. Pull rope towards face while spreading ends apart, then return."},
		{ID: "barbell-curls", Name: "Barbell Curls", Sets: 3, RepsRange: "10-12", MuscleGroup: MuscleBiceps, ImageURL: placeholderImage,
			Instructions: "Stand with barbell in hands using underhand grip. Curl weight up while keeping elbows fixed, then lower."},
		{ID: "hammer-curls", Name: "Hammer Curls", Sets: 3, RepsRange: "10-12", MuscleGroup: MuscleBiceps, ImageURL: placeholderImage,
			Instructions: "Stand with dumbbells in hands, palms facing each other. Curl weights up while keeping elbows fixed, then lower."},
	}

	legExercises = []Exercise{
		{ID: "squats", Name: "Squats", Sets: 4, RepsRange: "6-8", MuscleGroup: MuscleQuads, ImageURL: placeholderImage,
			Instructions: "Stand with barbell on shoulders. Bend knees and lower into squat position, then stand back up."},
		{ID: "romanian-deadlifts", Name: "Romanian Deadlifts", Sets: 4, RepsRange: "8-10", MuscleGroup: MuscleHamstrings, ImageURL: placeholderImage,
			Instructions: "Hold barbell in front of thighs. Hinge at hips and lower weight while keeping back straight, then return to starting position."},
		{ID: "leg-press", Name: "Leg Press", Sets: 3, RepsRange: "10-12", MuscleGroup: MuscleQuads, ImageURL: placeholderImage,
			Instructions: "Sit at leg press machine. Push weight away with feet until legs are extended, then return."},
		{ID: "walking-lunges", Name: "Walking Lunges", Sets: 3, RepsRange: "12/leg", MuscleGroup: MuscleQuads, ImageURL: placeholderImage,
			Instructions: "Hold dumbbells at sides. Step forward into a lunge position, then bring back leg forward to step again."},
		{ID: "leg-curls", Name: "Leg Curls", Sets: 3, RepsRange: "12-15", MuscleGroup: MuscleHamstrings, ImageURL: placeholderImage,
			Instructions: "Lie face down on leg curl machine. Curl legs up by bringing heels toward buttocks, then lower."},
		{ID: "calf-raises", Name: "Calf Raises (Standing/Seated)", Sets: 4, RepsRange: "15-20", MuscleGroup: MuscleCalves, ImageURL: placeholderImage,
			Instructions: "Stand with weights on shoulders or seated with weight on knees. Raise heels as high as possible, then lower."},
	}
)

// DefaultPlan is the push/pull/legs split with Sunday off.
func DefaultPlan() Plan {
	push := func(d time.Weekday) Workout {
		return Workout{Day: Weekday(d), Title: "Push Day", Description: "Focus on Chest, Shoulders, and Triceps", Exercises: pushExercises}
	}
	pull := func(d time.Weekday) Workout {
		return Workout{Day: Weekday(d), Title: "Pull Day", Description: "Focus on Back and Biceps", Exercises: pullExercises}
	}
	legs := func(d time.Weekday) Workout {
		return Workout{Day: Weekday(d), Title: "Leg Day", Description: "Focus on Quads, Glutes, Hamstrings, and Calves", Exercises: legExercises}
	}

	return Plan{
		time.Sunday:    {Day: Weekday(time.Sunday), Title: "Rest Day", Description: "Rest, Light Cardio, or Stretching", Exercises: []Exercise{}},
		time.Monday:    push(time.Monday),
		time.Tuesday:   pull(time.Tuesday),
		time.Wednesday: legs(time.Wednesday),
		time.Thursday:  push(time.Thursday),
		time.Friday:    pull(time.Friday),
		time.Saturday:  legs(time.Saturday),
	}
}

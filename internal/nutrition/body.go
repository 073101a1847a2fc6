package nutrition

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidBodyParams = errors.New("invalid body parameters")
	ErrInvalidGender     = errors.New("invalid gender")
	ErrInvalidActivity   = errors.New("invalid activity level")
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

type BMI struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, fmt.Errorf("%w: weight %v, height %v", ErrInvalidBodyParams, weightKg, heightCm)
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// DailyCalories uses the Harris-Benedict BMR times the activity multiplier.
func DailyCalories(weightKg, heightCm float64, age int, gender Gender, activity ActivityLevel) (int, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, fmt.Errorf("%w: weight %v, height %v, age %d", ErrInvalidBodyParams, weightKg, heightCm, age)
	}

	var bmr float64
	switch gender {
	case GenderMale:
		bmr = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	case GenderFemale:
		bmr = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGender, gender)
	}

	multiplier, ok := activityMultipliers[activity]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidActivity, activity)
	}

	return int(math.Floor(bmr*multiplier + 0.5)), nil
}

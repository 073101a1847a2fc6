package nutrition

import (
	"math"

	"github.com/2beens/fittrack/internal/profile"
)

const defaultProteinMultiplier = 1.6

var proteinMultipliers = map[profile.GoalType]float64{
	profile.GoalMuscle:     2.0,
	profile.GoalFatLoss:    2.2,
	profile.GoalWeightGain: 1.8,
	profile.GoalStrength:   1.6,
}

// ProteinGoal is derived from the profile on every read and never stored.
type ProteinGoal struct {
	DailyGrams int `json:"dailyGrams"`
	Consumed   int `json:"consumed"`
}

func (g ProteinGoal) Remaining() int {
	if g.Consumed >= g.DailyGrams {
		return 0
	}
	return g.DailyGrams - g.Consumed
}

// Percent is the consumed share of the daily goal, capped at 100.
func (g ProteinGoal) Percent() int {
	if g.DailyGrams <= 0 {
		return 0
	}
	p := int(math.Floor(float64(g.Consumed)*100/float64(g.DailyGrams) + 0.5))
	return min(p, 100)
}

func ProteinMultiplier(goal profile.GoalType) float64 {
	if m, ok := proteinMultipliers[goal]; ok {
		return m
	}
	return defaultProteinMultiplier
}

// ComputeDailyProteinGoal returns weight times the goal multiplier, rounded half up.
// Callers validate the weight first.
func ComputeDailyProteinGoal(weightKg float64, goal profile.GoalType) int {
	return int(math.Floor(weightKg*ProteinMultiplier(goal) + 0.5))
}

func GoalFor(p profile.Profile, consumed int) ProteinGoal {
	return ProteinGoal{
		DailyGrams: ComputeDailyProteinGoal(p.WeightKg, p.GoalType),
		Consumed:   consumed,
	}
}

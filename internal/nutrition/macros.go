// Package nutrition derives daily calorie and macronutrient targets from
// body metrics. The calculation is a pure function: deterministic, no
// state, recomputed from scratch on every request.
package nutrition

import (
	"errors"
	"fmt"
	"math"
)

// --- Error Definitions ---
var ErrInvalidBodyProfile = errors.New("invalid body profile")

// Gender as used by the Mifflin-St Jeor equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel buckets weekly training volume.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// Goal adjusts total calories up or down.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// DietPreference constrains the generated diet text, not the math.
type DietPreference string

const (
	DietNonVegetarian DietPreference = "non-vegetarian"
	DietVegetarian    DietPreference = "vegetarian"
	DietVegan         DietPreference = "vegan"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var goalMultipliers = map[Goal]float64{
	GoalLose:     0.8,
	GoalMaintain: 1.0,
	GoalGain:     1.15,
}

// BodyProfile is the transient input to one calculation. It is never
// persisted.
type BodyProfile struct {
	WeightKg       float64        `json:"weightKg"`
	HeightCm       float64        `json:"heightCm"`
	Age            int            `json:"age"`
	Gender         Gender         `json:"gender"`
	ActivityLevel  ActivityLevel  `json:"activityLevel"`
	Goal           Goal           `json:"goal"`
	DietPreference DietPreference `json:"dietPreference"`
}

// MacroTargets is the derived daily target set. Values are whole units
// (kcal and grams), rounded to nearest.
type MacroTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"proteinG"`
	CarbsG   int `json:"carbsG"`
	FatsG    int `json:"fatsG"`
}

// Validate rejects missing, non-positive or unknown-enum inputs before any
// computation runs.
func (p BodyProfile) Validate() error {
	if p.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidBodyProfile)
	}
	if p.HeightCm <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidBodyProfile)
	}
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrInvalidBodyProfile)
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidBodyProfile, p.Gender)
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidBodyProfile, p.ActivityLevel)
	}
	if _, ok := goalMultipliers[p.Goal]; !ok {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidBodyProfile, p.Goal)
	}
	return nil
}

// BMR computes basal metabolic rate via Mifflin-St Jeor.
func BMR(p BodyProfile) float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == GenderMale {
		return base + 5
	}
	return base - 161
}

// Calculate derives the daily targets for a profile:
// BMR -> TDEE (activity multiplier) -> goal-adjusted calories, then
// protein 2.2 g/kg, 45% of calories from carbs, 25% from fats.
func Calculate(p BodyProfile) (MacroTargets, error) {
	if err := p.Validate(); err != nil {
		return MacroTargets{}, err
	}
	tdee := BMR(p) * activityMultipliers[p.ActivityLevel]
	adjusted := tdee * goalMultipliers[p.Goal]
	return MacroTargets{
		Calories: int(math.Round(adjusted)),
		ProteinG: int(math.Round(p.WeightKg * 2.2)),
		CarbsG:   int(math.Round(adjusted * 0.45 / 4)),
		FatsG:    int(math.Round(adjusted * 0.25 / 9)),
	}, nil
}

package utils

import (
	"math"

	"backend/models"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Single source of truth for valid activity levels.
var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
	"extra":     1.9,
}

// goalAdjustments shifts the maintenance estimate per stated goal, in kcal.
var goalAdjustments = map[string]float64{
	"lose":     -500,
	"maintain": 0,
	"gain":     300,
	"muscle":   250,
}

// baselineCalories anchors the estimate: 2000 kcal at moderate activity.
const baselineCalories = 2000

// RecommendedGoals derives a daily target set from activity level and goal.
// The macro split is 30% protein / 40% carbs / 30% fat by calories, using
// 4 kcal per gram of protein and carbs and 9 kcal per gram of fat.
// Unknown levels or goals fall back to moderate / maintain.
func RecommendedGoals(activityLevel, goal string) models.UserGoals {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		activityLevel = "moderate"
		mult = activityMultipliers[activityLevel]
	}
	adj, ok := goalAdjustments[goal]
	if !ok {
		goal = "maintain"
		adj = 0
	}

	calories := baselineCalories/activityMultipliers["moderate"]*mult + adj

	return models.UserGoals{
		Calories:      math.Round(calories),
		Protein:       math.Round(calories * 0.30 / 4),
		Carbs:         math.Round(calories * 0.40 / 4),
		Fat:           math.Round(calories * 0.30 / 9),
		ActivityLevel: activityLevel,
		Goal:          goal,
	}
}

// MacroDistribution returns each macro's share of the calorie target as a
// percentage, the same numbers the goals screen shows. Zero calories yields
// all zeros rather than dividing by zero.
func MacroDistribution(g models.UserGoals) map[string]float64 {
	if g.Calories <= 0 {
		return map[string]float64{"protein": 0, "carbs": 0, "fat": 0}
	}
	return map[string]float64{
		"protein": math.Round(g.Protein * 4 / g.Calories * 100),
		"carbs":   math.Round(g.Carbs * 4 / g.Calories * 100),
		"fat":     math.Round(g.Fat * 9 / g.Calories * 100),
	}
}

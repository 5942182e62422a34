package utils

import "testing"

func TestRecommendedGoalsMaintainModerate(t *testing.T) {
	g := RecommendedGoals("moderate", "maintain")
	if g.Calories != 2000 {
		t.Errorf("calories: expected 2000, got %v", g.Calories)
	}
	if g.Protein != 150 {
		t.Errorf("protein: expected 150, got %v", g.Protein)
	}
	if g.Carbs != 200 {
		t.Errorf("carbs: expected 200, got %v", g.Carbs)
	}
	if g.Fat != 67 {
		t.Errorf("fat: expected 67, got %v", g.Fat)
	}
}

func TestRecommendedGoalsAdjustments(t *testing.T) {
	lose := RecommendedGoals("moderate", "lose")
	if lose.Calories != 1500 {
		t.Errorf("lose at moderate: expected 1500, got %v", lose.Calories)
	}

	gain := RecommendedGoals("active", "gain")
	// 2000 / 1.55 * 1.725 + 300
	if gain.Calories != 2526 {
		t.Errorf("gain at active: expected 2526, got %v", gain.Calories)
	}

	sedentary := RecommendedGoals("sedentary", "maintain")
	// 2000 / 1.55 * 1.2
	if sedentary.Calories != 1548 {
		t.Errorf("maintain at sedentary: expected 1548, got %v", sedentary.Calories)
	}
}

func TestRecommendedGoalsUnknownInputsFallBack(t *testing.T) {
	g := RecommendedGoals("couch", "get swole")
	if g.ActivityLevel != "moderate" || g.Goal != "maintain" {
		t.Errorf("expected moderate/maintain fallback, got %s/%s", g.ActivityLevel, g.Goal)
	}
	if g.Calories != 2000 {
		t.Errorf("calories: expected 2000, got %v", g.Calories)
	}
}

func TestMacroDistribution(t *testing.T) {
	g := RecommendedGoals("moderate", "maintain")
	dist := MacroDistribution(g)
	if dist["protein"] != 30 {
		t.Errorf("protein share: expected 30, got %v", dist["protein"])
	}
	if dist["carbs"] != 40 {
		t.Errorf("carbs share: expected 40, got %v", dist["carbs"])
	}
	if dist["fat"] != 30 {
		t.Errorf("fat share: expected 30, got %v", dist["fat"])
	}
}

func TestMacroDistributionZeroCalories(t *testing.T) {
	g := RecommendedGoals("moderate", "maintain")
	g.Calories = 0
	dist := MacroDistribution(g)
	for macro, pct := range dist {
		if pct != 0 {
			t.Errorf("%s: expected 0 with zero calorie target, got %v", macro, pct)
		}
	}
}

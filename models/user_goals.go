package models

// UserGoals holds the daily macro targets plus the profile knobs the UI
// shows next to them. One per user session, kept in memory by the meal
// store; no history is retained.
type UserGoals struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
}

// DefaultUserGoals are the targets a fresh session starts with.
func DefaultUserGoals() UserGoals {
	return UserGoals{
		Calories:      2000,
		Protein:       150,
		Carbs:         250,
		Fat:           65,
		ActivityLevel: "moderate",
		Goal:          "maintain",
	}
}

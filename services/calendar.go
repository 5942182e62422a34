package services

import (
	"sort"
	"strings"

	"backend/models"
)

// DayOverview is one calendar cell: what was consumed that day and how it
// compares to the calorie goal.
type DayOverview struct {
	Date   string             `json:"date"`
	Totals models.DailyTotals `json:"totals"`
	Status string             `json:"status"`
}

// MonthOverview summarizes every logged day of a month ("YYYY-MM") for the
// calendar view. Days without meals are omitted; the UI renders them as
// "no data".
func (s *MealStore) MonthOverview(yearMonth string) []DayOverview {
	s.mu.RLock()
	goals := s.goals
	byDate := make(map[string]models.DailyTotals)
	for i := range s.meals {
		m := &s.meals[i]
		if !strings.HasPrefix(m.Date, yearMonth+"-") {
			continue
		}
		t := byDate[m.Date]
		for _, f := range m.Foods {
			t.Add(f)
		}
		byDate[m.Date] = t
	}
	s.mu.RUnlock()

	out := make([]DayOverview, 0, len(byDate))
	for date, totals := range byDate {
		out = append(out, DayOverview{
			Date:   date,
			Totals: totals,
			Status: calorieStatus(totals.Calories, goals.Calories),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// calorieStatus buckets a day against the calorie goal: within 5% is
// "perfect", within 15% "good", more than 15% above "over", otherwise
// "under".
func calorieStatus(consumed, goal float64) string {
	if goal <= 0 {
		return "good"
	}
	ratio := consumed / goal
	switch {
	case ratio >= 0.95 && ratio <= 1.05:
		return "perfect"
	case ratio >= 0.85 && ratio <= 1.15:
		return "good"
	case ratio > 1.15:
		return "over"
	default:
		return "under"
	}
}

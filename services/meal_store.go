package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"backend/models"
)

// MealStore is the single source of truth for one user's meal log and
// goals. Writes go through the repository first and mutate memory only
// after persistence succeeds (write-through); daily totals are derived on
// every call, the collections involved are small.
//
// All mutations hold the store mutex for their full read-check-write span,
// so two concurrent AddFoodToMeal calls on the same (date, meal type) are
// serialized instead of both creating a meal.
type MealStore struct {
	userID uint
	repo   MealRepository
	hub    *RealtimeHub

	mu    sync.RWMutex
	meals []models.Meal
	goals models.UserGoals
}

func NewMealStore(userID uint, repo MealRepository, hub *RealtimeHub) *MealStore {
	return &MealStore{
		userID: userID,
		repo:   repo,
		hub:    hub,
		goals:  models.DefaultUserGoals(),
	}
}

// LoadMeals replaces the in-memory collection with the user's persisted
// meals, newest date first. On failure the prior state is left untouched.
func (s *MealStore) LoadMeals(ctx context.Context) error {
	meals, err := s.repo.ListByUser(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load meals: %w", err)
	}
	s.mu.Lock()
	s.meals = meals
	s.mu.Unlock()
	return nil
}

// AddMeal persists the meal and appends it to memory only once the backend
// has assigned its id. The error propagates so the caller can decide
// whether to retry or keep its form state.
func (s *MealStore) AddMeal(ctx context.Context, meal *models.Meal) error {
	meal.UserID = s.userID
	if err := s.repo.Create(ctx, meal); err != nil {
		return err
	}

	s.mu.Lock()
	s.meals = append(s.meals, *meal)
	s.mu.Unlock()

	s.notify(meal.Date)
	return nil
}

// AddFoodToMeal merges the food into the existing meal for (date, mealType)
// or creates one. A food already present in the meal (same id) has its
// quantity accumulated rather than replaced.
func (s *MealStore) AddFoodToMeal(ctx context.Context, date, mealType string, food models.Food) error {
	s.mu.Lock()

	for i := range s.meals {
		m := &s.meals[i]
		if m.Date != date || m.MealType != mealType {
			continue
		}
		foods := m.Foods.Merge(food)
		if err := s.repo.UpdateFoods(ctx, m.ID, foods); err != nil {
			s.mu.Unlock()
			return err
		}
		m.Foods = foods
		s.mu.Unlock()

		s.notify(date)
		return nil
	}

	meal := models.Meal{
		UserID:   s.userID,
		Name:     mealName(mealType),
		MealType: mealType,
		Date:     date,
		Foods:    models.FoodList{food},
	}
	if err := s.repo.Create(ctx, &meal); err != nil {
		s.mu.Unlock()
		return err
	}
	s.meals = append(s.meals, meal)
	s.mu.Unlock()

	s.notify(date)
	return nil
}

// UpdateMealFoods replaces a meal's food list. Entries with quantity <= 0
// are dropped; if nothing remains the meal itself is deleted instead of
// being persisted empty.
func (s *MealStore) UpdateMealFoods(ctx context.Context, mealID uint, foods models.FoodList) error {
	s.mu.Lock()

	idx := -1
	for i := range s.meals {
		if s.meals[i].ID == mealID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("meal %d not found", mealID)
	}

	date := s.meals[idx].Date
	normalized := foods.Normalize()

	if len(normalized) == 0 {
		if err := s.repo.Delete(ctx, mealID); err != nil {
			s.mu.Unlock()
			return err
		}
		s.meals = append(s.meals[:idx], s.meals[idx+1:]...)
		s.mu.Unlock()

		s.notify(date)
		return nil
	}

	if err := s.repo.UpdateFoods(ctx, mealID, normalized); err != nil {
		s.mu.Unlock()
		return err
	}
	s.meals[idx].Foods = normalized
	s.mu.Unlock()

	s.notify(date)
	return nil
}

// UpdateMealFood sets a single food's quantity; quantity <= 0 removes the
// food, and emptying the meal deletes it (same cascade as UpdateMealFoods).
func (s *MealStore) UpdateMealFood(ctx context.Context, mealID uint, foodID string, quantity float64) error {
	s.mu.RLock()
	var current models.FoodList
	found := false
	for i := range s.meals {
		if s.meals[i].ID == mealID {
			current = s.meals[i].Foods
			found = true
			break
		}
	}
	s.mu.RUnlock()

	if !found {
		return fmt.Errorf("meal %d not found", mealID)
	}

	updated := make(models.FoodList, 0, len(current))
	for _, f := range current {
		if f.ID == foodID {
			f.Quantity = quantity
		}
		updated = append(updated, f)
	}
	return s.UpdateMealFoods(ctx, mealID, updated)
}

// DeleteMeal removes the meal remotely and from memory. Deleting an id that
// is not present leaves the collection unchanged and is not an error.
func (s *MealStore) DeleteMeal(ctx context.Context, mealID uint) error {
	if err := s.repo.Delete(ctx, mealID); err != nil {
		return err
	}

	s.mu.Lock()
	date := ""
	for i := range s.meals {
		if s.meals[i].ID == mealID {
			date = s.meals[i].Date
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	if date != "" {
		s.notify(date)
	}
	return nil
}

// SetUserGoals replaces the goals singleton. Memory-only; goals are not
// persisted by this store.
func (s *MealStore) SetUserGoals(goals models.UserGoals) {
	s.mu.Lock()
	s.goals = goals
	s.mu.Unlock()
}

func (s *MealStore) UserGoals() models.UserGoals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.goals
}

// GetDailyTotals derives the consumed totals for a date. Dates with no
// meals yield all-zero totals.
func (s *MealStore) GetDailyTotals(date string) models.DailyTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalsLocked(date)
}

func (s *MealStore) totalsLocked(date string) models.DailyTotals {
	var totals models.DailyTotals
	for i := range s.meals {
		if s.meals[i].Date != date {
			continue
		}
		for _, f := range s.meals[i].Foods {
			totals.Add(f)
		}
	}
	return totals
}

// GetMealsForDate filters by exact date-string equality; callers must use
// the same YYYY-MM-DD format used at write time.
func (s *MealStore) GetMealsForDate(date string) []models.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Meal, 0)
	for i := range s.meals {
		if s.meals[i].Date == date {
			out = append(out, s.meals[i])
		}
	}
	return out
}

// Meals returns a snapshot of the full collection.
func (s *MealStore) Meals() []models.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Meal, len(s.meals))
	copy(out, s.meals)
	return out
}

// Summary reports consumed vs goal per macro with the percentage capped
// at 1, the shape the dashboard progress bars expect.
func (s *MealStore) Summary(date string) map[string]map[string]float64 {
	s.mu.RLock()
	totals := s.totalsLocked(date)
	goals := s.goals
	s.mu.RUnlock()

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	return map[string]map[string]float64{
		"calories": {"consumed": totals.Calories, "goal": goals.Calories, "percent": pct(totals.Calories, goals.Calories)},
		"protein":  {"consumed": totals.Protein, "goal": goals.Protein, "percent": pct(totals.Protein, goals.Protein)},
		"carbs":    {"consumed": totals.Carbs, "goal": goals.Carbs, "percent": pct(totals.Carbs, goals.Carbs)},
		"fat":      {"consumed": totals.Fat, "goal": goals.Fat, "percent": pct(totals.Fat, goals.Fat)},
	}
}

func (s *MealStore) notify(date string) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastTotals(s.userID, date, s.GetDailyTotals(date))
}

// mealName capitalizes the meal type for the default display name, the same
// way the UI titles an auto-created meal.
func mealName(mealType string) string {
	if mealType == "" {
		return ""
	}
	return strings.ToUpper(mealType[:1]) + mealType[1:]
}

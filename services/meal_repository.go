package services

import (
	"context"
	"fmt"

	"backend/models"

	"gorm.io/gorm"
)

// MealRepository is the durable backing of the meal store.
type MealRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Meal, error)
	Create(ctx context.Context, meal *models.Meal) error
	UpdateFoods(ctx context.Context, mealID uint, foods models.FoodList) error
	Delete(ctx context.Context, mealID uint) error
}

type gormMealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &gormMealRepository{db: db}
}

func (r *gormMealRepository) ListByUser(ctx context.Context, userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return meals, nil
}

func (r *gormMealRepository) Create(ctx context.Context, meal *models.Meal) error {
	if err := r.db.WithContext(ctx).Create(meal).Error; err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}
	return nil
}

func (r *gormMealRepository) UpdateFoods(ctx context.Context, mealID uint, foods models.FoodList) error {
	err := r.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("id = ?", mealID).
		Update("foods", foods).Error
	if err != nil {
		return fmt.Errorf("failed to update meal foods: %w", err)
	}
	return nil
}

// Delete is a no-op for ids that are already gone, which keeps DeleteMeal
// idempotent from the caller's perspective.
func (r *gormMealRepository) Delete(ctx context.Context, mealID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Meal{}, mealID).Error; err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"backend/models"

	"gorm.io/gorm"
)

type CustomMealService struct {
	db *gorm.DB
}

func NewCustomMealService(db *gorm.DB) *CustomMealService {
	return &CustomMealService{db: db}
}

func (s *CustomMealService) Create(ctx context.Context, meal *models.CustomMeal) error {
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return fmt.Errorf("failed to create custom meal: %w", err)
	}
	return nil
}

// List returns the user's templates, optionally filtered by meal type.
func (s *CustomMealService) List(ctx context.Context, userID uint, mealType string) ([]models.CustomMeal, error) {
	var meals []models.CustomMeal
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if mealType != "" {
		q = q.Where("meal_type = ?", mealType)
	}
	if err := q.Order("created_at DESC").Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("failed to list custom meals: %w", err)
	}
	return meals, nil
}

func (s *CustomMealService) Get(ctx context.Context, userID, id uint) (*models.CustomMeal, error) {
	var meal models.CustomMeal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("custom meal %d not found", id)
		}
		return nil, fmt.Errorf("failed to get custom meal: %w", err)
	}
	return &meal, nil
}

func (s *CustomMealService) Delete(ctx context.Context, userID, id uint) error {
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CustomMeal{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete custom meal: %w", err)
	}
	return nil
}

// InstantiateForDate copies the template's foods into the dated meal for
// its meal type, one merge-or-create add per food.
func (s *CustomMealService) InstantiateForDate(ctx context.Context, store *MealStore, userID, id uint, date string) error {
	meal, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	for _, food := range meal.Foods {
		if err := store.AddFoodToMeal(ctx, date, meal.MealType, food); err != nil {
			return fmt.Errorf("failed to add %q from template: %w", food.Name, err)
		}
	}
	return nil
}

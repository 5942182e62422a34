package models

import (
	"time"

	"gorm.io/gorm"
)

// CustomMeal is a reusable named template of foods, not tied to a date.
// It is instantiated into a dated Meal via copy-on-add.
type CustomMeal struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	UserID   uint     `json:"user_id" gorm:"index;not null"`
	Name     string   `json:"name" gorm:"not null"`
	MealType string   `json:"meal_type" gorm:"type:varchar(16);not null"`
	Foods    FoodList `json:"foods" gorm:"type:jsonb"`
}

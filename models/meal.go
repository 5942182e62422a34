package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal types match what the UI sends.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// One logged Meal for a calendar day. Date is the plain ISO day string
// (YYYY-MM-DD); lookups match it by string equality, same format the UI
// writes, so no timezone math happens anywhere in the store.
//
// gorm.Model is spelled out so the JSON keys stay snake_case like the rest
// of the API.
type Meal struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	UserID   uint     `json:"user_id" gorm:"index;not null"`
	Name     string   `json:"name"`
	MealType string   `json:"meal_type" gorm:"type:varchar(16);not null"`
	Foods    FoodList `json:"foods" gorm:"type:jsonb"`
	Date     string   `json:"date" gorm:"type:varchar(10);index;not null"`
}

func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

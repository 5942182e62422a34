package models

import (
	"encoding/json"
	"testing"
)

func TestValidMealType(t *testing.T) {
	for _, mt := range []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack} {
		if !ValidMealType(mt) {
			t.Errorf("%q should be valid", mt)
		}
	}
	for _, mt := range []string{"", "brunch", "Lunch"} {
		if ValidMealType(mt) {
			t.Errorf("%q should be invalid", mt)
		}
	}
}

func TestMealJSONIsSnakeCase(t *testing.T) {
	raw, err := json.Marshal(Meal{
		ID:       7,
		UserID:   1,
		Name:     "Lunch",
		MealType: MealTypeLunch,
		Date:     "2025-01-15",
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, want := range []string{"id", "created_at", "updated_at", "user_id", "meal_type", "foods", "date"} {
		if _, ok := keys[want]; !ok {
			t.Errorf("expected key %q in %s", want, raw)
		}
	}
	for _, leak := range []string{"ID", "CreatedAt", "UpdatedAt", "DeletedAt"} {
		if _, ok := keys[leak]; ok {
			t.Errorf("key %q must not leak into responses", leak)
		}
	}
}

func TestCustomMealJSONIsSnakeCase(t *testing.T) {
	raw, err := json.Marshal(CustomMeal{ID: 3, UserID: 1, Name: "Go-to lunch", MealType: MealTypeLunch})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := keys["meal_type"]; !ok {
		t.Errorf("expected key meal_type in %s", raw)
	}
	for _, leak := range []string{"ID", "CreatedAt", "DeletedAt"} {
		if _, ok := keys[leak]; ok {
			t.Errorf("key %q must not leak into responses", leak)
		}
	}
}

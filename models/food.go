package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Food is a normalized nutrient record as produced by the lookup adapters
// or entered by the user. All nutrient fields are amounts per 100g; Quantity
// is the grams actually logged and scales them (field * quantity / 100).
type Food struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Quantity float64 `json:"quantity"`
}

// FoodList is the serialized foods column of meals and custom meals.
type FoodList []Food

func (l FoodList) Value() (driver.Value, error) {
	if l == nil {
		l = FoodList{}
	}
	return json.Marshal(l)
}

// Scan accepts both []byte and string since the column may come back as text.
func (l *FoodList) Scan(value interface{}) error {
	if value == nil {
		*l = FoodList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into FoodList", value)
	}
}

// Merge accumulates quantity when a food with the same ID is already present,
// otherwise appends. Returns a fresh slice; the receiver is not mutated.
func (l FoodList) Merge(food Food) FoodList {
	out := make(FoodList, len(l))
	copy(out, l)
	for i := range out {
		if out[i].ID == food.ID {
			out[i].Quantity += food.Quantity
			return out
		}
	}
	return append(out, food)
}

// Normalize drops entries whose quantity is not positive. A meal whose
// normalized list is empty is considered deleted.
func (l FoodList) Normalize() FoodList {
	out := make(FoodList, 0, len(l))
	for _, f := range l {
		if f.Quantity > 0 {
			out = append(out, f)
		}
	}
	return out
}

// DailyTotals is the derived read-model consumed by the dashboard.
type DailyTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add accumulates a food's contribution scaled by its quantity over the
// 100g basis.
func (t *DailyTotals) Add(f Food) {
	ratio := f.Quantity / 100
	t.Calories += f.Calories * ratio
	t.Protein += f.Protein * ratio
	t.Carbs += f.Carbs * ratio
	t.Fat += f.Fat * ratio
}

// Totals sums the scaled contribution of every food in the list.
func (l FoodList) Totals() DailyTotals {
	var t DailyTotals
	for _, f := range l {
		t.Add(f)
	}
	return t
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"backend/models"
)

const nutritionixEndpoint = "https://trackapi.nutritionix.com/v2/natural/nutrients"

// NutritionixService queries the Nutritionix natural-language nutrients API.
// Unlike USDA, the provider reports nutrients per serving together with the
// serving weight in grams. Nutrient fields are normalized to the common
// per-100g basis and Quantity carries the serving weight, so the standard
// scaling (field * quantity / 100) reproduces the provider's serving
// amounts. Consumers must not assume Quantity is 100 here.
//
// Same never-error contract as the USDA adapter.
type NutritionixService struct {
	appID    string
	appKey   string
	endpoint string
	client   *http.Client
}

func NewNutritionixService(appID, appKey string) *NutritionixService {
	return &NutritionixService{
		appID:    appID,
		appKey:   appKey,
		endpoint: nutritionixEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type nutritionixResponse struct {
	Foods []struct {
		FoodName           string  `json:"food_name"`
		NixItemID          string  `json:"nix_item_id"`
		ServingWeightGrams float64 `json:"serving_weight_grams"`
		Calories           float64 `json:"nf_calories"`
		Protein            float64 `json:"nf_protein"`
		Carbs              float64 `json:"nf_total_carbohydrate"`
		Fat                float64 `json:"nf_total_fat"`
		Fiber              float64 `json:"nf_dietary_fiber"`
		Sugar              float64 `json:"nf_sugars"`
		Sodium             float64 `json:"nf_sodium"`
	} `json:"foods"`
}

func (s *NutritionixService) Search(ctx context.Context, query string) []models.Food {
	if s.appID == "" || s.appKey == "" {
		slog.Warn("Nutritionix credentials not configured, skipping lookup")
		return []models.Food{}
	}

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		slog.Error("failed to marshal Nutritionix payload", "error", err)
		return []models.Food{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		slog.Error("failed to build Nutritionix request", "error", err)
		return []models.Food{}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", s.appID)
	req.Header.Set("x-app-key", s.appKey)

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error("Nutritionix call failed", "error", err)
		return []models.Food{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("Nutritionix returned non-OK status", "status", resp.Status, "query", query)
		return []models.Food{}
	}

	var nr nutritionixResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		slog.Error("failed to decode Nutritionix response", "error", err)
		return []models.Food{}
	}

	results := make([]models.Food, 0, len(nr.Foods))
	for _, item := range nr.Foods {
		serving := item.ServingWeightGrams
		if serving <= 0 {
			// No usable serving weight; treat the values as per-100g.
			serving = 100
		}
		factor := 100 / serving

		name := item.FoodName
		if name == "" {
			name = "Unknown Food"
		}
		id := item.NixItemID
		if id == "" {
			id = item.FoodName
		}

		results = append(results, models.Food{
			ID:       id,
			Name:     name,
			Calories: item.Calories * factor,
			Protein:  item.Protein * factor,
			Carbs:    item.Carbs * factor,
			Fat:      item.Fat * factor,
			Fiber:    item.Fiber * factor,
			Sugar:    item.Sugar * factor,
			Sodium:   item.Sodium * factor,
			Quantity: serving,
		})
	}
	return results
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"backend/models"
)

const usdaSearchEndpoint = "https://api.nal.usda.gov/fdc/v1/foods/search"

// USDAService queries the USDA FoodData Central search API. Results are
// reported per 100g, so Quantity is always 100.
//
// Search never returns an error: missing credentials, transport failures
// and bad responses all degrade to an empty result with a log line, and the
// caller carries on with whatever the other provider produced.
type USDAService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewUSDAService(apiKey string) *USDAService {
	return &USDAService{
		apiKey:   apiKey,
		endpoint: usdaSearchEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type usdaSearchResponse struct {
	Foods []struct {
		FdcID         int64  `json:"fdcId"`
		Description   string `json:"description"`
		FoodNutrients []struct {
			NutrientName string  `json:"nutrientName"`
			Value        float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

func (s *USDAService) Search(ctx context.Context, query string) []models.Food {
	if s.apiKey == "" {
		slog.Warn("USDA API key not configured, skipping lookup")
		return []models.Food{}
	}

	u := fmt.Sprintf("%s?query=%s&api_key=%s&pageSize=10",
		s.endpoint, url.QueryEscape(query), s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		slog.Error("failed to build USDA request", "error", err)
		return []models.Food{}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error("USDA search call failed", "error", err)
		return []models.Food{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("USDA search returned non-OK status", "status", resp.Status, "query", query)
		return []models.Food{}
	}

	var sr usdaSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		slog.Error("failed to decode USDA response", "error", err)
		return []models.Food{}
	}

	results := make([]models.Food, 0, len(sr.Foods))
	for _, item := range sr.Foods {
		nutrient := func(name string) float64 {
			for _, n := range item.FoodNutrients {
				if n.NutrientName == name {
					return n.Value
				}
			}
			return 0
		}

		name := item.Description
		if name == "" {
			name = "Unknown Food"
		}

		results = append(results, models.Food{
			ID:       strconv.FormatInt(item.FdcID, 10),
			Name:     name,
			Calories: nutrient("Energy"),
			Protein:  nutrient("Protein"),
			Carbs:    nutrient("Carbohydrate, by difference"),
			Fat:      nutrient("Total lipid (fat)"),
			Fiber:    nutrient("Fiber, total dietary"),
			Sugar:    nutrient("Sugars, total including NLEA"),
			Sodium:   nutrient("Sodium, Na"),
			Quantity: 100,
		})
	}
	return results
}

package services

import (
	"context"
	"sync"

	"backend/models"
)

// FoodService fans a query out to both nutrient providers and merges the
// results. Providers swallow their own failures, so a dead provider simply
// contributes nothing to the merged list.
type FoodService struct {
	usda *USDAService
	nix  *NutritionixService
}

func NewFoodService(usda *USDAService, nix *NutritionixService) *FoodService {
	return &FoodService{usda: usda, nix: nix}
}

func (s *FoodService) Search(ctx context.Context, query string) []models.Food {
	var usdaFoods, nixFoods []models.Food

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		usdaFoods = s.usda.Search(ctx, query)
	}()
	go func() {
		defer wg.Done()
		nixFoods = s.nix.Search(ctx, query)
	}()
	wg.Wait()

	merged := make([]models.Food, 0, len(usdaFoods)+len(nixFoods))
	merged = append(merged, usdaFoods...)
	merged = append(merged, nixFoods...)
	return merged
}

package services

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestNutritionixSearchNormalizesServings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("x-app-id") != "app-id" || r.Header.Get("x-app-key") != "app-key" {
			t.Errorf("credentials not forwarded: %q/%q", r.Header.Get("x-app-id"), r.Header.Get("x-app-key"))
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body["query"] != "grilled chicken" {
			t.Errorf("expected query in body, got %+v", body)
		}

		w.Write([]byte(`{
		  "foods": [
		    {
		      "food_name": "grilled chicken breast",
		      "nix_item_id": "nix-1",
		      "serving_weight_grams": 150,
		      "nf_calories": 247.5,
		      "nf_protein": 46.5,
		      "nf_total_fat": 5.4,
		      "nf_sodium": 111
		    }
		  ]
		}`))
	}))
	defer srv.Close()

	svc := NewNutritionixService("app-id", "app-key")
	svc.endpoint = srv.URL

	foods := svc.Search(context.Background(), "grilled chicken")
	if len(foods) != 1 {
		t.Fatalf("expected 1 food, got %d", len(foods))
	}

	f := foods[0]
	if f.ID != "nix-1" {
		t.Errorf("id: expected nix-1, got %q", f.ID)
	}
	// Per-serving values scaled to the per-100g basis, serving weight
	// carried as quantity.
	if math.Abs(f.Calories-165) > 1e-9 {
		t.Errorf("calories per 100g: expected 165, got %v", f.Calories)
	}
	if math.Abs(f.Protein-31) > 1e-9 {
		t.Errorf("protein per 100g: expected 31, got %v", f.Protein)
	}
	if f.Quantity != 150 {
		t.Errorf("quantity: expected serving weight 150, got %v", f.Quantity)
	}
	// Scaling back by quantity reproduces the serving amount.
	if got := f.Calories * f.Quantity / 100; math.Abs(got-247.5) > 1e-9 {
		t.Errorf("round trip to serving amount: expected 247.5, got %v", got)
	}
}

func TestNutritionixSearchMissingServingWeight(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
		  "foods": [
		    {"food_name": "mystery item", "nf_calories": 120}
		  ]
		}`))
	}))
	defer srv.Close()

	svc := NewNutritionixService("app-id", "app-key")
	svc.endpoint = srv.URL

	foods := svc.Search(context.Background(), "mystery")
	if len(foods) != 1 {
		t.Fatalf("expected 1 food, got %d", len(foods))
	}
	if foods[0].Calories != 120 || foods[0].Quantity != 100 {
		t.Errorf("missing serving weight should pass values through at 100g: %+v", foods[0])
	}
	if foods[0].ID != "mystery item" {
		t.Errorf("expected food name as fallback id, got %q", foods[0].ID)
	}
}

func TestNutritionixSearchWithoutCredsSkipsCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	svc := NewNutritionixService("app-id", "")
	svc.endpoint = srv.URL

	if foods := svc.Search(context.Background(), "chicken"); len(foods) != 0 {
		t.Errorf("expected empty result without credentials, got %d foods", len(foods))
	}
	if calls.Load() != 0 {
		t.Errorf("expected no outbound request, got %d", calls.Load())
	}
}

func TestNutritionixSearchErrorsReturnEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := NewNutritionixService("app-id", "app-key")
	svc.endpoint = srv.URL

	if foods := svc.Search(context.Background(), "chicken"); len(foods) != 0 {
		t.Errorf("non-OK status: expected empty result, got %d foods", len(foods))
	}
}

func TestFoodServiceMergesProviders(t *testing.T) {
	usdaSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": [{"fdcId": 1, "description": "usda apple", "foodNutrients": []}]}`))
	}))
	defer usdaSrv.Close()
	nixSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": [{"food_name": "nix apple", "serving_weight_grams": 182, "nf_calories": 95}]}`))
	}))
	defer nixSrv.Close()

	usda := NewUSDAService("key")
	usda.endpoint = usdaSrv.URL
	nix := NewNutritionixService("id", "key")
	nix.endpoint = nixSrv.URL

	foods := NewFoodService(usda, nix).Search(context.Background(), "apple")
	if len(foods) != 2 {
		t.Fatalf("expected merged results from both providers, got %d", len(foods))
	}
	if foods[0].Name != "usda apple" || foods[1].Name != "nix apple" {
		t.Errorf("unexpected merge order: %q, %q", foods[0].Name, foods[1].Name)
	}
}

func TestFoodServiceSurvivesDeadProvider(t *testing.T) {
	nixSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": [{"food_name": "nix apple", "serving_weight_grams": 182, "nf_calories": 95}]}`))
	}))
	defer nixSrv.Close()

	usda := NewUSDAService("") // unconfigured
	nix := NewNutritionixService("id", "key")
	nix.endpoint = nixSrv.URL

	foods := NewFoodService(usda, nix).Search(context.Background(), "apple")
	if len(foods) != 1 || foods[0].Name != "nix apple" {
		t.Errorf("expected only the live provider's results, got %+v", foods)
	}
}

package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const usdaFixture = `{
  "foods": [
    {
      "fdcId": 171688,
      "description": "Chicken, broilers or fryers, breast, meat only, cooked, roasted",
      "foodNutrients": [
        {"nutrientName": "Energy", "value": 165},
        {"nutrientName": "Protein", "value": 31},
        {"nutrientName": "Carbohydrate, by difference", "value": 0},
        {"nutrientName": "Total lipid (fat)", "value": 3.6},
        {"nutrientName": "Sodium, Na", "value": 74}
      ]
    },
    {
      "fdcId": 999999,
      "description": "",
      "foodNutrients": []
    }
  ]
}`

func TestUSDASearchMapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("api_key") != "test-key" {
			t.Errorf("expected api_key=test-key, got %q", q.Get("api_key"))
		}
		if q.Get("query") != "chicken breast" {
			t.Errorf("expected query=chicken breast, got %q", q.Get("query"))
		}
		if q.Get("pageSize") != "10" {
			t.Errorf("expected pageSize=10, got %q", q.Get("pageSize"))
		}
		w.Write([]byte(usdaFixture))
	}))
	defer srv.Close()

	svc := NewUSDAService("test-key")
	svc.endpoint = srv.URL

	foods := svc.Search(context.Background(), "chicken breast")
	if len(foods) != 2 {
		t.Fatalf("expected 2 foods, got %d", len(foods))
	}

	f := foods[0]
	if f.ID != "171688" {
		t.Errorf("id: expected 171688, got %q", f.ID)
	}
	if f.Calories != 165 || f.Protein != 31 || f.Fat != 3.6 || f.Sodium != 74 {
		t.Errorf("unexpected nutrients: %+v", f)
	}
	if f.Quantity != 100 {
		t.Errorf("quantity: expected 100, got %v", f.Quantity)
	}
	// Absent nutrients report zero rather than failing the mapping.
	if f.Fiber != 0 || f.Sugar != 0 {
		t.Errorf("missing nutrients should default to zero: %+v", f)
	}

	if foods[1].Name != "Unknown Food" {
		t.Errorf("blank description: expected Unknown Food, got %q", foods[1].Name)
	}
}

func TestUSDASearchWithoutKeySkipsCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	svc := NewUSDAService("")
	svc.endpoint = srv.URL

	foods := svc.Search(context.Background(), "chicken")
	if len(foods) != 0 {
		t.Errorf("expected empty result without credentials, got %d foods", len(foods))
	}
	if calls.Load() != 0 {
		t.Errorf("expected no outbound request, got %d", calls.Load())
	}
}

func TestUSDASearchErrorsReturnEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewUSDAService("test-key")
	svc.endpoint = srv.URL

	if foods := svc.Search(context.Background(), "chicken"); len(foods) != 0 {
		t.Errorf("non-OK status: expected empty result, got %d foods", len(foods))
	}

	// Dead endpoint behaves the same way.
	srv.Close()
	if foods := svc.Search(context.Background(), "chicken"); len(foods) != 0 {
		t.Errorf("transport failure: expected empty result, got %d foods", len(foods))
	}
}

func TestUSDASearchBadJSONReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	svc := NewUSDAService("test-key")
	svc.endpoint = srv.URL

	if foods := svc.Search(context.Background(), "chicken"); len(foods) != 0 {
		t.Errorf("undecodable body: expected empty result, got %d foods", len(foods))
	}
}

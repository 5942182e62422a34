package services

import (
	"context"
	"sync"
)

// StoreManager hands out the per-user MealStore, loading the user's meals
// from the repository on first access. A store that fails its initial load
// is not cached, so the next request retries.
//
// Loads are serialized per user, not globally: the manager mutex only
// guards the maps, so one user's slow first load never stalls another
// user's lookup.
type StoreManager struct {
	repo MealRepository
	hub  *RealtimeHub

	mu     sync.Mutex
	stores map[uint]*MealStore
	loads  map[uint]*sync.Mutex
}

func NewStoreManager(repo MealRepository, hub *RealtimeHub) *StoreManager {
	return &StoreManager{
		repo:   repo,
		hub:    hub,
		stores: make(map[uint]*MealStore),
		loads:  make(map[uint]*sync.Mutex),
	}
}

func (m *StoreManager) ForUser(ctx context.Context, userID uint) (*MealStore, error) {
	m.mu.Lock()
	if store, ok := m.stores[userID]; ok {
		m.mu.Unlock()
		return store, nil
	}
	load, ok := m.loads[userID]
	if !ok {
		load = &sync.Mutex{}
		m.loads[userID] = load
	}
	m.mu.Unlock()

	load.Lock()
	defer load.Unlock()

	// Another caller may have finished the load while we waited.
	m.mu.Lock()
	if store, ok := m.stores[userID]; ok {
		m.mu.Unlock()
		return store, nil
	}
	m.mu.Unlock()

	store := NewMealStore(userID, m.repo, m.hub)
	if err := store.LoadMeals(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.stores[userID] = store
	delete(m.loads, userID)
	m.mu.Unlock()
	return store, nil
}

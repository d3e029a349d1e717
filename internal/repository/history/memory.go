package history

import (
	"context"
	"sync"
)

// Memory is an in-process history store for local runs and tests.
type Memory struct {
	mu     sync.RWMutex
	counts map[string]map[int64]int
}

// NewMemory creates an empty in-memory history store.
func NewMemory() *Memory {
	return &Memory{counts: make(map[string]map[int64]int)}
}

// AddPurchase records one purchase and returns the new count.
func (m *Memory) AddPurchase(_ context.Context, userID string, productID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.counts[userID]
	if !ok {
		user = make(map[int64]int)
		m.counts[userID] = user
	}
	user[productID]++
	return user[productID], nil
}

// PurchaseCount returns how many times the user bought the product.
func (m *Memory) PurchaseCount(_ context.Context, userID string, productID int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.counts[userID][productID], nil
}

// UserPurchases returns the user's purchase counts by product ID.
func (m *Memory) UserPurchases(_ context.Context, userID string) (map[int64]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[int64]int, len(m.counts[userID]))
	for id, n := range m.counts[userID] {
		out[id] = n
	}
	return out, nil
}

// Clear removes the user's history.
func (m *Memory) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.counts, userID)
	return nil
}

// Package history stores per-user purchase counts, the input to the
// personalization boost.
package history

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopkart/prodex/internal/db"
)

// Repo persists purchase history in a Redis hash per user: field=productID,
// value=count.
type Repo struct {
	store     db.Store
	keyPrefix string
}

// New creates a redis-backed history repository.
func New(store db.Store, keyPrefix string) *Repo {
	return &Repo{store: store, keyPrefix: keyPrefix}
}

func (r *Repo) key(userID string) string {
	return r.keyPrefix + "history:" + userID
}

// AddPurchase records one purchase and returns the new count.
func (r *Repo) AddPurchase(ctx context.Context, userID string, productID int64) (int, error) {
	n, err := r.store.HIncrBy(ctx, r.key(userID), strconv.FormatInt(productID, 10), 1)
	if err != nil {
		return 0, fmt.Errorf("add purchase: %w", err)
	}
	return int(n), nil
}

// PurchaseCount returns how many times the user bought the product,
// 0 when never.
func (r *Repo) PurchaseCount(ctx context.Context, userID string, productID int64) (int, error) {
	v, err := r.store.HGet(ctx, r.key(userID), strconv.FormatInt(productID, 10))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("purchase count: %w", err)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("purchase count for user %s: malformed value %q", userID, v)
	}
	return n, nil
}

// UserPurchases returns the user's purchase counts by product ID.
func (r *Repo) UserPurchases(ctx context.Context, userID string) (map[int64]int, error) {
	m, err := r.store.HGetAll(ctx, r.key(userID))
	if err != nil {
		return nil, fmt.Errorf("user purchases: %w", err)
	}
	out := make(map[int64]int, len(m))
	for field, v := range m {
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		out[id] = n
	}
	return out, nil
}

// Clear removes the user's history.
func (r *Repo) Clear(ctx context.Context, userID string) error {
	if err := r.store.Del(ctx, r.key(userID)); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

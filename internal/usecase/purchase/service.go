// Package purchase records purchases that feed personalized ranking.
package purchase

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopkart/prodex/internal/domain"
	"github.com/shopkart/prodex/internal/domain/product"
)

// Entry is one purchased product with its repeat count.
type Entry struct {
	Product product.Product
	Count   int
}

// Service handles purchase history.
type Service struct {
	catalog Catalog
	history History
}

// New creates a purchase service.
func New(catalog Catalog, history History) *Service {
	return &Service{catalog: catalog, history: history}
}

// Record notes one purchase and returns the user's new count for the product.
func (s *Service) Record(ctx context.Context, userID string, productID int64) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: userId is required", domain.ErrInvalidRequest)
	}
	if _, err := s.catalog.Get(productID); err != nil {
		return 0, fmt.Errorf("record purchase: %w", err)
	}
	count, err := s.history.AddPurchase(ctx, userID, productID)
	if err != nil {
		return 0, fmt.Errorf("record purchase: %w", err)
	}
	return count, nil
}

// List returns the user's purchased products with counts. Products deleted
// from the catalog since purchase are skipped.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrInvalidRequest)
	}
	counts, err := s.history.UserPurchases(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	entries := make([]Entry, 0, len(counts))
	for id, n := range counts {
		prod, err := s.catalog.Get(id)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Product: prod, Count: n})
	}
	sortEntries(entries)
	return entries, nil
}

// sortEntries orders by count descending, then product ID for stable output.
func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Product.ID() < entries[j].Product.ID()
	})
}

// Clear wipes the user's purchase history.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", domain.ErrInvalidRequest)
	}
	if err := s.history.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear purchases: %w", err)
	}
	return nil
}

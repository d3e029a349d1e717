// Package catalog is the in-memory product repository. The ranking core
// scans a frozen snapshot of it per request.
package catalog

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopkart/prodex/internal/domain"
	"github.com/shopkart/prodex/internal/domain/product"
)

// Store holds the product catalog. All reads hand out copies or snapshots;
// stored products are replaced wholesale on update, never mutated in place.
type Store struct {
	mu       sync.RWMutex
	products map[int64]product.Product
	titles   map[string]int64
	nextID   int64
	now      func() time.Time
}

// NewStore creates an empty catalog.
func NewStore() *Store {
	return &Store{
		products: make(map[int64]product.Product),
		titles:   make(map[string]int64),
		nextID:   1,
		now:      time.Now,
	}
}

// WithClock overrides the creation timestamp source (used in tests).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// normalizeTitle is the duplicate-detection key.
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// Add validates and inserts a product, assigning its ID and creation time.
// Products whose normalized title already exists are rejected.
func (s *Store) Add(p product.Params) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(p)
}

func (s *Store) addLocked(p product.Params) (product.Product, error) {
	key := normalizeTitle(p.Title)
	if _, exists := s.titles[key]; exists {
		return product.Product{}, domain.ErrDuplicateTitle
	}

	p.ID = s.nextID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	prod, err := product.New(p)
	if err != nil {
		return product.Product{}, err
	}

	s.nextID++
	s.products[prod.ID()] = prod
	s.titles[key] = prod.ID()
	return prod, nil
}

// BulkAdd inserts many products, stopping at the first invalid one.
func (s *Store) BulkAdd(batch []product.Params) ([]product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := make([]product.Product, 0, len(batch))
	for _, p := range batch {
		prod, err := s.addLocked(p)
		if err != nil {
			return added, err
		}
		added = append(added, prod)
	}
	return added, nil
}

// Get returns a product by ID.
func (s *Store) Get(id int64) (product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return product.Product{}, domain.ErrNotFound
	}
	return p, nil
}

// Update replaces a product's fields. ID and creation time are preserved;
// title changes are re-checked for duplicates.
func (s *Store) Update(id int64, p product.Params) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[id]
	if !ok {
		return product.Product{}, domain.ErrNotFound
	}

	oldKey := normalizeTitle(existing.Title())
	newKey := normalizeTitle(p.Title)
	if newKey != oldKey {
		if _, taken := s.titles[newKey]; taken {
			return product.Product{}, domain.ErrDuplicateTitle
		}
	}

	p.ID = id
	p.CreatedAt = existing.CreatedAt()
	updated, err := product.New(p)
	if err != nil {
		return product.Product{}, err
	}

	if newKey != oldKey {
		delete(s.titles, oldKey)
		s.titles[newKey] = id
	}
	s.products[id] = updated
	return updated, nil
}

// UpdateMetadata merges attributes into a product's metadata.
func (s *Store) UpdateMetadata(id int64, patch product.Metadata) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[id]
	if !ok {
		return product.Product{}, domain.ErrNotFound
	}

	params := existing.Params()
	params.Metadata = params.Metadata.Merge(patch)
	updated := product.Reconstruct(params)
	s.products[id] = updated
	return updated, nil
}

// Delete removes a product.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(s.titles, normalizeTitle(p.Title()))
	delete(s.products, id)
	return nil
}

// All returns an independent snapshot of the catalog. The slice is ordered
// by product ID so callers see a stable sequence.
func (s *Store) All() []product.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		snapshot = append(snapshot, p)
	}
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].ID() < snapshot[j].ID() })
	return snapshot
}

// Count returns the number of products.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

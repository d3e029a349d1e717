// Package product manages the catalog: create, read, update, delete.
package product

import (
	"fmt"

	domprod "github.com/shopkart/prodex/internal/domain/product"
)

// Service handles catalog operations.
type Service struct {
	repo Repository
}

// New creates a product service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a product to the catalog.
func (s *Service) Create(p domprod.Params) (domprod.Product, error) {
	prod, err := s.repo.Add(p)
	if err != nil {
		return domprod.Product{}, fmt.Errorf("create product: %w", err)
	}
	return prod, nil
}

// BulkCreate adds many products, returning those added before any failure.
func (s *Service) BulkCreate(batch []domprod.Params) ([]domprod.Product, error) {
	added, err := s.repo.BulkAdd(batch)
	if err != nil {
		return added, fmt.Errorf("bulk create: %w", err)
	}
	return added, nil
}

// Get returns a product by ID.
func (s *Service) Get(id int64) (domprod.Product, error) {
	prod, err := s.repo.Get(id)
	if err != nil {
		return domprod.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return prod, nil
}

// Update replaces a product's fields.
func (s *Service) Update(id int64, p domprod.Params) (domprod.Product, error) {
	prod, err := s.repo.Update(id, p)
	if err != nil {
		return domprod.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	return prod, nil
}

// UpdateMetadata merges attributes into a product's metadata.
func (s *Service) UpdateMetadata(id int64, patch domprod.Metadata) (domprod.Product, error) {
	prod, err := s.repo.UpdateMetadata(id, patch)
	if err != nil {
		return domprod.Product{}, fmt.Errorf("update metadata %d: %w", id, err)
	}
	return prod, nil
}

// Delete removes a product from the catalog.
func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

// List returns one offset page of the catalog and the total count.
func (s *Service) List(page, limit int) ([]domprod.Product, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	all := s.repo.All()
	total := len(all)

	start := (page - 1) * limit
	if start >= total {
		return nil, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total
}

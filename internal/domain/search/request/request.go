// Package request holds validated search parameters.
package request

import (
	"fmt"

	"github.com/shopkart/prodex/internal/domain"
)

// Pagination limits.
const (
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 512
)

// Sort is an explicit result ordering that overrides relevance.
type Sort string

// Supported sort orders.
const (
	SortRelevance  Sort = "relevance"
	SortPriceAsc   Sort = "price_asc"
	SortPriceDesc  Sort = "price_desc"
	SortRating     Sort = "rating"
	SortNewest     Sort = "newest"
	SortPopularity Sort = "popularity"
	SortDiscount   Sort = "discount"
)

// IsValid reports whether the sort order is supported.
func (s Sort) IsValid() bool {
	switch s {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortRating,
		SortNewest, SortPopularity, SortDiscount:
		return true
	}
	return false
}

// Request is a validated product search query. Filter fields are hard
// excludes; nil pointer fields mean the filter is absent.
type Request struct {
	query     string
	category  string
	brand     string
	minPrice  *float64
	maxPrice  *float64
	minRating *float64
	inStock   bool
	sortBy    Sort
	page      int
	limit     int
	userID    string
}

// Params carries raw search parameters prior to validation.
type Params struct {
	Query     string
	Category  string
	Brand     string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	InStock   bool
	SortBy    Sort
	Page      int
	Limit     int
	UserID    string
}

// New validates and normalizes search parameters.
// Defaults: sort=relevance, page=1, limit=20 (capped at 100).
func New(p Params) (Request, error) {
	if p.Query == "" {
		return Request{}, domain.ErrEmptyQuery
	}
	if len(p.Query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidRequest, MaxQueryLength)
	}
	if p.SortBy == "" {
		p.SortBy = SortRelevance
	}
	if !p.SortBy.IsValid() {
		return Request{}, fmt.Errorf("%w: unknown sort order %q", domain.ErrInvalidRequest, p.SortBy)
	}
	if p.MinPrice != nil && *p.MinPrice < 0 {
		return Request{}, fmt.Errorf("%w: minPrice must be non-negative", domain.ErrInvalidRequest)
	}
	if p.MaxPrice != nil && *p.MaxPrice < 0 {
		return Request{}, fmt.Errorf("%w: maxPrice must be non-negative", domain.ErrInvalidRequest)
	}
	if p.MinRating != nil && (*p.MinRating < 0 || *p.MinRating > 5) {
		return Request{}, fmt.Errorf("%w: minRating must be between 0 and 5", domain.ErrInvalidRequest)
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return Request{
		query:     p.Query,
		category:  p.Category,
		brand:     p.Brand,
		minPrice:  p.MinPrice,
		maxPrice:  p.MaxPrice,
		minRating: p.MinRating,
		inStock:   p.InStock,
		sortBy:    p.SortBy,
		page:      p.Page,
		limit:     p.Limit,
		userID:    p.UserID,
	}, nil
}

// Query returns the raw query text.
func (r *Request) Query() string { return r.query }

// Category returns the explicit category filter, "" when absent.
func (r *Request) Category() string { return r.category }

// Brand returns the explicit brand filter, "" when absent.
func (r *Request) Brand() string { return r.brand }

// MinPrice returns the explicit lower price bound, nil when absent.
func (r *Request) MinPrice() *float64 { return r.minPrice }

// MaxPrice returns the explicit upper price bound, nil when absent.
func (r *Request) MaxPrice() *float64 { return r.maxPrice }

// MinRating returns the minimum rating filter, nil when absent.
func (r *Request) MinRating() *float64 { return r.minRating }

// InStock reports whether only in-stock products should be returned.
func (r *Request) InStock() bool { return r.inStock }

// SortBy returns the requested ordering.
func (r *Request) SortBy() Sort { return r.sortBy }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }

// UserID returns the user for personalized ranking, "" when anonymous.
func (r *Request) UserID() string { return r.userID }

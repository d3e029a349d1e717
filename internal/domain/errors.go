package domain

import "errors"

var (
	// ErrNotFound signals a missing product.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateTitle signals a product with the same normalized title.
	ErrDuplicateTitle = errors.New("duplicate product title")
	// ErrInvalidProduct signals a product that violates catalog invariants.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrEmptyQuery signals a search request without query text.
	ErrEmptyQuery = errors.New("search query is required")
	// ErrInvalidRequest signals malformed search parameters.
	ErrInvalidRequest = errors.New("invalid search request")
)

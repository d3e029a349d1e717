package search

import (
	"context"

	"github.com/shopkart/prodex/internal/domain/product"
	"github.com/shopkart/prodex/internal/domain/query"
	"github.com/shopkart/prodex/internal/domain/search/result"
)

// Catalog supplies the candidate snapshot.
type Catalog interface {
	All() []product.Product
}

// Interpreter turns raw query text into structured intent.
type Interpreter interface {
	Interpret(rawQuery string) query.Intent
}

// Ranker scores candidates against an intent and returns them best-first.
type Ranker interface {
	Rank(ctx context.Context, candidates []product.Product, intent *query.Intent, userID string) ([]result.ScoredCandidate, error)
}

// History reports per-user purchase counts for result enrichment.
type History interface {
	PurchaseCount(ctx context.Context, userID string, productID int64) (int, error)
}

package purchase

import (
	"context"

	"github.com/shopkart/prodex/internal/domain/product"
)

// Catalog verifies products exist before purchases are recorded.
type Catalog interface {
	Get(id int64) (product.Product, error)
}

// History is the per-user purchase counter store.
type History interface {
	AddPurchase(ctx context.Context, userID string, productID int64) (int, error)
	UserPurchases(ctx context.Context, userID string) (map[int64]int, error)
	Clear(ctx context.Context, userID string) error
}

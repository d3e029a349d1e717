package ranking

import "github.com/shopkart/prodex/internal/domain/search/result"

// Stock placement rule: available inventory must not be buried behind
// unavailable items, while clearly superior out-of-stock matches may still
// surface.
const (
	// inStockHead is the in-stock count above which out-of-stock items are
	// suppressed unless exceptional.
	inStockHead = 10
	// oosExceptionScore is the score an out-of-stock item needs to surface
	// past a full in-stock head.
	oosExceptionScore = 70
	// backfillTarget is the total size out-of-stock items may backfill to
	// when in-stock results are scarce.
	backfillTarget = 20
)

// applyStockPlacement partitions a score-sorted list into in-stock and
// out-of-stock groups (each keeping its order) and concatenates in-stock
// first. Out-of-stock items are appended only as >70-score exceptions when
// the in-stock head is full, or as backfill up to 20 total when it is not.
func applyStockPlacement(ranked []result.ScoredCandidate) []result.ScoredCandidate {
	inStock := make([]result.ScoredCandidate, 0, len(ranked))
	outOfStock := make([]result.ScoredCandidate, 0)
	for _, c := range ranked {
		if c.Product().InStock() {
			inStock = append(inStock, c)
		} else {
			outOfStock = append(outOfStock, c)
		}
	}

	if len(inStock) >= inStockHead {
		for _, c := range outOfStock {
			if c.Score() > oosExceptionScore {
				inStock = append(inStock, c)
			}
		}
		return inStock
	}

	for _, c := range outOfStock {
		if len(inStock) >= backfillTarget {
			break
		}
		inStock = append(inStock, c)
	}
	return inStock
}

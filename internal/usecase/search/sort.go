package search

import (
	"sort"

	"github.com/shopkart/prodex/internal/domain/search/request"
	"github.com/shopkart/prodex/internal/domain/search/result"
)

// applySortOverride reorders the whole ranked list when the request asks for
// something other than relevance. Relevance keeps the ranker's order, stock
// placement included.
func applySortOverride(ranked []result.ScoredCandidate, sortBy request.Sort) {
	var less func(i, j int) bool

	switch sortBy {
	case request.SortPriceAsc:
		less = func(i, j int) bool { return ranked[i].Product().Price() < ranked[j].Product().Price() }
	case request.SortPriceDesc:
		less = func(i, j int) bool { return ranked[i].Product().Price() > ranked[j].Product().Price() }
	case request.SortRating:
		less = func(i, j int) bool {
			a, b := ranked[i].Product(), ranked[j].Product()
			if a.Rating() != b.Rating() {
				return a.Rating() > b.Rating()
			}
			return a.RatingCount() > b.RatingCount()
		}
	case request.SortNewest:
		less = func(i, j int) bool { return ranked[i].Product().CreatedAt().After(ranked[j].Product().CreatedAt()) }
	case request.SortPopularity:
		less = func(i, j int) bool { return ranked[i].Product().UnitsSold() > ranked[j].Product().UnitsSold() }
	case request.SortDiscount:
		less = func(i, j int) bool { return ranked[i].Product().DiscountPercent() > ranked[j].Product().DiscountPercent() }
	default:
		return
	}

	sort.SliceStable(ranked, less)
}

package ranking

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/shopkart/prodex/internal/domain/product"
	"github.com/shopkart/prodex/internal/domain/query"
	"github.com/shopkart/prodex/internal/domain/search/result"
)

// PurchaseCounter supplies per-user purchase counts for the personalization
// boost. It is queried at most once per candidate per request.
type PurchaseCounter interface {
	PurchaseCount(ctx context.Context, userID string, productID int64) (int, error)
}

// Ranker scores a candidate set against a query intent. Candidates are pure
// inputs: the ranker never mutates products and keeps no cross-request state,
// so one Ranker serves all requests concurrently.
type Ranker struct {
	scorer      *Scorer
	purchases   PurchaseCounter
	parallelism int
}

// NewRanker creates a Ranker. purchases may be nil to disable
// personalization.
func NewRanker(scorer *Scorer, purchases PurchaseCounter) *Ranker {
	return &Ranker{
		scorer:      scorer,
		purchases:   purchases,
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// Rank matches and scores every candidate, drops text non-matches, sorts by
// score descending with ascending product ID as the tie-break, and applies
// the stock placement rule. userID may be empty for anonymous requests.
func (r *Ranker) Rank(
	ctx context.Context, candidates []product.Product, intent *query.Intent, userID string,
) ([]result.ScoredCandidate, error) {
	type slot struct {
		cand result.ScoredCandidate
		ok   bool
	}
	slots := make([]slot, len(candidates))

	// Matching and scoring is a pure function per candidate; fan out and
	// collect into pre-assigned slots so no locking is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := &candidates[i]
			sim, ok := Similarity(p, intent.Tokens())
			if !ok {
				return nil
			}
			count := 0
			if userID != "" && r.purchases != nil {
				// A failed lookup only costs the boost, never the search.
				if c, err := r.purchases.PurchaseCount(gctx, userID, p.ID()); err == nil {
					count = c
				}
			}
			score := r.scorer.Score(p, intent, sim, count)
			slots[i] = slot{cand: result.New(p, score, sim), ok: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]result.ScoredCandidate, 0, len(candidates))
	for i := range slots {
		if slots[i].ok {
			ranked = append(ranked, slots[i].cand)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score() != ranked[j].Score() {
			return ranked[i].Score() > ranked[j].Score()
		}
		return ranked[i].Product().ID() < ranked[j].Product().ID()
	})

	return applyStockPlacement(ranked), nil
}

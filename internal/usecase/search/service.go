// Package search orchestrates one search request: interpret the query,
// filter the catalog snapshot, rank what remains, then sort and paginate.
package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shopkart/prodex/internal/domain/product"
	"github.com/shopkart/prodex/internal/domain/query"
	"github.com/shopkart/prodex/internal/domain/search/request"
	"github.com/shopkart/prodex/internal/domain/search/result"
)

// Hit is one returned product with its ranking context.
type Hit struct {
	Product         product.Product
	Score           float64
	TextSimilarity  float64
	RepeatPurchases int
}

// Result is one page of search results. Total counts all ranked matches,
// not just the page.
type Result struct {
	Hits   []Hit
	Total  int
	Page   int
	Limit  int
	Intent query.Intent
}

// Service handles product search.
type Service struct {
	catalog Catalog
	interp  Interpreter
	ranker  Ranker
	history History
	logger  *zap.Logger
}

// New creates a search service.
func New(catalog Catalog, interp Interpreter, ranker Ranker, history History, logger *zap.Logger) *Service {
	return &Service{
		catalog: catalog,
		interp:  interp,
		ranker:  ranker,
		history: history,
		logger:  logger,
	}
}

// Search runs the full pipeline for one validated request.
func (s *Service) Search(ctx context.Context, req request.Request) (Result, error) {
	intent := s.interp.Interpret(req.Query())

	candidates := applyFilters(s.catalog.All(), &req, &intent)

	ranked, err := s.ranker.Rank(ctx, candidates, &intent, req.UserID())
	if err != nil {
		return Result{}, fmt.Errorf("rank candidates: %w", err)
	}

	applySortOverride(ranked, req.SortBy())

	total := len(ranked)
	page := paginate(ranked, req.Page(), req.Limit())

	hits := make([]Hit, 0, len(page))
	for i := range page {
		h := Hit{
			Product:        *page[i].Product(),
			Score:          page[i].Score(),
			TextSimilarity: page[i].TextSimilarity(),
		}
		if req.UserID() != "" {
			// Enrichment only; a lookup failure just leaves the count at 0.
			if n, err := s.history.PurchaseCount(ctx, req.UserID(), h.Product.ID()); err == nil {
				h.RepeatPurchases = n
			}
		}
		hits = append(hits, h)
	}

	s.logger.Debug("search completed",
		zap.String("query", req.Query()),
		zap.String("processed_query", intent.ProcessedQuery()),
		zap.Int("candidates", len(candidates)),
		zap.Int("matches", total),
	)

	return Result{
		Hits:   hits,
		Total:  total,
		Page:   req.Page(),
		Limit:  req.Limit(),
		Intent: intent,
	}, nil
}

func paginate(ranked []result.ScoredCandidate, page, limit int) []result.ScoredCandidate {
	start := (page - 1) * limit
	if start >= len(ranked) {
		return nil
	}
	end := start + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[start:end]
}

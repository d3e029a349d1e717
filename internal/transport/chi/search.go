package chi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shopkart/prodex/internal/domain"
	"github.com/shopkart/prodex/internal/domain/query"
	"github.com/shopkart/prodex/internal/domain/search/request"
	"github.com/shopkart/prodex/internal/metrics"
)

type searchHit struct {
	productResponse
	Score           float64 `json:"score"`
	TextSimilarity  float64 `json:"textSimilarity"`
	RepeatPurchases int     `json:"repeatPurchases,omitempty"`
}

type intentPayload struct {
	IsCheap     bool     `json:"isCheap,omitempty"`
	IsExpensive bool     `json:"isExpensive,omitempty"`
	IsLatest    bool     `json:"isLatest,omitempty"`
	PriceMin    *float64 `json:"priceMin,omitempty"`
	PriceMax    *float64 `json:"priceMax,omitempty"`
	Color       string   `json:"color,omitempty"`
	StorageTier string   `json:"storageTier,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Category    string   `json:"category,omitempty"`
}

type searchResponse struct {
	Query          string        `json:"query"`
	ProcessedQuery string        `json:"processedQuery"`
	Results        []searchHit   `json:"results"`
	Total          int           `json:"total"`
	Page           int           `json:"page"`
	Limit          int           `json:"limit"`
	Intent         intentPayload `json:"intent"`
}

// SearchProducts handles GET /api/v1/search.
func (s *Server) SearchProducts(w http.ResponseWriter, r *http.Request) {
	req, err := s.searchRequestFromQuery(r)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	start := time.Now()
	res, err := s.search.Search(r.Context(), req)
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
	metrics.SearchMatches.Observe(float64(res.Total))
	if res.Total == 0 {
		metrics.SearchEmptyTotal.Inc()
	}

	hits := make([]searchHit, len(res.Hits))
	for i := range res.Hits {
		hits[i] = searchHit{
			productResponse: productToResponse(&res.Hits[i].Product),
			Score:           res.Hits[i].Score,
			TextSimilarity:  res.Hits[i].TextSimilarity,
			RepeatPurchases: res.Hits[i].RepeatPurchases,
		}
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:          req.Query(),
		ProcessedQuery: res.Intent.ProcessedQuery(),
		Results:        hits,
		Total:          res.Total,
		Page:           res.Page,
		Limit:          res.Limit,
		Intent:         intentToPayload(&res.Intent),
	})
}

// Suggestions handles GET /api/v1/search/suggestions.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit := intParam(r, "limit", s.suggestionLimit)
	if limit > s.suggestionLimit {
		limit = s.suggestionLimit
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions": s.search.Suggestions(q, limit),
	})
}

// Trending handles GET /api/v1/search/trending.
func (s *Server) Trending(w http.ResponseWriter, r *http.Request) {
	limit := intParam(r, "limit", 10)
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	items := s.search.Trending(limit)
	resp := make([]productResponse, len(items))
	for i := range items {
		resp[i] = productToResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": resp})
}

// ByCategory handles GET /api/v1/search/category/{category}.
func (s *Server) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	limit := intParam(r, "limit", s.defaultPageSize)
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	items := s.search.ByCategory(category, limit)
	resp := make([]productResponse, len(items))
	for i := range items {
		resp[i] = productToResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"products": resp,
	})
}

func (s *Server) searchRequestFromQuery(r *http.Request) (request.Request, error) {
	q := r.URL.Query()

	minPrice, err := floatParam(q.Get("minPrice"))
	if err != nil {
		return request.Request{}, err
	}
	maxPrice, err := floatParam(q.Get("maxPrice"))
	if err != nil {
		return request.Request{}, err
	}
	minRating, err := floatParam(q.Get("minRating"))
	if err != nil {
		return request.Request{}, err
	}

	limit := intParam(r, "limit", s.defaultPageSize)
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	return request.New(request.Params{
		Query:     q.Get("q"),
		Category:  q.Get("category"),
		Brand:     q.Get("brand"),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		MinRating: minRating,
		InStock:   q.Get("inStock") == "true",
		SortBy:    request.Sort(q.Get("sort")),
		Page:      intParam(r, "page", 0),
		Limit:     limit,
		UserID:    q.Get("userId"),
	})
}

func floatParam(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidRequest, raw)
	}
	return &v, nil
}

func intentToPayload(intent *query.Intent) intentPayload {
	p := intentPayload{
		IsCheap:     intent.IsCheap(),
		IsExpensive: intent.IsExpensive(),
		IsLatest:    intent.IsLatest(),
		Color:       intent.Color(),
		StorageTier: intent.StorageTier(),
		Brand:       intent.Brand(),
		Category:    intent.Category(),
	}
	if pr := intent.PriceRange(); pr != nil {
		if v, ok := pr.Min(); ok {
			p.PriceMin = &v
		}
		if v, ok := pr.Max(); ok {
			p.PriceMax = &v
		}
	}
	return p
}

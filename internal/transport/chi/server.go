// Package chi is the HTTP transport: routing, JSON codecs and the mapping
// from domain errors to status codes.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shopkart/prodex/internal/domain"
	"github.com/shopkart/prodex/internal/domain/search/request"
	healthuc "github.com/shopkart/prodex/internal/usecase/health"
	productuc "github.com/shopkart/prodex/internal/usecase/product"
	purchaseuc "github.com/shopkart/prodex/internal/usecase/purchase"
	searchuc "github.com/shopkart/prodex/internal/usecase/search"
)

// errorCode is the machine-readable identifier in JSON error bodies.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeNotFound         errorCode = "not_found"
	codeDuplicateTitle   errorCode = "duplicate_title"
	codeEmptyQuery       errorCode = "empty_query"
	codeRateLimited      errorCode = "rate_limited"
	codeInternalError    errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the search API over HTTP.
type Server struct {
	products        *productuc.Service
	search          *searchuc.Service
	purchases       *purchaseuc.Service
	health          *healthuc.Service
	logger          *zap.Logger
	suggestionLimit int
	defaultPageSize int
	maxPageSize     int
	maxBatchSize    int
	errorHandlers   []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	products *productuc.Service,
	search *searchuc.Service,
	purchases *purchaseuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		products:        products,
		search:          search,
		purchases:       purchases,
		health:          health,
		logger:          logger,
		suggestionLimit: 10,
		defaultPageSize: request.DefaultLimit,
		maxPageSize:     request.MaxLimit,
		maxBatchSize:    100,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrDuplicateTitle, http.StatusConflict, codeDuplicateTitle),
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, codeEmptyQuery),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidProduct, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// WithSuggestionLimit overrides the default autocomplete cap.
func (s *Server) WithSuggestionLimit(limit int) *Server {
	if limit > 0 {
		s.suggestionLimit = limit
	}
	return s
}

// WithSearchLimits overrides the default page size, the page size cap, and
// the bulk insert cap. Zero or negative values keep the current setting.
func (s *Server) WithSearchLimits(defaultPage, maxPage, maxBatch int) *Server {
	if defaultPage > 0 {
		s.defaultPageSize = defaultPage
	}
	if maxPage > 0 {
		s.maxPageSize = maxPage
	}
	if maxBatch > 0 {
		s.maxBatchSize = maxBatch
	}
	return s
}

// Routes mounts all API endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/search", func(r chi.Router) {
			r.Get("/", s.SearchProducts)
			r.Get("/suggestions", s.Suggestions)
			r.Get("/trending", s.Trending)
			r.Get("/category/{category}", s.ByCategory)
		})
		r.Route("/product", func(r chi.Router) {
			r.Post("/", s.CreateProduct)
			r.Get("/", s.ListProducts)
			r.Post("/bulk", s.BulkCreateProducts)
			r.Get("/{id}", s.GetProduct)
			r.Put("/{id}", s.UpdateProduct)
			r.Patch("/{id}/metadata", s.PatchProductMetadata)
			r.Delete("/{id}", s.DeleteProduct)
		})
		r.Route("/purchase", func(r chi.Router) {
			r.Post("/", s.RecordPurchase)
			r.Get("/{userId}", s.ListPurchases)
			r.Delete("/{userId}", s.ClearPurchases)
		})
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	st := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	status := "ok"
	if !st.Healthy {
		httpStatus = http.StatusServiceUnavailable
		status = "degraded"
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":   status,
		"database": st.Database,
		"products": st.Products,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrDuplicateTitle,
		domain.ErrEmptyQuery,
		domain.ErrInvalidRequest,
		domain.ErrInvalidProduct,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkart/prodex/internal/metrics"
)

type purchaseRequest struct {
	UserID    string `json:"userId"`
	ProductID int64  `json:"productId"`
}

// RecordPurchase handles POST /api/v1/purchase.
func (s *Server) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	count, err := s.purchases.Record(r.Context(), req.UserID, req.ProductID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	metrics.PurchasesRecordedTotal.Inc()

	writeJSON(w, http.StatusCreated, map[string]any{
		"userId":    req.UserID,
		"productId": req.ProductID,
		"count":     count,
	})
}

// ListPurchases handles GET /api/v1/purchase/{userId}.
func (s *Server) ListPurchases(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	entries, err := s.purchases.List(r.Context(), userID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	type purchaseEntry struct {
		Product productResponse `json:"product"`
		Count   int             `json:"count"`
	}
	items := make([]purchaseEntry, len(entries))
	for i := range entries {
		items[i] = purchaseEntry{
			Product: productToResponse(&entries[i].Product),
			Count:   entries[i].Count,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"userId":    userID,
		"purchases": items,
	})
}

// ClearPurchases handles DELETE /api/v1/purchase/{userId}.
func (s *Server) ClearPurchases(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	if err := s.purchases.Clear(r.Context(), userID); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

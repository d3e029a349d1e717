package chi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	domprod "github.com/shopkart/prodex/internal/domain/product"
)

type productPayload struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Rating      float64           `json:"rating"`
	RatingCount int               `json:"ratingCount"`
	Price       float64           `json:"price"`
	MRP         float64           `json:"mrp"`
	Stock       int               `json:"stock"`
	UnitsSold   int               `json:"unitsSold"`
	ReturnRate  float64           `json:"returnRate"`
	Complaints  int               `json:"complaints"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type productResponse struct {
	ID              int64             `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Rating          float64           `json:"rating"`
	RatingCount     int               `json:"ratingCount"`
	Price           float64           `json:"price"`
	MRP             float64           `json:"mrp"`
	Stock           int               `json:"stock"`
	InStock         bool              `json:"inStock"`
	UnitsSold       int               `json:"unitsSold"`
	ReturnRate      float64           `json:"returnRate"`
	Complaints      int               `json:"complaints"`
	DiscountPercent float64           `json:"discountPercent"`
	CreatedAt       time.Time         `json:"createdAt"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

func paramsFromPayload(p productPayload) domprod.Params {
	return domprod.Params{
		Title:       p.Title,
		Description: p.Description,
		Rating:      p.Rating,
		RatingCount: p.RatingCount,
		Price:       p.Price,
		MRP:         p.MRP,
		Stock:       p.Stock,
		UnitsSold:   p.UnitsSold,
		ReturnRate:  p.ReturnRate,
		Complaints:  p.Complaints,
		Metadata:    domprod.Metadata(p.Metadata),
	}
}

func productToResponse(p *domprod.Product) productResponse {
	return productResponse{
		ID:              p.ID(),
		Title:           p.Title(),
		Description:     p.Description(),
		Rating:          p.Rating(),
		RatingCount:     p.RatingCount(),
		Price:           p.Price(),
		MRP:             p.MRP(),
		Stock:           p.Stock(),
		InStock:         p.InStock(),
		UnitsSold:       p.UnitsSold(),
		ReturnRate:      p.ReturnRate(),
		Complaints:      p.Complaints(),
		DiscountPercent: p.DiscountPercent(),
		CreatedAt:       p.CreatedAt().UTC(),
		Metadata:        p.Metadata(),
	}
}

func productIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// CreateProduct handles POST /api/v1/product.
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	prod, err := s.products.Create(paramsFromPayload(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, productToResponse(&prod))
}

// BulkCreateProducts handles POST /api/v1/product/bulk.
func (s *Server) BulkCreateProducts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Products []productPayload `json:"products"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Products) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "products must not be empty")
		return
	}
	if len(req.Products) > s.maxBatchSize {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			fmt.Sprintf("batch exceeds the maximum of %d products", s.maxBatchSize))
		return
	}

	batch := make([]domprod.Params, len(req.Products))
	for i, p := range req.Products {
		batch[i] = paramsFromPayload(p)
	}

	added, err := s.products.BulkCreate(batch)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]productResponse, len(added))
	for i := range added {
		items[i] = productToResponse(&added[i])
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"products": items,
		"added":    len(items),
	})
}

// GetProduct handles GET /api/v1/product/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "invalid product id")
		return
	}

	prod, err := s.products.Get(id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productToResponse(&prod))
}

// ListProducts handles GET /api/v1/product.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	page := intParam(r, "page", 1)
	limit := intParam(r, "limit", s.defaultPageSize)
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	items, total := s.products.List(page, limit)

	resp := make([]productResponse, len(items))
	for i := range items {
		resp[i] = productToResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"products": resp,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// UpdateProduct handles PUT /api/v1/product/{id}.
func (s *Server) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "invalid product id")
		return
	}

	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	prod, err := s.products.Update(id, paramsFromPayload(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productToResponse(&prod))
}

// PatchProductMetadata handles PATCH /api/v1/product/{id}/metadata.
func (s *Server) PatchProductMetadata(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "invalid product id")
		return
	}

	var patch map[string]string
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(patch) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "metadata patch must not be empty")
		return
	}

	prod, err := s.products.UpdateMetadata(id, domprod.Metadata(patch))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productToResponse(&prod))
}

// DeleteProduct handles DELETE /api/v1/product/{id}.
func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "invalid product id")
		return
	}

	if err := s.products.Delete(id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func intParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

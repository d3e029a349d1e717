package search

import (
	"strings"

	"github.com/shopkart/prodex/internal/domain/product"
	"github.com/shopkart/prodex/internal/domain/query"
	"github.com/shopkart/prodex/internal/domain/search/request"
)

// applyFilters reduces the candidate set before ranking. Explicit request
// filters are hard excludes. Intent-derived price bounds apply only for the
// dimensions the request leaves open, an accessory-intent category always
// hard-excludes, and an intent color is a soft reorder: matches move to the
// front of the filtered set, non-matches stay in.
func applyFilters(candidates []product.Product, req *request.Request, intent *query.Intent) []product.Product {
	minPrice, maxPrice := priceBounds(req, intent)

	out := make([]product.Product, 0, len(candidates))
	for i := range candidates {
		if keep(&candidates[i], req, intent, minPrice, maxPrice) {
			out = append(out, candidates[i])
		}
	}
	if intent.Color() != "" {
		promoteColorMatches(out, intent.Color())
	}
	return out
}

// priceBounds merges explicit and intent-derived price limits. The intent
// bound is used per dimension only when the request does not set that bound.
func priceBounds(req *request.Request, intent *query.Intent) (minPrice, maxPrice *float64) {
	minPrice, maxPrice = req.MinPrice(), req.MaxPrice()
	pr := intent.PriceRange()
	if pr == nil {
		return minPrice, maxPrice
	}
	if minPrice == nil {
		if v, ok := pr.Min(); ok {
			minPrice = &v
		}
	}
	if maxPrice == nil {
		if v, ok := pr.Max(); ok {
			maxPrice = &v
		}
	}
	return minPrice, maxPrice
}

func keep(p *product.Product, req *request.Request, intent *query.Intent, minPrice, maxPrice *float64) bool {
	meta := p.Metadata()

	switch {
	case req.Category() != "":
		if !strings.EqualFold(meta.Category(), req.Category()) {
			return false
		}
	case intent.Category() == query.CategoryAccessory:
		// Accessory searches must not leak phones or laptops into the
		// results, so this one intent category excludes rather than boosts.
		if !strings.EqualFold(meta.Category(), query.CategoryAccessory) {
			return false
		}
	}

	if req.Brand() != "" && !strings.EqualFold(meta.Brand(), req.Brand()) {
		return false
	}
	if minPrice != nil && p.Price() < *minPrice {
		return false
	}
	if maxPrice != nil && p.Price() > *maxPrice {
		return false
	}
	if req.MinRating() != nil && p.Rating() < *req.MinRating() {
		return false
	}
	if req.InStock() && !p.InStock() {
		return false
	}
	return true
}

// promoteColorMatches stable-partitions the slice so color matches lead.
func promoteColorMatches(products []product.Product, color string) {
	reordered := make([]product.Product, 0, len(products))
	var rest []product.Product
	for i := range products {
		if matchesColor(&products[i], color) {
			reordered = append(reordered, products[i])
		} else {
			rest = append(rest, products[i])
		}
	}
	copy(products, append(reordered, rest...))
}

func matchesColor(p *product.Product, color string) bool {
	return strings.EqualFold(p.Metadata().Color(), color) ||
		strings.Contains(strings.ToLower(p.Title()), strings.ToLower(color))
}

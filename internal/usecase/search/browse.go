package search

import (
	"sort"
	"strings"

	"github.com/shopkart/prodex/internal/domain/product"
)

// Suggestions returns up to limit autocomplete candidates for a partial
// query: matching titles first, then brands and models. The partial goes
// through the interpreter so "ifone" still suggests iPhones.
func (s *Service) Suggestions(partial string, limit int) []string {
	if strings.TrimSpace(partial) == "" || limit <= 0 {
		return nil
	}
	intent := s.interp.Interpret(partial)
	needle := intent.ProcessedQuery()
	if needle == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(v string) {
		if v == "" || len(out) >= limit {
			return
		}
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}

	products := s.catalog.All()
	for i := range products {
		if strings.Contains(strings.ToLower(products[i].Title()), needle) {
			add(products[i].Title())
		}
	}
	for i := range products {
		meta := products[i].Metadata()
		if strings.Contains(strings.ToLower(meta.Brand()), needle) {
			add(meta.Brand())
		}
		if strings.Contains(strings.ToLower(meta.Model()), needle) {
			add(meta.Model())
		}
	}
	return out
}

// Trending returns up to limit in-stock products by units sold.
func (s *Service) Trending(limit int) []product.Product {
	return topSellers(s.catalog.All(), limit, func(p *product.Product) bool {
		return p.InStock()
	})
}

// ByCategory returns up to limit in-stock products in a category, best
// sellers first.
func (s *Service) ByCategory(category string, limit int) []product.Product {
	return topSellers(s.catalog.All(), limit, func(p *product.Product) bool {
		return p.InStock() && strings.EqualFold(p.Metadata().Category(), category)
	})
}

func topSellers(products []product.Product, limit int, match func(*product.Product) bool) []product.Product {
	if limit <= 0 {
		return nil
	}
	out := make([]product.Product, 0, limit)
	for i := range products {
		if match(&products[i]) {
			out = append(out, products[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UnitsSold() != out[j].UnitsSold() {
			return out[i].UnitsSold() > out[j].UnitsSold()
		}
		return out[i].ID() < out[j].ID()
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

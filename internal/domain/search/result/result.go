// Package result holds scored search hits.
package result

import "github.com/shopkart/prodex/internal/domain/product"

// ScoredCandidate pairs a product reference with its ranking score.
// It lives for the duration of one search request and is never persisted.
// The product is shared with the catalog snapshot and must not be mutated.
type ScoredCandidate struct {
	product        *product.Product
	score          float64
	textSimilarity float64
}

// New creates a scored candidate.
func New(p *product.Product, score, textSimilarity float64) ScoredCandidate {
	return ScoredCandidate{product: p, score: score, textSimilarity: textSimilarity}
}

// Product returns the underlying catalog record.
func (c *ScoredCandidate) Product() *product.Product { return c.product }

// Score returns the final 0-100 ranking score.
func (c *ScoredCandidate) Score() float64 { return c.score }

// TextSimilarity returns the 0-1 fuzzy text similarity used during scoring.
func (c *ScoredCandidate) TextSimilarity() float64 { return c.textSimilarity }

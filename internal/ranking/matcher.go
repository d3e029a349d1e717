// Package ranking fuses fuzzy text similarity with business signals into a
// single 0-100 score and orders candidates deterministically.
package ranking

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/shopkart/prodex/internal/domain/product"
)

const (
	// MatchThreshold is the maximum normalized edit distance for a candidate
	// to count as a text match. Worse candidates are excluded from ranked
	// output entirely, not scored zero.
	MatchThreshold = 0.4
	// NeutralSimilarity is assigned to every candidate when the query has no
	// residual search terms, so filter-only queries still produce results.
	NeutralSimilarity = 0.5
)

// matchField is one weighted product field in the similarity computation.
type matchField struct {
	weight float64
	value  func(p *product.Product) string
}

var matchFields = []matchField{
	{0.4, func(p *product.Product) string { return p.Title() }},
	{0.2, func(p *product.Product) string { return p.Description() }},
	{0.15, func(p *product.Product) string { return p.Metadata().Brand() }},
	{0.15, func(p *product.Product) string { return p.Metadata().Model() }},
	{0.1, func(p *product.Product) string { return p.Metadata().Category() }},
}

// Similarity fuzzy-matches the token list against the candidate's weighted
// fields. Returns the 0-1 similarity and whether the candidate clears the
// match threshold. Fields the product does not carry are left out of the
// weighting rather than counted as misses.
func Similarity(p *product.Product, tokens []string) (float64, bool) {
	if len(tokens) == 0 {
		return NeutralSimilarity, true
	}

	var weightedDist, totalWeight float64
	for _, f := range matchFields {
		text := strings.ToLower(f.value(p))
		if text == "" {
			continue
		}
		weightedDist += f.weight * fieldDistance(tokens, strings.Fields(text))
		totalWeight += f.weight
	}
	if totalWeight == 0 {
		return 0, false
	}

	dist := weightedDist / totalWeight
	if dist > MatchThreshold {
		return 1 - dist, false
	}
	return 1 - dist, true
}

// fieldDistance is the mean over query tokens of each token's best
// normalized distance to any word of the field.
func fieldDistance(tokens, fieldWords []string) float64 {
	var total float64
	for _, tok := range tokens {
		best := 1.0
		for _, w := range fieldWords {
			if d := wordDistance(tok, w); d < best {
				best = d
				if best == 0 {
					break
				}
			}
		}
		total += best
	}
	return total / float64(len(tokens))
}

// wordDistance is the edit distance normalized by the longer word, with
// substring containment treated as an exact hit (the matcher ignores
// location, like a trigram matcher would).
func wordDistance(a, b string) float64 {
	if a == b || strings.Contains(b, a) || strings.Contains(a, b) {
		return 0
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	if longer == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longer)
}

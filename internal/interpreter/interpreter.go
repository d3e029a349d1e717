// Package interpreter turns noisy free-text queries into structured intent:
// normalization, spelling correction, colloquial translation, and ordered
// intent-extraction rules.
package interpreter

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/shopkart/prodex/internal/domain/query"
)

// Fuzzy spelling-correction guards: only tokens of at least minFuzzyLen are
// considered, a brand is substituted only within edit distance 1, and only
// when its length is within 1 of the original token.
const (
	minFuzzyLen     = 4
	maxFuzzyDist    = 1
	maxFuzzyLenDiff = 1
)

// Interpreter derives a QueryIntent from raw query text. It holds no mutable
// state; Interpret is a pure function of its input and safe for concurrent
// use.
type Interpreter struct{}

// New creates an Interpreter.
func New() *Interpreter { return &Interpreter{} }

// Interpret runs the full pipeline in fixed order. Each stage operates on the
// previous stage's output, so corrected tokens can still match the colloquial
// and color dictionaries. An empty or whitespace-only query yields a neutral
// intent with no tokens.
func (it *Interpreter) Interpret(rawQuery string) query.Intent {
	q := normalize(rawQuery)
	q = correctSpelling(q)
	q = translateColloquial(q)
	q = normalizeColors(q)

	p := query.Params{
		OriginalQuery:  rawQuery,
		ProcessedQuery: q,
	}
	if q != "" {
		for _, rule := range intentRules {
			rule.apply(q, &p)
		}
		p.Tokens = tokenize(q)
	}
	return query.New(p)
}

// normalize lower-cases, trims, and collapses internal whitespace.
func normalize(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

// correctSpelling applies the exact misspelling dictionary, then fuzzy
// brand correction on the residual words.
func correctSpelling(q string) string {
	for _, sub := range spellingCorrections {
		q = sub.re.ReplaceAllString(q, sub.to)
	}

	words := strings.Fields(q)
	for i, w := range words {
		if len(w) < minFuzzyLen {
			continue
		}
		if _, ok := protectedWords[w]; ok {
			continue
		}
		if brand := closestBrand(w); brand != "" {
			words[i] = brand
		}
	}
	return strings.Join(words, " ")
}

// closestBrand returns the nearest known brand within the fuzzy guards,
// or "" when no brand qualifies.
func closestBrand(word string) string {
	best := ""
	bestDist := maxFuzzyDist + 1
	for _, brand := range knownBrands {
		diff := len(brand) - len(word)
		if diff < -maxFuzzyLenDiff || diff > maxFuzzyLenDiff {
			continue
		}
		d := levenshtein.ComputeDistance(word, brand)
		if d < bestDist {
			bestDist = d
			best = brand
		}
	}
	if bestDist > maxFuzzyDist {
		return ""
	}
	return best
}

func translateColloquial(q string) string {
	for _, sub := range colloquialTerms {
		q = sub.re.ReplaceAllString(q, sub.to)
	}
	// Dropped filler words leave double spaces behind.
	return strings.Join(strings.Fields(q), " ")
}

func normalizeColors(q string) string {
	for _, sub := range colorTerms {
		q = sub.re.ReplaceAllString(q, sub.to)
	}
	return q
}

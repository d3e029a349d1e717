package interpreter

import (
	"strconv"
	"strings"

	"github.com/shopkart/prodex/internal/domain/query"
)

// intentRule is one (matcher, extractor) pair. Rules run in slice order over
// the fully normalized query so precedence is an explicit, testable artifact
// rather than hidden control flow.
type intentRule struct {
	name  string
	apply func(q string, p *query.Params)
}

var intentRules = []intentRule{
	{"price-flags", extractPriceFlags},
	{"price-range", extractPriceRange},
	{"color", extractColor},
	{"storage", extractStorage},
	{"brand", extractBrand},
	{"category", extractCategory},
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func extractPriceFlags(q string, p *query.Params) {
	p.IsCheap = containsAny(q, cheapKeywords)
	p.IsExpensive = containsAny(q, expensiveKeywords)
	p.IsLatest = containsAny(q, latestKeywords)
}

func extractPriceRange(q string, p *query.Params) {
	for _, pat := range pricePatterns {
		m := pat.re.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		// Trailing "k" is a thousands suffix ("50k" = 50000), but only for
		// short numbers so "1400k rupees" stays literal.
		if m[2] == "k" && value < 1000 {
			value *= 1000
		}
		var r query.PriceRange
		switch pat.kind {
		case priceAround:
			r = query.NewPriceBand(value*(1-aroundBandFraction), value*(1+aroundBandFraction))
		default:
			r = query.NewPriceMax(value)
		}
		p.PriceRange = &r
		return
	}
}

func extractColor(q string, p *query.Params) {
	for _, color := range colorVocabulary {
		if strings.Contains(q, color) {
			if color == "grey" {
				color = "gray"
			}
			p.Color = color
			return
		}
	}
}

func extractStorage(q string, p *query.Params) {
	if containsAny(q, highStoragePhrases) {
		p.StorageTier = query.StorageHigh
		return
	}
	if m := storageSizeRe.FindStringSubmatch(q); m != nil {
		p.StorageTier = m[1] + strings.ToUpper(m[2])
	}
}

func extractBrand(q string, p *query.Params) {
	for _, ba := range brandAliases {
		if strings.Contains(q, ba.alias) {
			p.Brand = ba.brand
			return
		}
	}
}

// extractCategory checks accessory keywords first: "iphone cover" must land
// in accessories, not phones.
func extractCategory(q string, p *query.Params) {
	if containsAny(q, accessoryKeywords) {
		p.Category = query.CategoryAccessory
		return
	}
	for _, ck := range categoryKeywords {
		if containsAny(q, ck.keywords) {
			p.Category = ck.category
			return
		}
	}
}

package ranking

import (
	"math"
	"strings"
	"time"

	"github.com/shopkart/prodex/internal/domain/product"
	"github.com/shopkart/prodex/internal/domain/query"
)

// Sub-score weights. They sum to 1 so the weighted combination stays on the
// 0-100 scale before penalties and boosts.
const (
	weightText       = 0.35
	weightRating     = 0.20
	weightPopularity = 0.15
	weightPrice      = 0.10
	weightStock      = 0.10
	weightRecency    = 0.05
	weightDiscount   = 0.05
)

// Rating shrinkage: observed averages are blended with a prior of strength
// ratingPriorStrength around ratingPriorMean so a 5.0 from three ratings does
// not outrank a 4.6 from thousands.
const (
	ratingPriorStrength = 100
	ratingPriorMean     = 3.5
	unratedScore        = 30
)

const (
	maxExpectedSales  = 100000
	referenceMaxPrice = 200000
	// outOfRangeScore is the flat price-fit score for products priced outside
	// an extracted range.
	outOfRangeScore = 20
)

// Penalties, capped in total at maxPenalty.
const (
	outOfStockPenalty   = 25
	returnRateThreshold = 5.0
	returnRatePerPoint  = 1.0
	complaintThreshold  = 10
	complaintPerCount   = 0.2
	maxPenalty          = 30
)

// Intent boosts.
const (
	colorBoost          = 15
	storageExactBoost   = 15
	storageHighTopGB    = 512
	storageHighTopBoost = 15
	storageHighMidGB    = 256
	storageHighMidBoost = 10
	brandBoost          = 10
	categoryBoost       = 10
	latestModelBoost    = 10
)

// Personalization: repeat buyers see products they already purchased boosted.
const (
	purchaseBaseBoost  = 5
	repeatPurchaseStep = 2
	maxPersonalBoost   = 15
)

// latestModelKeywords mark current-generation models in titles for the
// isLatest boost.
var latestModelKeywords = []string{"16", "15", "24", "14", "13", "pro", "ultra", "max", "plus"}

// Scorer combines text similarity with business signals. It is stateless
// apart from the injected clock and safe for concurrent use.
type Scorer struct {
	now func() time.Time
}

// NewScorer creates a Scorer using the wall clock.
func NewScorer() *Scorer { return &Scorer{now: time.Now} }

// NewScorerAt creates a Scorer with a fixed clock for reproducible scoring.
func NewScorerAt(now func() time.Time) *Scorer { return &Scorer{now: now} }

// Score computes the final 0-100 score for one candidate.
// purchaseCount is how many times the requesting user bought this product.
func (s *Scorer) Score(p *product.Product, intent *query.Intent, textSim float64, purchaseCount int) float64 {
	score := textSim*100*weightText +
		ratingScore(p)*weightRating +
		popularityScore(p)*weightPopularity +
		priceScore(p, intent)*weightPrice +
		stockScore(p)*weightStock +
		s.recencyScore(p)*weightRecency +
		discountScore(p)*weightDiscount

	score -= penalties(p)
	score += intentBoost(p, intent)
	score += personalBoost(purchaseCount)

	return math.Max(0, math.Min(100, score))
}

func ratingScore(p *product.Product) float64 {
	if p.RatingCount() == 0 {
		return unratedScore
	}
	n := float64(p.RatingCount())
	bayesian := (n*p.Rating() + ratingPriorStrength*ratingPriorMean) / (n + ratingPriorStrength)
	return bayesian / 5 * 100
}

// popularityScore compresses units sold logarithmically so bestsellers do
// not dominate linearly.
func popularityScore(p *product.Product) float64 {
	sold := math.Min(float64(p.UnitsSold()), maxExpectedSales)
	return math.Log10(1+9*sold/maxExpectedSales) * 100
}

func priceScore(p *product.Product, intent *query.Intent) float64 {
	normalized := math.Min(p.Price(), referenceMaxPrice) / referenceMaxPrice
	if intent.IsCheap() {
		return (1 - normalized) * 100
	}
	if intent.IsExpensive() {
		return normalized * 100
	}

	if pr := intent.PriceRange(); pr != nil {
		lo, hasMin := pr.Min()
		hi, hasMax := pr.Max()
		switch {
		case hasMin && hasMax:
			if p.Price() >= lo && p.Price() <= hi {
				return 100
			}
			return outOfRangeScore
		case hasMax:
			if p.Price() <= hi && hi > 0 {
				// Reward richer-but-still-affordable matches.
				return p.Price() / hi * 100
			}
			return outOfRangeScore
		case hasMin:
			if p.Price() >= lo {
				return 100
			}
			return outOfRangeScore
		}
	}

	// No price intent: fall back to rewarding discounts.
	return discountScore(p)
}

func stockScore(p *product.Product) float64 {
	switch stock := p.Stock(); {
	case stock == 0:
		return 0
	case stock < 5:
		return 30
	case stock < 20:
		return 60
	case stock < 100:
		return 80
	default:
		return 100
	}
}

func (s *Scorer) recencyScore(p *product.Product) float64 {
	days := s.now().Sub(p.CreatedAt()).Hours() / 24
	switch {
	case days <= 30:
		return 100
	case days <= 90:
		return 70
	case days <= 180:
		return 50
	case days <= 365:
		return 30
	default:
		return 10
	}
}

func discountScore(p *product.Product) float64 {
	return math.Min(p.DiscountPercent()*2, 100)
}

func penalties(p *product.Product) float64 {
	var penalty float64
	if p.Stock() == 0 {
		penalty += outOfStockPenalty
	}
	if p.ReturnRate() > returnRateThreshold {
		penalty += (p.ReturnRate() - returnRateThreshold) * returnRatePerPoint
	}
	if p.Complaints() > complaintThreshold {
		penalty += float64(p.Complaints()-complaintThreshold) * complaintPerCount
	}
	return math.Min(penalty, maxPenalty)
}

func intentBoost(p *product.Product, intent *query.Intent) float64 {
	var boost float64
	md := p.Metadata()

	if c := intent.Color(); c != "" && strings.EqualFold(md.Color(), c) {
		boost += colorBoost
	}

	if tier := intent.StorageTier(); tier != "" {
		if tier == query.StorageHigh {
			switch gb := md.StorageGB(); {
			case gb >= storageHighTopGB:
				boost += storageHighTopBoost
			case gb >= storageHighMidGB:
				boost += storageHighMidBoost
			}
		} else if md.Storage() != "" &&
			strings.Contains(strings.ToLower(md.Storage()), strings.ToLower(tier)) {
			boost += storageExactBoost
		}
	}

	if b := intent.Brand(); b != "" && strings.EqualFold(md.Brand(), b) {
		boost += brandBoost
	}

	if c := intent.Category(); c != "" && strings.EqualFold(md.Category(), c) {
		boost += categoryBoost
	}

	if intent.IsLatest() {
		title := strings.ToLower(p.Title())
		for _, kw := range latestModelKeywords {
			if strings.Contains(title, kw) {
				boost += latestModelBoost
				break
			}
		}
	}

	return boost
}

func personalBoost(purchaseCount int) float64 {
	if purchaseCount <= 0 {
		return 0
	}
	boost := float64(purchaseBaseBoost + (purchaseCount-1)*repeatPurchaseStep)
	return math.Min(boost, maxPersonalBoost)
}

package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shopkart/prodex/internal/domain/product"
	"github.com/shopkart/prodex/internal/domain/query"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func makeProduct(mutate func(*product.Params)) product.Product {
	p := product.Params{
		ID:          1,
		Title:       "Test Phone",
		Description: "An everyday smartphone",
		Rating:      4.0,
		RatingCount: 100,
		Price:       50000,
		MRP:         60000,
		Stock:       50,
		UnitsSold:   1000,
		CreatedAt:   testNow.AddDate(0, 0, -60),
		Metadata: product.Metadata{
			"brand":    "Samsung",
			"model":    "Galaxy Test",
			"category": "phone",
			"color":    "Black",
			"storage":  "128GB",
		},
	}
	if mutate != nil {
		mutate(&p)
	}
	return product.Reconstruct(p)
}

func TestRatingScore_UnratedGetsFlatDefault(t *testing.T) {
	// The supplied rating must be ignored without any rating count.
	for _, rating := range []float64{0, 2.5, 5} {
		p := makeProduct(func(pp *product.Params) {
			pp.Rating = rating
			pp.RatingCount = 0
		})
		assert.Equal(t, float64(unratedScore), ratingScore(&p))
	}
}

func TestRatingScore_BayesianShrinkage(t *testing.T) {
	// 100 ratings of 5.0 against prior (C=100, m=3.5): (500+350)/200 = 4.25.
	p := makeProduct(func(pp *product.Params) {
		pp.Rating = 5.0
		pp.RatingCount = 100
	})
	assert.InDelta(t, 85.0, ratingScore(&p), 0.001)

	// A perfect score from few ratings must not outrank a strong average
	// from thousands.
	few := makeProduct(func(pp *product.Params) { pp.Rating = 5.0; pp.RatingCount = 3 })
	many := makeProduct(func(pp *product.Params) { pp.Rating = 4.6; pp.RatingCount = 5000 })
	assert.Less(t, ratingScore(&few), ratingScore(&many))
}

func TestPriceScore_CheapIntentIsMonotonic(t *testing.T) {
	intent := query.New(query.Params{IsCheap: true})

	cheaper := makeProduct(func(pp *product.Params) { pp.Price = 10000; pp.MRP = 10000 })
	pricier := makeProduct(func(pp *product.Params) { pp.Price = 90000; pp.MRP = 90000 })

	assert.Greater(t, priceScore(&cheaper, &intent), priceScore(&pricier, &intent))
}

func TestPriceScore_ExpensiveIntentMirrors(t *testing.T) {
	intent := query.New(query.Params{IsExpensive: true})

	cheaper := makeProduct(func(pp *product.Params) { pp.Price = 10000; pp.MRP = 10000 })
	pricier := makeProduct(func(pp *product.Params) { pp.Price = 90000; pp.MRP = 90000 })

	assert.Greater(t, priceScore(&pricier, &intent), priceScore(&cheaper, &intent))
}

func TestPriceScore_BandInRange(t *testing.T) {
	band := query.NewPriceBand(24000, 36000)
	intent := query.New(query.Params{PriceRange: &band})

	inRange := makeProduct(func(pp *product.Params) { pp.Price = 30000 })
	outside := makeProduct(func(pp *product.Params) { pp.Price = 50000 })

	assert.Equal(t, 100.0, priceScore(&inRange, &intent))
	assert.Equal(t, float64(outOfRangeScore), priceScore(&outside, &intent))
}

func TestPriceScore_MaxOnlyRewardsRicherMatches(t *testing.T) {
	max := query.NewPriceMax(60000)
	intent := query.New(query.Params{PriceRange: &max})

	mid := makeProduct(func(pp *product.Params) { pp.Price = 30000 })
	near := makeProduct(func(pp *product.Params) { pp.Price = 59000 })
	over := makeProduct(func(pp *product.Params) { pp.Price = 61000 })

	assert.InDelta(t, 50.0, priceScore(&mid, &intent), 0.001)
	assert.Greater(t, priceScore(&near, &intent), priceScore(&mid, &intent))
	assert.Equal(t, float64(outOfRangeScore), priceScore(&over, &intent))
}

func TestStockScore_Tiers(t *testing.T) {
	cases := []struct {
		stock int
		want  float64
	}{
		{0, 0}, {1, 30}, {4, 30}, {5, 60}, {19, 60}, {20, 80}, {99, 80}, {100, 100},
	}
	for _, tc := range cases {
		p := makeProduct(func(pp *product.Params) { pp.Stock = tc.stock })
		assert.Equal(t, tc.want, stockScore(&p), "stock=%d", tc.stock)
	}
}

func TestRecencyScore_Tiers(t *testing.T) {
	s := NewScorerAt(fixedClock)
	cases := []struct {
		ageDays int
		want    float64
	}{
		{10, 100}, {30, 100}, {60, 70}, {120, 50}, {300, 30}, {400, 10},
	}
	for _, tc := range cases {
		p := makeProduct(func(pp *product.Params) {
			pp.CreatedAt = testNow.AddDate(0, 0, -tc.ageDays)
		})
		assert.Equal(t, tc.want, s.recencyScore(&p), "age=%dd", tc.ageDays)
	}
}

func TestPenalties_CappedAtMax(t *testing.T) {
	p := makeProduct(func(pp *product.Params) {
		pp.Stock = 0       // 25
		pp.ReturnRate = 20 // +15
		pp.Complaints = 60 // +10
	})
	assert.Equal(t, float64(maxPenalty), penalties(&p))
}

func TestPenalties_BelowThresholdsIsFree(t *testing.T) {
	p := makeProduct(func(pp *product.Params) {
		pp.ReturnRate = 5
		pp.Complaints = 10
	})
	assert.Equal(t, 0.0, penalties(&p))
}

func TestIntentBoost_AllSignalsAdditive(t *testing.T) {
	intent := query.New(query.Params{
		Color:       "black",
		StorageTier: "128GB",
		Brand:       "Samsung",
		Category:    "phone",
		IsLatest:    true,
	})
	p := makeProduct(func(pp *product.Params) {
		pp.Title = "Samsung Galaxy S24 Ultra"
	})

	// color 15 + storage 15 + brand 10 + category 10 + latest 10
	assert.Equal(t, 60.0, intentBoost(&p, &intent))
}

func TestIntentBoost_HighStorageTiers(t *testing.T) {
	intent := query.New(query.Params{StorageTier: query.StorageHigh})

	top := makeProduct(func(pp *product.Params) { pp.Metadata["storage"] = "512GB" })
	tb := makeProduct(func(pp *product.Params) { pp.Metadata["storage"] = "1TB" })
	mid := makeProduct(func(pp *product.Params) { pp.Metadata["storage"] = "256GB" })
	low := makeProduct(func(pp *product.Params) { pp.Metadata["storage"] = "128GB" })

	assert.Equal(t, float64(storageHighTopBoost), intentBoost(&top, &intent))
	assert.Equal(t, float64(storageHighTopBoost), intentBoost(&tb, &intent))
	assert.Equal(t, float64(storageHighMidBoost), intentBoost(&mid, &intent))
	assert.Equal(t, 0.0, intentBoost(&low, &intent))
}

func TestPersonalBoost_CappedGrowth(t *testing.T) {
	assert.Equal(t, 0.0, personalBoost(0))
	assert.Equal(t, 5.0, personalBoost(1))
	assert.Equal(t, 7.0, personalBoost(2))
	assert.Equal(t, 15.0, personalBoost(6))
	assert.Equal(t, 15.0, personalBoost(100))
}

func TestScore_ClampedToRange(t *testing.T) {
	s := NewScorerAt(fixedClock)
	intent := query.New(query.Params{
		Color:       "black",
		StorageTier: "128GB",
		Brand:       "Samsung",
		Category:    "phone",
		IsLatest:    true,
	})

	best := makeProduct(func(pp *product.Params) {
		pp.Title = "Samsung Galaxy S24 Ultra"
		pp.Rating = 4.9
		pp.RatingCount = 50000
		pp.UnitsSold = 100000
		pp.Price = 20000
		pp.MRP = 40000
		pp.Stock = 500
		pp.CreatedAt = testNow.AddDate(0, 0, -5)
	})
	worst := makeProduct(func(pp *product.Params) {
		pp.Stock = 0
		pp.ReturnRate = 50
		pp.Complaints = 200
		pp.Rating = 1
		pp.RatingCount = 5000
		pp.UnitsSold = 0
		pp.CreatedAt = testNow.AddDate(-3, 0, 0)
	})

	top := s.Score(&best, &intent, 1.0, 10)
	bottom := s.Score(&worst, &intent, 0.0, 0)

	assert.LessOrEqual(t, top, 100.0)
	assert.GreaterOrEqual(t, top, 90.0)
	assert.GreaterOrEqual(t, bottom, 0.0)
	assert.Less(t, bottom, top)
}

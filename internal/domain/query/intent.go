// Package query holds the structured intent derived from free-text queries.
package query

// StorageHigh is the sentinel storage tier for "wants more storage" queries,
// as opposed to a literal size like "256GB".
const StorageHigh = "high"

// CategoryAccessory marks accessory-intent queries. Accessory matches are
// excluded outright from non-accessory searches, so the value is shared with
// the filtering stage.
const CategoryAccessory = "accessory"

// PriceRange is an optional price band extracted from the query.
// Either bound may be absent.
type PriceRange struct {
	min    float64
	max    float64
	hasMin bool
	hasMax bool
}

// NewPriceMax creates a range with only an upper bound ("under 50k").
func NewPriceMax(max float64) PriceRange {
	return PriceRange{max: max, hasMax: true}
}

// NewPriceBand creates a closed range ("around 30k" style bands).
func NewPriceBand(min, max float64) PriceRange {
	return PriceRange{min: min, max: max, hasMin: true, hasMax: true}
}

// Min returns the lower bound and whether it is set.
func (r PriceRange) Min() (float64, bool) { return r.min, r.hasMin }

// Max returns the upper bound and whether it is set.
func (r PriceRange) Max() (float64, bool) { return r.max, r.hasMax }

// Params carries the interpreted query fields.
type Params struct {
	OriginalQuery  string
	ProcessedQuery string
	Tokens         []string
	IsCheap        bool
	IsExpensive    bool
	IsLatest       bool
	PriceRange     *PriceRange
	Color          string
	StorageTier    string
	Brand          string
	Category       string
}

// Intent is the structured interpretation of a raw search query. It is
// derived, ephemeral, and recomputed per request; empty string fields mean
// the corresponding signal was not present in the query.
type Intent struct {
	originalQuery  string
	processedQuery string
	tokens         []string
	isCheap        bool
	isExpensive    bool
	isLatest       bool
	priceRange     *PriceRange
	color          string
	storageTier    string
	brand          string
	category       string
}

// New creates an Intent from interpreted fields.
func New(p Params) Intent {
	return Intent{
		originalQuery:  p.OriginalQuery,
		processedQuery: p.ProcessedQuery,
		tokens:         p.Tokens,
		isCheap:        p.IsCheap,
		isExpensive:    p.IsExpensive,
		isLatest:       p.IsLatest,
		priceRange:     p.PriceRange,
		color:          p.Color,
		storageTier:    p.StorageTier,
		brand:          p.Brand,
		category:       p.Category,
	}
}

// OriginalQuery returns the verbatim user input.
func (i *Intent) OriginalQuery() string { return i.originalQuery }

// ProcessedQuery returns the normalized, corrected, translated query text.
func (i *Intent) ProcessedQuery() string { return i.processedQuery }

// Tokens returns the residual search terms used for text matching.
// Stop-words, intent-words, and bare numeric tokens are already removed.
func (i *Intent) Tokens() []string { return i.tokens }

// IsCheap reports a low-price intent.
func (i *Intent) IsCheap() bool { return i.isCheap }

// IsExpensive reports a premium-price intent.
func (i *Intent) IsExpensive() bool { return i.isExpensive }

// IsLatest reports a recency intent.
func (i *Intent) IsLatest() bool { return i.isLatest }

// PriceRange returns the extracted price band, nil when absent.
func (i *Intent) PriceRange() *PriceRange { return i.priceRange }

// Color returns the extracted color, "" when absent.
func (i *Intent) Color() string { return i.color }

// StorageTier returns a literal size like "128GB" or StorageHigh, "" when absent.
func (i *Intent) StorageTier() string { return i.storageTier }

// Brand returns the canonical extracted brand, "" when absent.
func (i *Intent) Brand() string { return i.brand }

// Category returns the extracted category, "" when absent.
func (i *Intent) Category() string { return i.category }

package product

import (
	"strconv"
	"strings"
)

// Metadata keys the ranking rules read. Everything else is passed through
// untouched for scraped or generated attributes.
const (
	KeyBrand    = "brand"
	KeyModel    = "model"
	KeyCategory = "category"
	KeyColor    = "color"
	KeyStorage  = "storage"
	KeyRAM      = "ram"
)

// Metadata is the open, category-dependent attribute map of a product.
// Keys may be absent; a missing key reads as the empty string.
type Metadata map[string]string

// Brand returns the brand attribute.
func (m Metadata) Brand() string { return m[KeyBrand] }

// Model returns the model attribute.
func (m Metadata) Model() string { return m[KeyModel] }

// Category returns the category attribute.
func (m Metadata) Category() string { return m[KeyCategory] }

// Color returns the color attribute.
func (m Metadata) Color() string { return m[KeyColor] }

// Storage returns the raw storage attribute (e.g. "256GB").
func (m Metadata) Storage() string { return m[KeyStorage] }

// StorageGB returns the numeric part of the storage attribute in gigabytes.
// "1TB" reads as 1024. Returns 0 when the attribute is absent or non-numeric.
func (m Metadata) StorageGB() int {
	raw := strings.ToLower(strings.TrimSpace(m[KeyStorage]))
	if raw == "" {
		return 0
	}
	digits := strings.TrimFunc(raw, func(r rune) bool { return r < '0' || r > '9' })
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	if strings.Contains(raw, "tb") {
		return n * 1024
	}
	return n
}

// Clone returns an independent copy of the metadata map.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return Metadata{}
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge returns a copy with the given attributes overlaid.
func (m Metadata) Merge(patch Metadata) Metadata {
	out := m.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

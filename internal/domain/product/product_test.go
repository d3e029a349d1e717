package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkart/prodex/internal/domain"
)

func valid() Params {
	return Params{
		Title:       "Test Phone",
		Description: "A phone for tests",
		Rating:      4.5,
		RatingCount: 200,
		Price:       30000,
		MRP:         35000,
		Stock:       10,
	}
}

func TestNew_Valid(t *testing.T) {
	p, err := New(valid())
	require.NoError(t, err)
	assert.Equal(t, "Test Phone", p.Title())
	assert.True(t, p.InStock())
}

func TestNew_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"missing title", func(p *Params) { p.Title = "" }},
		{"missing description", func(p *Params) { p.Description = "" }},
		{"negative price", func(p *Params) { p.Price = -1 }},
		{"price above mrp", func(p *Params) { p.Price = 40000 }},
		{"rating out of range", func(p *Params) { p.Rating = 5.5 }},
		{"negative stock", func(p *Params) { p.Stock = -1 }},
		{"negative return rate", func(p *Params) { p.ReturnRate = -0.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			tc.mutate(&p)
			_, err := New(p)
			assert.ErrorIs(t, err, domain.ErrInvalidProduct)
		})
	}
}

func TestDiscountPercent(t *testing.T) {
	p, err := New(valid())
	require.NoError(t, err)
	assert.InDelta(t, 14.28, p.DiscountPercent(), 0.01)

	free := Reconstruct(Params{Title: "Sample", Description: "x"})
	assert.Zero(t, free.DiscountPercent())
}

func TestMetadata_StorageGB(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"128GB", 128},
		{"256 GB", 256},
		{"1TB", 1024},
		{"2tb", 2048},
		{"", 0},
		{"expandable", 0},
	}
	for _, tc := range cases {
		m := Metadata{KeyStorage: tc.raw}
		assert.Equal(t, tc.want, m.StorageGB(), "storage %q", tc.raw)
	}
}

func TestMetadata_CloneIsIndependent(t *testing.T) {
	m := Metadata{KeyBrand: "Alpha"}
	c := m.Clone()
	c[KeyBrand] = "Beta"
	assert.Equal(t, "Alpha", m.Brand())

	var nilMeta Metadata
	assert.NotNil(t, nilMeta.Clone())
}

func TestMetadata_MergeOverlays(t *testing.T) {
	m := Metadata{KeyBrand: "Alpha", KeyColor: "Black"}
	out := m.Merge(Metadata{KeyColor: "Red", KeyStorage: "128GB"})

	assert.Equal(t, "Alpha", out.Brand())
	assert.Equal(t, "Red", out.Color())
	assert.Equal(t, "128GB", out.Storage())
	// Receiver untouched.
	assert.Equal(t, "Black", m.Color())
}

func TestReconstruct_ClonesMetadata(t *testing.T) {
	meta := Metadata{KeyColor: "Blue"}
	p := Reconstruct(Params{Title: "Sample", Description: "x", Metadata: meta})
	meta[KeyColor] = "Green"
	assert.Equal(t, "Blue", p.Metadata().Color())
}

package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkart/prodex/internal/domain"
	"github.com/shopkart/prodex/internal/domain/product"
)

func validParams(title string) product.Params {
	return product.Params{
		Title:       title,
		Description: "A test product",
		Rating:      4.0,
		RatingCount: 10,
		Price:       1000,
		MRP:         1500,
		Stock:       5,
	}
}

func TestStore_AddAssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	first, err := s.Add(validParams("First"))
	require.NoError(t, err)
	second, err := s.Add(validParams("Second"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID())
	assert.Equal(t, int64(2), second.ID())
	assert.False(t, first.CreatedAt().IsZero())
}

func TestStore_DuplicateTitleRejected(t *testing.T) {
	s := NewStore()
	_, err := s.Add(validParams("Apple iPhone 15"))
	require.NoError(t, err)

	// Case and spacing differences still collide.
	_, err = s.Add(validParams("  apple   IPHONE 15 "))
	assert.ErrorIs(t, err, domain.ErrDuplicateTitle)
}

func TestStore_AddValidates(t *testing.T) {
	s := NewStore()

	p := validParams("Broken")
	p.Price = 2000 // above MRP
	_, err := s.Add(p)
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	assert.Zero(t, s.Count())
}

func TestStore_BulkAddStopsAtFirstError(t *testing.T) {
	s := NewStore()

	batch := []product.Params{
		validParams("One"),
		validParams("One"), // duplicate
		validParams("Three"),
	}
	added, err := s.BulkAdd(batch)

	assert.ErrorIs(t, err, domain.ErrDuplicateTitle)
	assert.Len(t, added, 1)
	assert.Equal(t, 1, s.Count())
}

func TestStore_GetMissing(t *testing.T) {
	s := NewStore()
	_, err := s.Get(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_UpdatePreservesIdentity(t *testing.T) {
	s := NewStore()
	created, err := s.Add(validParams("Original"))
	require.NoError(t, err)

	upd := validParams("Renamed")
	upd.Price = 900
	updated, err := s.Update(created.ID(), upd)
	require.NoError(t, err)

	assert.Equal(t, created.ID(), updated.ID())
	assert.Equal(t, created.CreatedAt(), updated.CreatedAt())
	assert.Equal(t, "Renamed", updated.Title())

	// The old title is free again.
	_, err = s.Add(validParams("Original"))
	assert.NoError(t, err)
}

func TestStore_UpdateToTakenTitleRejected(t *testing.T) {
	s := NewStore()
	_, err := s.Add(validParams("Taken"))
	require.NoError(t, err)
	second, err := s.Add(validParams("Second"))
	require.NoError(t, err)

	_, err = s.Update(second.ID(), validParams("Taken"))
	assert.ErrorIs(t, err, domain.ErrDuplicateTitle)
}

func TestStore_UpdateKeepingTitleAllowed(t *testing.T) {
	s := NewStore()
	created, err := s.Add(validParams("Same Title"))
	require.NoError(t, err)

	upd := validParams("Same Title")
	upd.Stock = 99
	updated, err := s.Update(created.ID(), upd)
	require.NoError(t, err)
	assert.Equal(t, 99, updated.Stock())
}

func TestStore_UpdateMetadataMerges(t *testing.T) {
	s := NewStore()
	p := validParams("With Meta")
	p.Metadata = product.Metadata{"brand": "Alpha", "color": "Black"}
	created, err := s.Add(p)
	require.NoError(t, err)

	updated, err := s.UpdateMetadata(created.ID(), product.Metadata{"color": "Red", "storage": "128GB"})
	require.NoError(t, err)

	assert.Equal(t, "Alpha", updated.Metadata().Brand())
	assert.Equal(t, "Red", updated.Metadata().Color())
	assert.Equal(t, "128GB", updated.Metadata().Storage())
}

func TestStore_DeleteFreesTitle(t *testing.T) {
	s := NewStore()
	created, err := s.Add(validParams("Ephemeral"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(created.ID()))
	_, err = s.Get(created.ID())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.Add(validParams("Ephemeral"))
	assert.NoError(t, err)
}

func TestStore_AllOrderedByID(t *testing.T) {
	s := NewStore()
	for _, title := range []string{"C", "A", "B"} {
		_, err := s.Add(validParams(title))
		require.NoError(t, err)
	}

	all := s.All()
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID(), all[i].ID())
	}
}

func TestStore_BackdatedCreationKept(t *testing.T) {
	s := NewStore()
	p := validParams("Old Stock")
	p.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	created, err := s.Add(p)
	require.NoError(t, err)
	assert.Equal(t, p.CreatedAt, created.CreatedAt())
}

func TestSeed_LoadsInventory(t *testing.T) {
	s := NewStore()

	n, err := Seed(s)
	require.NoError(t, err)

	assert.Equal(t, len(seedEntries), n)
	assert.Equal(t, n, s.Count())

	// Ages are spread out so recency scoring has signal.
	all := s.All()
	oldest, newest := all[0].CreatedAt(), all[0].CreatedAt()
	for _, p := range all {
		if p.CreatedAt().Before(oldest) {
			oldest = p.CreatedAt()
		}
		if p.CreatedAt().After(newest) {
			newest = p.CreatedAt()
		}
	}
	assert.True(t, oldest.Before(newest))
}

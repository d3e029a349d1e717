package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_AddAndCount(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	n, err := m.AddPurchase(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = m.AddPurchase(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := m.PurchaseCount(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemory_UnknownUserCountsZero(t *testing.T) {
	m := NewMemory()

	count, err := m.PurchaseCount(context.Background(), "ghost", 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemory_UserPurchasesIsACopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_, err := m.AddPurchase(ctx, "u1", 10)
	require.NoError(t, err)

	got, err := m.UserPurchases(ctx, "u1")
	require.NoError(t, err)
	got[10] = 99

	count, err := m.PurchaseCount(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemory_UsersAreIsolated(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_, err := m.AddPurchase(ctx, "u1", 10)
	require.NoError(t, err)

	count, err := m.PurchaseCount(ctx, "u2", 10)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemory_Clear(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_, err := m.AddPurchase(ctx, "u1", 10)
	require.NoError(t, err)

	require.NoError(t, m.Clear(ctx, "u1"))

	count, err := m.PurchaseCount(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Zero(t, count)
}

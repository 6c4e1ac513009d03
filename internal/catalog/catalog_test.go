package catalog

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/breinnndel/storefront/internal/shop"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(zap.NewNop())
	require.NoError(t, err)
	return c
}

func mustCreate(t *testing.T, c *Catalog, name, price string, stock int) Product {
	t.Helper()
	p, err := c.Create(name, decimal.RequireFromString(price), stock, Strict)
	require.NoError(t, err)
	return p
}

func TestCreate_AllocatesMonotonicIDs(t *testing.T) {
	c := newCatalog(t)

	id, err := c.NextID()
	require.NoError(t, err)
	assert.Equal(t, 1, id, "empty catalog starts at 1")

	a := mustCreate(t, c, "Budai Chocolate", "2500.00", 5)
	b := mustCreate(t, c, "Mouse", "350.00", 10)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	require.NoError(t, c.Delete(a.ID))
	next, err := c.NextID()
	require.NoError(t, err)
	assert.Equal(t, 3, next, "next id stays above every existing id")
}

func TestCreate_IDsStayAboveExistingAfterDeletingMax(t *testing.T) {
	c := newCatalog(t)
	for i := 0; i < 5; i++ {
		mustCreate(t, c, "Item", "1", 1)
	}
	require.NoError(t, c.Delete(5))

	p := mustCreate(t, c, "Replacement", "1", 1)
	assert.Equal(t, 5, p.ID)

	products, err := c.List()
	require.NoError(t, err)
	for _, other := range products[:len(products)-1] {
		assert.Less(t, other.ID, p.ID)
	}
}

func TestCreate_RejectsBlankName(t *testing.T) {
	c := newCatalog(t)
	_, err := c.Create("  ", decimal.NewFromInt(1), 1, Clamp)
	require.ErrorIs(t, err, shop.ErrInvalidInput)

	products, err := c.List()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCreate_ClampPolicyZeroesPriceAndStock(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c, err := New(zap.New(core))
	require.NoError(t, err)

	p, err := c.Create("Hopia", decimal.NewFromInt(-56), 3, Clamp)
	require.NoError(t, err)
	assert.True(t, p.Price.IsZero())
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, 1, logs.FilterMessage("invalid price or stock, clamped to zero").Len())
}

func TestCreate_StrictPolicyRejectsNegativeStock(t *testing.T) {
	c := newCatalog(t)
	_, err := c.Create("Hopia", decimal.NewFromInt(56), -1, Strict)
	require.ErrorIs(t, err, shop.ErrInvalidInput)
}

func TestList_ReturnsInsertionOrderSnapshots(t *testing.T) {
	c := newCatalog(t)
	names := []string{"Budai Chocolate", "Mouse", "Keyboard", "Hopia", "Tube Top",
		"Mouse Pad", "DJ Pad", "Headphones", "DripNBites", "Konu Mini Crunch", "Extra"}
	for _, n := range names {
		mustCreate(t, c, n, "1", 1)
	}

	products, err := c.List()
	require.NoError(t, err)
	require.Len(t, products, len(names))
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, names[i], p.Name)
	}

	products[0].Stock = 999
	fresh, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Stock, "snapshots must not alias stored products")
}

func TestDelete_UnknownProduct(t *testing.T) {
	c := newCatalog(t)
	require.ErrorIs(t, c.Delete(42), shop.ErrNotFound)
}

func TestReduceStock(t *testing.T) {
	c := newCatalog(t)
	mustCreate(t, c, "Mouse", "350.00", 10)

	require.NoError(t, c.ReduceStock(1, 3))
	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock)

	err = c.ReduceStock(1, 8)
	require.ErrorIs(t, err, shop.ErrInsufficientStock)
	p, err = c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock, "failed reservation must not mutate")

	require.NoError(t, c.ReduceStock(1, 7))
	p, err = c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)
}

func TestReduceStock_RejectsNonPositive(t *testing.T) {
	c := newCatalog(t)
	mustCreate(t, c, "Mouse", "350.00", 10)
	require.ErrorIs(t, c.ReduceStock(1, 0), shop.ErrInvalidQuantity)
	require.ErrorIs(t, c.ReduceStock(1, -2), shop.ErrInvalidQuantity)
}

func TestReduceStock_UnknownProduct(t *testing.T) {
	c := newCatalog(t)
	require.ErrorIs(t, c.ReduceStock(9, 1), shop.ErrNotFound)
}

func TestRelease_ReturnsStock(t *testing.T) {
	c := newCatalog(t)
	mustCreate(t, c, "Mouse", "350.00", 10)
	require.NoError(t, c.ReduceStock(1, 4))
	require.NoError(t, c.Release(1, 4))

	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
}

func TestRelease_RejectsOverflow(t *testing.T) {
	c := newCatalog(t)
	mustCreate(t, c, "Mouse", "350.00", math.MaxInt-1)

	err := c.Release(1, 2)
	require.ErrorIs(t, err, shop.ErrInvalidQuantity)
	assert.Contains(t, err.Error(), "cannot take 2 more units")

	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-1, p.Stock)

	require.NoError(t, c.Release(1, 1))
	p, err = c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, p.Stock)
}

func TestSwap(t *testing.T) {
	c := newCatalog(t)
	mustCreate(t, c, "Mouse", "350.00", 10)
	require.NoError(t, c.ReduceStock(1, 3))

	require.NoError(t, c.Swap(1, 3, 5))
	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)

	require.NoError(t, c.Swap(1, 5, 10), "own reservation counts as available")
	p, err = c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	require.ErrorIs(t, c.Swap(1, 10, 11), shop.ErrInsufficientStock)
	require.ErrorIs(t, c.Swap(1, 10, 0), shop.ErrInvalidQuantity)
	p, err = c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock, "failed swap must not mutate")
}

func TestRestock(t *testing.T) {
	c := newCatalog(t)
	mustCreate(t, c, "DripNBites", "130.00", 0)

	p, err := c.Restock(1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Stock)

	_, err = c.Restock(1, -3)
	require.ErrorIs(t, err, shop.ErrInvalidQuantity)
	_, err = c.Restock(2, 1)
	require.ErrorIs(t, err, shop.ErrNotFound)
}

func TestRestock_RejectsOverflow(t *testing.T) {
	c := newCatalog(t)
	mustCreate(t, c, "Keyboard", "800.00", 6)

	_, err := c.Restock(1, math.MaxInt)
	require.ErrorIs(t, err, shop.ErrInvalidQuantity)

	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Stock, "rejected restock must not wrap stock")
	require.ErrorIs(t, c.Swap(1, math.MaxInt, 1), shop.ErrInvalidQuantity)
	p, err = c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Stock)
}

func TestSetPrice(t *testing.T) {
	c := newCatalog(t)
	mustCreate(t, c, "Keyboard", "800.00", 6)

	p, err := c.SetPrice(1, decimal.RequireFromString("750.50"))
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("750.50")))

	_, err = c.SetPrice(1, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, shop.ErrInvalidInput)
	p, err = c.Get(1)
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("750.50")), "negative price is a no-op")
}

func TestNoOversell_RandomisedSequence(t *testing.T) {
	c := newCatalog(t)
	mustCreate(t, c, "DJ Pad", "7550.00", 3)

	reserved := 0
	requests := []int{2, 2, 1, 1, 5, 3, 1}
	for _, qty := range requests {
		if err := c.ReduceStock(1, qty); err == nil {
			reserved += qty
		}
		p, err := c.Get(1)
		require.NoError(t, err)
		require.GreaterOrEqual(t, p.Stock, 0)
		require.Equal(t, 3-reserved, p.Stock)
	}
}

func TestNewProduct_PolicyString(t *testing.T) {
	assert.Equal(t, "clamp", Clamp.String())
	assert.Equal(t, "strict", Strict.String())
	assert.Equal(t, "unknown", Policy(7).String())
}

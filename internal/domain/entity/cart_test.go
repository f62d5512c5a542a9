package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(name string, priceCents int64) Product {
	return Product{
		ID:       uuid.New(),
		Name:     name,
		Barcode:  "7891000100001",
		Price:    priceCents,
		Category: "Grocery",
		Stock:    10,
		Unit:     enum.UnitEach,
	}
}

func TestCartAddItemMergesSameProduct(t *testing.T) {
	cart := NewCart()
	rice := testProduct("Rice 5kg", 2590)

	cart.AddItem(rice, 1)
	cart.AddItem(rice, 2)

	require.Equal(t, 1, cart.Len())
	lines := cart.Lines()
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, int64(3*2590), cart.Total())
}

func TestCartAddItemIgnoresNonPositiveQuantity(t *testing.T) {
	cart := NewCart()
	rice := testProduct("Rice 5kg", 2590)

	cart.AddItem(rice, 0)
	cart.AddItem(rice, -3)

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Total())
}

func TestCartTotalSumsLineSubtotals(t *testing.T) {
	cart := NewCart()
	rice := testProduct("Rice 5kg", 2590)
	milk := testProduct("Milk 1L", 549)

	cart.AddItem(rice, 2)
	cart.AddItem(milk, 3)

	assert.Equal(t, int64(2*2590+3*549), cart.Total())
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := NewCart()
	rice := testProduct("Rice 5kg", 2590)
	cart.AddItem(rice, 2)

	cart.UpdateQuantity(rice.ID, 5)
	assert.Equal(t, int64(5*2590), cart.Total())

	// Zero removes the line
	cart.UpdateQuantity(rice.ID, 0)
	assert.True(t, cart.IsEmpty())
}

func TestCartUpdateQuantityUnknownProductIsNoOp(t *testing.T) {
	cart := NewCart()
	rice := testProduct("Rice 5kg", 2590)
	cart.AddItem(rice, 2)

	cart.UpdateQuantity(uuid.New(), 7)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Lines()[0].Quantity)
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart()
	rice := testProduct("Rice 5kg", 2590)
	milk := testProduct("Milk 1L", 549)
	cart.AddItem(rice, 1)
	cart.AddItem(milk, 1)

	cart.RemoveItem(rice.ID)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, milk.ID, cart.Lines()[0].Product.ID)
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("Rice 5kg", 2590), 2)
	cart.AddItem(testProduct("Milk 1L", 549), 1)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Total())
}

func TestCartSnapshotIsImmutable(t *testing.T) {
	cart := NewCart()
	rice := testProduct("Rice 5kg", 2590)
	cart.AddItem(rice, 2)

	snapshot := cart.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, int64(2*2590), snapshot[0].Subtotal)

	// Mutating the cart afterwards must not change the snapshot.
	cart.UpdateQuantity(rice.ID, 9)
	cart.Clear()

	assert.Equal(t, 2, snapshot[0].Quantity)
	assert.Equal(t, int64(2*2590), snapshot[0].Subtotal)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id, name string, price float64) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		ImageURL: "https://images.example.com/" + id + ".jpg",
		InStock:  true,
	}
}

func TestCart_AddItem_NewLine(t *testing.T) {
	cart := &Cart{}
	p := testProduct("p1", "Kente Tote Bag", 25.00)

	cart.AddItem(p)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "p1", cart.Lines[0].ProductID)
	assert.Equal(t, "Kente Tote Bag", cart.Lines[0].Name)
	assert.Equal(t, 25.00, cart.Lines[0].Price)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCart_AddItem_RepeatedAddsIncrement(t *testing.T) {
	cart := &Cart{}
	p := testProduct("p1", "Kente Tote Bag", 25.00)

	for i := 0; i < 5; i++ {
		cart.AddItem(p)
	}

	// One line per product, quantity equal to the add count
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestCart_AddItem_SnapshotsProductFields(t *testing.T) {
	cart := &Cart{}
	p := testProduct("p1", "Kente Tote Bag", 25.00)

	cart.AddItem(p)

	// Later catalog changes must not reach the cart line
	p.Name = "Renamed"
	p.Price = 999.00

	assert.Equal(t, "Kente Tote Bag", cart.Lines[0].Name)
	assert.Equal(t, 25.00, cart.Lines[0].Price)
}

func TestCart_AddItem_PreservesInsertionOrder(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "First", 10.00))
	cart.AddItem(testProduct("p2", "Second", 20.00))
	cart.AddItem(testProduct("p3", "Third", 30.00))
	cart.AddItem(testProduct("p2", "Second", 20.00))

	require.Len(t, cart.Lines, 3)
	assert.Equal(t, "p1", cart.Lines[0].ProductID)
	assert.Equal(t, "p2", cart.Lines[1].ProductID)
	assert.Equal(t, "p3", cart.Lines[2].ProductID)
	assert.Equal(t, 2, cart.Lines[1].Quantity)
}

func TestCart_UpdateQuantity_SetsExactValue(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "First", 10.00))
	cart.AddItem(testProduct("p1", "First", 10.00))

	cart.UpdateQuantity("p1", 7)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 7, cart.Lines[0].Quantity)
}

func TestCart_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "First", 10.00))

	cart.UpdateQuantity("p1", 0)

	assert.Empty(t, cart.Lines)
}

func TestCart_UpdateQuantity_NegativeRemovesLine(t *testing.T) {
	for _, quantity := range []int{-1, -5, -100} {
		cart := &Cart{}
		cart.AddItem(testProduct("p1", "First", 10.00))

		cart.UpdateQuantity("p1", quantity)

		assert.Empty(t, cart.Lines, "quantity %d should remove the line", quantity)
	}
}

func TestCart_UpdateQuantity_UnknownProductIsNoOp(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "First", 10.00))

	cart.UpdateQuantity("missing", 3)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "First", 10.00))
	cart.AddItem(testProduct("p2", "Second", 20.00))

	cart.RemoveItem("p1")

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "p2", cart.Lines[0].ProductID)

	// Removing an absent product is a no-op
	cart.RemoveItem("p1")
	assert.Len(t, cart.Lines, 1)
}

func TestCart_Clear_Idempotent(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "First", 10.00))

	cart.Clear()
	assert.True(t, cart.IsEmpty())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCart_Totals_EmptyCart(t *testing.T) {
	cart := &Cart{}

	assert.Equal(t, 0.0, cart.TotalAmount())
	assert.Equal(t, 0, cart.TotalItemCount())
}

func TestCart_Totals_Scenario(t *testing.T) {
	// cart = [{p1, 25.00, qty 2}, {p2, 10.00, qty 1}]
	cart := &Cart{}
	p1 := testProduct("p1", "First", 25.00)
	p2 := testProduct("p2", "Second", 10.00)
	cart.AddItem(p1)
	cart.AddItem(p1)
	cart.AddItem(p2)

	assert.InDelta(t, 60.00, cart.TotalAmount(), 1e-9)
	assert.Equal(t, 3, cart.TotalItemCount())
}

func TestCart_Clone_Independent(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct("p1", "First", 10.00))

	clone := cart.Clone()
	clone.UpdateQuantity("p1", 9)

	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, 9, clone.Lines[0].Quantity)
}

func TestCartLine_Subtotal(t *testing.T) {
	line := CartLine{ProductID: "p1", Price: 25.00, Quantity: 2}
	assert.InDelta(t, 50.00, line.Subtotal(), 1e-9)
}

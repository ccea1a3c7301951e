package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// fakeLookup serves products from a fixed map; unknown ids resolve to nil
// the way a deleted product does.
type fakeLookup struct {
	products map[uint]*catalog.Product
}

func (f *fakeLookup) ProductForOrder(id uint) (*catalog.Product, error) {
	return f.products[id], nil
}

func pizzeriaLookup() *fakeLookup {
	return &fakeLookup{products: map[uint]*catalog.Product{
		1: {ID: 1, Name: "Pizza Margherita", Price: 149},
		2: {ID: 2, Name: "Pizza Salami", Price: 169},
		3: {ID: 3, Name: "Coca-Cola 0.5l", Price: 35},
	}}
}

func TestAssemblePickupTotal(t *testing.T) {
	a := NewAssembler(pizzeriaLookup(), 29)

	draft, err := a.Assemble(cart.Cart{1: 2, 2: 1}, ShippingPickup, "Main St 5")
	require.NoError(t, err)

	assert.Equal(t, int64(2*149+169), draft.Subtotal)
	assert.Equal(t, int64(0), draft.Surcharge)
	assert.Equal(t, int64(467), draft.TotalPrice)
}

func TestAssembleDeliverySurchargeAndAddress(t *testing.T) {
	a := NewAssembler(pizzeriaLookup(), 29)

	draft, err := a.Assemble(cart.Cart{1: 2, 2: 1}, ShippingDelivery, "Main St 5")
	require.NoError(t, err)

	assert.Equal(t, int64(496), draft.TotalPrice)
	assert.Equal(t, int64(29), draft.Surcharge)
	assert.Equal(t, "Main St 5", draft.Address)
}

func TestAssemblePickupNormalizesAddress(t *testing.T) {
	a := NewAssembler(pizzeriaLookup(), 29)

	draft, err := a.Assemble(cart.Cart{1: 1}, ShippingPickup, "this should be ignored")
	require.NoError(t, err)

	assert.Equal(t, PickupAddress, draft.Address)
}

func TestAssembleSkipsGhostLines(t *testing.T) {
	a := NewAssembler(pizzeriaLookup(), 29)

	draft, err := a.Assemble(cart.Cart{1: 2, 999: 4}, ShippingPickup, "")
	require.NoError(t, err)

	require.Len(t, draft.Lines, 1)
	assert.Equal(t, uint(1), draft.Lines[0].ProductID)
	assert.Equal(t, int64(298), draft.TotalPrice)
	assert.NotContains(t, draft.ItemsSummary(), "999")
}

func TestAssembleAllGhostsYieldsEmptyDraft(t *testing.T) {
	a := NewAssembler(&fakeLookup{products: map[uint]*catalog.Product{}}, 29)

	draft, err := a.Assemble(cart.Cart{7: 1, 8: 2}, ShippingDelivery, "somewhere")
	require.NoError(t, err)

	assert.True(t, draft.IsEmpty())
	assert.Equal(t, int64(0), draft.Subtotal)
}

func TestAssembleSummaryFormat(t *testing.T) {
	a := NewAssembler(pizzeriaLookup(), 29)

	draft, err := a.Assemble(cart.Cart{3: 1, 1: 2}, ShippingPickup, "")
	require.NoError(t, err)

	// Lines come out sorted by product id.
	assert.Equal(t, "Pizza Margherita (2x), Coca-Cola 0.5l (1x)", draft.ItemsSummary())
}

func TestAssembleSnapshotsUnitPrice(t *testing.T) {
	lookup := pizzeriaLookup()
	a := NewAssembler(lookup, 29)

	draft, err := a.Assemble(cart.Cart{2: 3}, ShippingPickup, "")
	require.NoError(t, err)

	// Mutating the catalog afterwards must not touch the draft.
	lookup.products[2].Price = 1
	assert.Equal(t, int64(169), draft.Lines[0].UnitPrice)
	assert.Equal(t, int64(3*169), draft.Lines[0].TotalPrice)
}

func TestSummaryOfNoLines(t *testing.T) {
	assert.Equal(t, "", Summary(nil))
}

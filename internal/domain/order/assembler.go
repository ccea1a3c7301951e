// internal/domain/order/assembler.go
package order

import (
	"fmt"
	"sort"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// ProductLookup is the read-only slice of the catalog the assembler needs.
// A (nil, nil) result means the product no longer exists.
type ProductLookup interface {
	ProductForOrder(id uint) (*catalog.Product, error)
}

// Draft is the resolved, priced result of assembling a cart against the
// live catalog, ready for persistence.
type Draft struct {
	Lines          []OrderLine
	Subtotal       int64
	Surcharge      int64
	TotalPrice     int64
	ShippingMethod string
	Address        string
}

// ItemsSummary renders the draft's lines as the order's item string.
func (d *Draft) ItemsSummary() string {
	return Summary(d.Lines)
}

// IsEmpty reports whether no cart line survived assembly. An empty draft
// must never become an order.
func (d *Draft) IsEmpty() bool {
	return len(d.Lines) == 0
}

// Assembler turns a cart into an order draft by snapshotting live catalog
// prices and applying the shipping policy.
type Assembler struct {
	lookup            ProductLookup
	deliverySurcharge int64
}

// NewAssembler creates an assembler over the given catalog lookup.
func NewAssembler(lookup ProductLookup, deliverySurcharge int64) *Assembler {
	return &Assembler{
		lookup:            lookup,
		deliverySurcharge: deliverySurcharge,
	}
}

// Assemble resolves every cart line against the catalog. Lines whose
// product has disappeared are silently skipped: they contribute nothing to
// the total and do not appear in the summary. The delivery surcharge is
// added only for the delivery method; pickup normalizes the address to the
// fixed sentinel. Lines are ordered by product ID so the summary is stable
// within a request.
func (a *Assembler) Assemble(c cart.Cart, shippingMethod, address string) (*Draft, error) {
	ids := make([]uint, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var lines []OrderLine
	var subtotal int64
	for _, id := range ids {
		product, err := a.lookup.ProductForOrder(id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %d: %w", id, err)
		}
		if product == nil {
			// Ghost line: the product was deleted after being carted.
			continue
		}

		qty := c[id]
		lineTotal := product.Price * int64(qty)
		lines = append(lines, OrderLine{
			ProductID:  product.ID,
			Name:       product.Name,
			UnitPrice:  product.Price,
			Quantity:   qty,
			TotalPrice: lineTotal,
		})
		subtotal += lineTotal
	}

	var surcharge int64
	if shippingMethod == ShippingDelivery {
		surcharge = a.deliverySurcharge
	} else {
		address = PickupAddress
	}

	return &Draft{
		Lines:          lines,
		Subtotal:       subtotal,
		Surcharge:      surcharge,
		TotalPrice:     subtotal + surcharge,
		ShippingMethod: shippingMethod,
		Address:        address,
	}, nil
}

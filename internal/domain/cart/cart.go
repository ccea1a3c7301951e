// internal/domain/cart/cart.go
package cart

import "encoding/json"

// Cart maps a product ID to the desired quantity. It is owned entirely by
// the client: the server rebuilds it from the cookie token on every request
// and writes it back after every mutation. Every stored quantity is >= 1.
type Cart map[uint]int

// Decode parses a cart token into a Cart. A missing or malformed token is
// treated as an empty cart; decoding never fails the request. Entries with a
// non-positive quantity are dropped during decoding so the invariant holds
// even for hand-crafted tokens.
func Decode(token string) Cart {
	cart := Cart{}
	if token == "" {
		return cart
	}

	var raw map[uint]int
	if err := json.Unmarshal([]byte(token), &raw); err != nil {
		return cart
	}

	for id, qty := range raw {
		if qty > 0 {
			cart[id] = qty
		}
	}
	return cart
}

// Encode serializes the cart into the token stored on the client.
// Decode(Encode(c)) == c for any valid cart.
func Encode(cart Cart) string {
	if len(cart) == 0 {
		return "{}"
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// IsEmpty reports whether the cart holds no items.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// Count returns the total quantity across all entries, used for the
// cart badge on browse pages.
func (c Cart) Count() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for id, qty := range c {
		out[id] = qty
	}
	return out
}

// Add increments the quantity for id, creating the entry at 1 when absent.
func Add(c Cart, id uint) Cart {
	out := c.Clone()
	out[id]++
	return out
}

// Increment bumps the quantity of an existing entry. Unknown ids are a
// no-op: increment can never create an entry.
func Increment(c Cart, id uint) Cart {
	if _, ok := c[id]; !ok {
		return c.Clone()
	}
	out := c.Clone()
	out[id]++
	return out
}

// Decrement lowers the quantity for id. When the result would drop to zero
// or below, the entry is removed entirely; the cart never carries a
// non-positive quantity.
func Decrement(c Cart, id uint) Cart {
	out := c.Clone()
	if qty, ok := out[id]; ok {
		if qty <= 1 {
			delete(out, id)
		} else {
			out[id] = qty - 1
		}
	}
	return out
}

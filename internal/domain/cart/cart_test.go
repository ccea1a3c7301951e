package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Cart{
		{},
		{1: 1},
		{1: 2, 7: 1, 42: 9},
	}

	for _, c := range cases {
		decoded := Decode(Encode(c))
		assert.Equal(t, c, decoded)
	}
}

func TestDecodeGarbageYieldsEmptyCart(t *testing.T) {
	for _, token := range []string{
		"",
		"not valid",
		"[1,2,3]",
		`{"abc":`,
		`{"1":"two"}`,
	} {
		assert.Equal(t, Cart{}, Decode(token), "token %q", token)
	}
}

func TestDecodeDropsNonPositiveQuantities(t *testing.T) {
	c := Decode(`{"1":2,"2":0,"3":-5}`)
	assert.Equal(t, Cart{1: 2}, c)
}

func TestAddCreatesAndIncrements(t *testing.T) {
	c := Cart{}
	c = Add(c, 5)
	assert.Equal(t, 1, c[5])

	c = Add(c, 5)
	assert.Equal(t, 2, c[5])
}

func TestIncrementIgnoresUnknownID(t *testing.T) {
	c := Cart{1: 1}
	out := Increment(c, 99)
	assert.Equal(t, Cart{1: 1}, out)

	out = Increment(out, 1)
	assert.Equal(t, Cart{1: 2}, out)
}

func TestDecrementRemovesEntryAtZero(t *testing.T) {
	c := Cart{1: 2, 2: 1}

	c = Decrement(c, 1)
	assert.Equal(t, 1, c[1])

	c = Decrement(c, 2)
	_, ok := c[2]
	assert.False(t, ok, "entry decremented to zero must be removed")

	// Decrementing an absent id is a no-op.
	c = Decrement(c, 2)
	assert.Equal(t, Cart{1: 1}, c)
}

func TestQuantitiesStayPositiveUnderAnySequence(t *testing.T) {
	c := Cart{}
	ops := []struct {
		op func(Cart, uint) Cart
		id uint
	}{
		{Add, 1}, {Add, 1}, {Decrement, 1}, {Decrement, 1}, {Decrement, 1},
		{Increment, 2}, {Add, 2}, {Decrement, 2},
		{Add, 3}, {Increment, 3}, {Increment, 3}, {Decrement, 3},
	}

	for _, step := range ops {
		c = step.op(c, step.id)
		for id, qty := range c {
			assert.GreaterOrEqual(t, qty, 1, "id %d", id)
		}
	}

	assert.Equal(t, Cart{3: 2}, c)
}

func TestOperationsDoNotMutateInput(t *testing.T) {
	orig := Cart{1: 1}
	_ = Add(orig, 1)
	_ = Increment(orig, 1)
	_ = Decrement(orig, 1)
	assert.Equal(t, Cart{1: 1}, orig)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Cart{}.Count())
	assert.Equal(t, 4, Cart{1: 3, 9: 1}.Count())
}

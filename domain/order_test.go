package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioOrder(t *testing.T) *Order {
	t.Helper()
	book, err := NewBook("The Great Gatsby", dec("10.99"), 180)
	require.NoError(t, err)
	phone, err := NewElectronics("Smartphone", dec("699.99"), 128)
	require.NoError(t, err)
	shirt, err := NewClothing("T-shirt", dec("19.99"), "M")
	require.NoError(t, err)

	o := NewOrder(1)
	o.AddProduct(book)
	o.AddProduct(phone)
	o.AddProduct(shirt)
	return o
}

func TestOrder_TotalCost(t *testing.T) {
	t.Run("empty order", func(t *testing.T) {
		o := NewOrder(7)
		assert.Equal(t, 7, o.Number())
		assert.True(t, o.TotalCost().IsZero())
		assert.Empty(t, o.Products())
	})

	t.Run("scenario total", func(t *testing.T) {
		o := scenarioOrder(t)
		assert.True(t, dec("730.97").Equal(o.TotalCost()), "got %s", o.TotalCost())
	})

	t.Run("recomputed after each addition", func(t *testing.T) {
		o := NewOrder(2)
		running := dec("0")
		for _, price := range []string{"1.10", "2.20", "3.30"} {
			b, err := NewBook("b"+price, dec(price), 1)
			require.NoError(t, err)
			o.AddProduct(b)
			running = running.Add(dec(price))
			assert.True(t, running.Equal(o.TotalCost()))
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		o := scenarioOrder(t)
		first := o.TotalCost()
		for i := 0; i < 5; i++ {
			assert.True(t, first.Equal(o.TotalCost()))
		}
	})
}

func TestOrder_AddProduct(t *testing.T) {
	o := NewOrder(1)
	b, err := NewBook("Dup", dec("5"), 10)
	require.NoError(t, err)

	o.AddProduct(b)
	o.AddProduct(b)
	o.AddProduct(nil)

	products := o.Products()
	require.Len(t, products, 2, "duplicates are kept and nil is ignored")
	assert.True(t, dec("10").Equal(o.TotalCost()))

	// the returned slice is a copy
	products[0] = nil
	assert.NotNil(t, o.Products()[0])
}

func TestOrder_ChangeOrderStatus(t *testing.T) {
	t.Run("no listeners", func(t *testing.T) {
		assert.NoError(t, NewOrder(1).ChangeOrderStatus("X"))
	})

	t.Run("registration order", func(t *testing.T) {
		o := NewOrder(1)
		var calls []string
		o.RegisterStatusListener(func(s string) error {
			calls = append(calls, "L1:"+s)
			return nil
		})
		o.RegisterStatusListener(nil)
		o.RegisterStatusListener(func(s string) error {
			calls = append(calls, "L2:"+s)
			return nil
		})

		require.NoError(t, o.ChangeOrderStatus("X"))
		assert.Equal(t, []string{"L1:X", "L2:X"}, calls)
	})

	t.Run("fail fast", func(t *testing.T) {
		o := NewOrder(1)
		boom := errors.New("boom")
		var calls []string
		o.RegisterStatusListener(func(s string) error {
			calls = append(calls, "L1")
			return nil
		})
		o.RegisterStatusListener(func(s string) error {
			calls = append(calls, "L2")
			return boom
		})
		o.RegisterStatusListener(func(s string) error {
			calls = append(calls, "L3")
			return nil
		})

		err := o.ChangeOrderStatus(StatusProcessed)
		require.ErrorIs(t, err, boom)

		var le *ListenerError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, 1, le.Index)
		assert.Equal(t, StatusProcessed, le.Status)
		assert.Equal(t, []string{"L1", "L2"}, calls)
	})

	t.Run("does not touch products", func(t *testing.T) {
		o := scenarioOrder(t)
		o.RegisterStatusListener(func(string) error { return nil })
		require.NoError(t, o.ChangeOrderStatus(StatusProcessed))
		assert.Len(t, o.Products(), 3)
	})
}

package order_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/menu"
	"eats/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []menu.Item {
	t.Helper()

	burger, err := menu.NewItem("Burger", "Beef burger with fries", 5.0, "Street Food", "burger.png")
	require.NoError(t, err)
	salad, err := menu.NewItem("Greek Salad", "Tomatoes, cucumber, feta", 4.5, "Salads", "salad.jpg")
	require.NoError(t, err)
	return []menu.Item{burger, salad}
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create pending order with derived total", func(t *testing.T) {
		o, err := order.NewOrder(validID, testItems(t), "Athens", "no onions")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.InDelta(t, 9.5, o.TotalAmount(), 1e-9)
		assert.Equal(t, "Athens", o.DeliveryAddress())
		assert.Equal(t, "no onions", o.CustomerNote())
		assert.Equal(t, order.Pending, o.Status())
		assert.WithinDuration(t, time.Now(), o.PlacedAt(), time.Minute)
	})

	t.Run("should allow empty cart with zero total", func(t *testing.T) {
		o, err := order.NewOrder(validID, nil, "Athens", "")

		require.NoError(t, err)
		assert.Zero(t, o.TotalAmount())
		assert.Empty(t, o.Items())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, testItems(t), "Athens", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with blank address", func(t *testing.T) {
		o, err := order.NewOrder(validID, testItems(t), "   ", "")

		require.ErrorIs(t, err, order.ErrDeliveryAddressIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with zero-value item", func(t *testing.T) {
		var item menu.Item

		o, err := order.NewOrder(validID, []menu.Item{item}, "Athens", "")

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("items accessor returns a copy", func(t *testing.T) {
		items := testItems(t)
		o, err := order.NewOrder(validID, items, "Athens", "")
		require.NoError(t, err)

		got := o.Items()
		require.Len(t, got, 2)
		got[0] = menu.Item{}
		assert.Equal(t, "Burger", o.Items()[0].Name())
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("pending order confirms", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), testItems(t), "Athens", "")
		require.NoError(t, err)

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("confirmed order cannot confirm again", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), testItems(t), "Athens", "")
		require.NoError(t, o.Confirm())

		err := o.Confirm()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to confirm")
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("canceled order cannot confirm", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), testItems(t), "Athens", "")
		require.NoError(t, o.Cancel())

		require.Error(t, o.Confirm())
		assert.Equal(t, order.Canceled, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order cancels", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), testItems(t), "Athens", "")

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("confirmed order cannot cancel", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), testItems(t), "Athens", "")
		require.NoError(t, o.Confirm())

		err := o.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		o := &order.Order{}

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

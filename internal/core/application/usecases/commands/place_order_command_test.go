package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/menu"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	method := payment.NewMethod("John Doe", "4111111111111111", "12/30", "123")
	items := menu.DefaultCatalog()

	t.Run("should create command with valid input", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(items, method, "Athens", "no onions")
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Items(), len(items))
		assert.Equal(t, "Athens", cmd.Address())
		assert.Equal(t, "no onions", cmd.Note())
	})

	t.Run("should allow empty cart", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(nil, method, "Athens", "")
		require.NoError(t, err)
		assert.Empty(t, cmd.Items())
	})

	t.Run("should fail when payment method is missing", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(items, nil, "Athens", "")
		require.ErrorIs(t, err, commands.ErrPaymentMethodIsRequired)
	})

	t.Run("should fail when address is blank", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(items, method, "   ", "")
		require.ErrorIs(t, err, order.ErrDeliveryAddressIsRequired)
	})

	t.Run("should check payment method before address", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(items, nil, "", "")
		require.ErrorIs(t, err, commands.ErrPaymentMethodIsRequired)
	})

	t.Run("should copy items so later mutation does not leak in", func(t *testing.T) {
		source := []menu.Item{items[0]}
		cmd, err := commands.NewPlaceOrderCommand(source, method, "Athens", "")
		require.NoError(t, err)
		source[0] = items[1]
		assert.Equal(t, items[0].Name(), cmd.Items()[0].Name())
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}

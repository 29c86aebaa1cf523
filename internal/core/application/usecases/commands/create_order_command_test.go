package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commandDeliveryAddress(t *testing.T) kernel.Address {
	t.Helper()
	coords, err := kernel.NewCoordinates(-23.5505, -46.6333)
	require.NoError(t, err)
	address, err := kernel.NewAddress("Avenida Paulista", "1000", "Sao Paulo", "SP", "BR", "01310-100", coords)
	require.NoError(t, err)
	return address
}

func TestNewCreateOrderCommand(t *testing.T) {
	address := commandDeliveryAddress(t)
	items := []commands.ItemInput{{ItemID: "SKU-1", Quantity: 2}}

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("customer-42", items, address)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "customer-42", cmd.CustomerID())
		assert.Equal(t, items, cmd.Items())
	})

	t.Run("missing customer id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", items, address)
		require.ErrorIs(t, err, commands.ErrCustomerIDIsRequired)
	})

	t.Run("no items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("customer-42", nil, address)
		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("blank item id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("customer-42",
			[]commands.ItemInput{{ItemID: "", Quantity: 1}}, address)
		require.ErrorIs(t, err, commands.ErrItemIDIsRequired)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("customer-42",
			[]commands.ItemInput{{ItemID: "SKU-1", Quantity: 0}}, address)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("unconstructed address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("customer-42", items, kernel.Address{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

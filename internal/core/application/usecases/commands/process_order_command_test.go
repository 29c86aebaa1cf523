package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		id := kernel.NewOrderID()
		cmd, err := commands.NewProcessOrderCommand(id)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
	})

	t.Run("unconstructed order id", func(t *testing.T) {
		_, err := commands.NewProcessOrderCommand(kernel.OrderID{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.ProcessOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrProcessOrderCommandIsNotConstructed)
	})
}

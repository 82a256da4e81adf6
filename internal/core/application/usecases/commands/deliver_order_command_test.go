package commands_test

import (
	"testing"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliverOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeliverOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.NoError(t, cmd.Validate())
}

func TestNewDeliverOrderCommand_InvalidOrderID(t *testing.T) {
	var invalidID kernel.UUID // zero value
	_, err := commands.NewDeliverOrderCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDeliverOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.DeliverOrderCommand // zero value, not constructed via constructor
	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeliverOrderCommandIsNotConstructed)
}

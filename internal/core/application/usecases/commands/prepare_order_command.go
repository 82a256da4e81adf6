package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrPrepareOrderCommandIsNotConstructed = errors.New(
	"PrepareOrderCommand must be created via NewPrepareOrderCommand constructor",
)

// PrepareOrderCommand represents a barista starting to make a paid order.
type PrepareOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPrepareOrderCommand creates a command to start preparing an order.
// Validates that the order ID is valid.
func NewPrepareOrderCommand(orderID kernel.UUID) (PrepareOrderCommand, error) {
	orderCommand := PrepareOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setOrderID(orderID); err != nil {
		return PrepareOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPrepareOrderCommandIsNotConstructed if validation fails.
func (c PrepareOrderCommand) Validate() error {
	return c.guard.Validate(ErrPrepareOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c PrepareOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PrepareOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

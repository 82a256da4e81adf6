package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand represents a barista finishing an order so it is
// waiting for pickup.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand creates a command to mark an order ready.
// Validates that the order ID is valid.
func NewMarkOrderReadyCommand(orderID kernel.UUID) (MarkOrderReadyCommand, error) {
	orderCommand := MarkOrderReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setOrderID(orderID); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkOrderReadyCommandIsNotConstructed if validation fails.
func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c MarkOrderReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderReadyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new coffee order.
// Encapsulates the full recipe: drink, cup size, milk choice and shot count.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, "latte", order.Medium, order.Whole, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, clk)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed and awaiting payment", placed.ID())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	drink   string
	size    order.Size
	milk    order.Milk
	shots   int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new coffee order.
// Validates that the order ID is valid, the drink is not empty, and the
// size, milk and shot count satisfy the recipe rules.
// Returns an error if any validation fails.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	drink string,
	size order.Size,
	milk order.Milk,
	shots int,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDrink(drink),
		orderCommand.setSize(size),
		orderCommand.setMilk(milk),
		orderCommand.setShots(shots),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Drink returns the name of the ordered beverage.
func (c PlaceOrderCommand) Drink() string {
	return c.drink
}

// Size returns the cup size.
func (c PlaceOrderCommand) Size() order.Size {
	return c.size
}

// Milk returns the milk choice.
func (c PlaceOrderCommand) Milk() order.Milk {
	return c.milk
}

// Shots returns the number of espresso shots.
func (c PlaceOrderCommand) Shots() int {
	return c.shots
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setDrink(drink string) error {
	if strings.TrimSpace(drink) == "" {
		return errs.NewValueIsRequiredError("drink is required")
	}

	c.drink = drink
	return nil
}

func (c *PlaceOrderCommand) setSize(size order.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *PlaceOrderCommand) setMilk(milk order.Milk) error {
	if err := milk.Validate(); err != nil {
		return err
	}

	c.milk = milk
	return nil
}

func (c *PlaceOrderCommand) setShots(shots int) error {
	if shots < order.MinShots || shots > order.MaxShots {
		return errs.NewValueIsOutOfRangeError("shots", shots, order.MinShots, order.MaxShots)
	}

	c.shots = shots
	return nil
}

package commands

import (
	"errors"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to change the recipe of a pending order.
// Nil fields leave the corresponding part of the recipe unchanged.
//
// Example:
//
//	size := order.Large
//	cmd, err := NewUpdateOrderCommand(orderID, nil, &size, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid update data: %w", err)
//	}
//
//	handler := NewUpdateOrderCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	drink   *string
	size    *order.Size
	milk    *order.Milk
	shots   *int

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to change a pending order's recipe.
// Validates the order ID and every provided field; nil fields are skipped.
// Returns an error if any validation fails.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	drink *string,
	size *order.Size,
	milk *order.Milk,
	shots *int,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDrink(drink),
		orderCommand.setSize(size),
		orderCommand.setMilk(milk),
		orderCommand.setShots(shots),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Drink returns the new beverage name, or nil to keep the current one.
func (c UpdateOrderCommand) Drink() *string {
	return c.drink
}

// Size returns the new cup size, or nil to keep the current one.
func (c UpdateOrderCommand) Size() *order.Size {
	return c.size
}

// Milk returns the new milk choice, or nil to keep the current one.
func (c UpdateOrderCommand) Milk() *order.Milk {
	return c.milk
}

// Shots returns the new shot count, or nil to keep the current one.
func (c UpdateOrderCommand) Shots() *int {
	return c.shots
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setDrink(drink *string) error {
	if drink == nil {
		return nil
	}
	if strings.TrimSpace(*drink) == "" {
		return errs.NewValueIsRequiredError("drink is required")
	}

	value := *drink
	c.drink = &value
	return nil
}

func (c *UpdateOrderCommand) setSize(size *order.Size) error {
	if size == nil {
		return nil
	}
	if err := size.Validate(); err != nil {
		return err
	}

	value := *size
	c.size = &value
	return nil
}

func (c *UpdateOrderCommand) setMilk(milk *order.Milk) error {
	if milk == nil {
		return nil
	}
	if err := milk.Validate(); err != nil {
		return err
	}

	value := *milk
	c.milk = &value
	return nil
}

func (c *UpdateOrderCommand) setShots(shots *int) error {
	if shots == nil {
		return nil
	}
	if *shots < order.MinShots || *shots > order.MaxShots {
		return errs.NewValueIsOutOfRangeError("shots", *shots, order.MinShots, order.MaxShots)
	}

	value := *shots
	c.shots = &value
	return nil
}

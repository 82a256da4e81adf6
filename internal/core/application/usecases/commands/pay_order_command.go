package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a request to pay for a pending order.
// Carries the card used to pay and the tendered amount in cents.
//
// Example:
//
//	cmd, err := NewPayOrderCommand(orderID, "4111111111111111", 350)
//	if err != nil {
//	    return fmt.Errorf("invalid payment data: %w", err)
//	}
//
//	handler := NewPayOrderCommandHandler(uowFactory)
//	paid, err := handler.Handle(ctx, cmd)
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	cardNumber  string
	amountCents int

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay for an order.
// Validates that the order ID is valid and the card number is not empty.
// Whether the amount covers the order cost is a business rule checked
// against the aggregate by the handler.
func NewPayOrderCommand(orderID kernel.UUID, cardNumber string, amountCents int) (PayOrderCommand, error) {
	orderCommand := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCardNumber(cardNumber),
	); err != nil {
		return PayOrderCommand{}, err
	}

	orderCommand.amountCents = amountCents
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPayOrderCommandIsNotConstructed if validation fails.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CardNumber returns the card used to pay.
func (c PayOrderCommand) CardNumber() string {
	return c.cardNumber
}

// AmountCents returns the tendered amount in cents.
func (c PayOrderCommand) AmountCents() int {
	return c.amountCents
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setCardNumber(cardNumber string) error {
	if cardNumber == "" {
		return errs.NewValueIsRequiredError("card_number is required")
	}

	c.cardNumber = cardNumber
	return nil
}

package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
)

// PayOrderCommandHandler handles the business logic for order payment.
// Payment moves a pending order to "paid" and records the card used;
// paying twice is rejected as an invalid transition.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPayOrderCommandHandler creates a handler for payment operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command within a transaction.
// Retrieves the order, applies the payment with the aggregate's rules
// (status check, card required, amount must cover the cost), and persists
// the changes. Automatically rolls back on any error.
// Returns the paid aggregate.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = orderAggregate.Pay(cmd.CardNumber(), cmd.AmountCents()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderAggregate, nil
}

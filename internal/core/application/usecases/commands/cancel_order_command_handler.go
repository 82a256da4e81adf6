package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// A cancelled order is kept as a terminal state rather than deleted, and it
// preserves its payment record for the refund trail.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command within a transaction.
// Retrieves the order, cancels it and persists the change.
// Automatically rolls back on any error. Returns the cancelled aggregate.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if err = orderAggregate.Cancel(); err != nil {
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

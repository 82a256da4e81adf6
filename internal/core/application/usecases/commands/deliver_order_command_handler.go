package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler handles the business logic for order handover.
// Only ready orders can be delivered; delivered is a terminal state.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for delivery operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command within a transaction.
// Retrieves the order, moves it to "delivered" and persists the change.
// Automatically rolls back on any error. Returns the delivered aggregate.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
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

	if err = orderAggregate.Deliver(); err != nil {
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

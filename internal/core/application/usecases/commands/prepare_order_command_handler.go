package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
)

// PrepareOrderCommandHandler handles the business logic for starting preparation.
// Only paid orders can be prepared; from this point cancellation is no longer possible.
type PrepareOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPrepareOrderCommandHandler creates a handler for preparation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewPrepareOrderCommandHandler(uowFactory OrderUoWFactory) PrepareOrderCommandHandler {
	return PrepareOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the preparation command within a transaction.
// Retrieves the order, moves it to "preparing" and persists the change.
// Automatically rolls back on any error. Returns the updated aggregate.
func (h *PrepareOrderCommandHandler) Handle(ctx context.Context, cmd PrepareOrderCommand) (*order.Order, error) {
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

	if err = orderAggregate.StartPreparation(); err != nil {
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

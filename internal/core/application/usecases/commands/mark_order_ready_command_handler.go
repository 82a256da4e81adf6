package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
)

// MarkOrderReadyCommandHandler handles the business logic for finishing preparation.
// Only orders in "preparing" status can be marked ready.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderReadyCommandHandler creates a handler for the mark-ready operation.
// Requires an OrderUoWFactory for transactional persistence.
func NewMarkOrderReadyCommandHandler(uowFactory OrderUoWFactory) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-ready command within a transaction.
// Retrieves the order, moves it to "ready" and persists the change.
// Automatically rolls back on any error. Returns the updated aggregate.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) (*order.Order, error) {
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

	if err = orderAggregate.MarkReady(); err != nil {
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

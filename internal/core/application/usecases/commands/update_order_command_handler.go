package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles the business logic for recipe changes.
// Only pending orders can be updated; once payment is taken the recipe is locked.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for recipe update operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recipe update command within a transaction.
// Retrieves the order, applies the provided fields and recomputes the cost,
// then persists the changes. Automatically rolls back on any error.
// Returns the updated aggregate.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	if err = orderAggregate.ChangeRecipe(cmd.Drink(), cmd.Size(), cmd.Milk(), cmd.Shots()); err != nil {
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

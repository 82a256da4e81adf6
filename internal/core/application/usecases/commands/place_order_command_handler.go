package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/clock"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Creates new orders in "pending" status with the cost computed from the recipe.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, clk)
//	orderID := kernel.NewUUID()
//	cmd, _ := NewPlaceOrderCommand(orderID, "latte", order.Medium, order.Whole, 2)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending and ready for payment
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clk        clock.Clock
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence and a clock
// for the placement timestamp.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clk:        clk,
	}
}

// Handle processes the order placement command.
// Creates the order in "pending" status with its placement timestamp and
// uses a transaction to ensure the order is properly persisted or rolled
// back on error. Returns the placed aggregate.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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
	orderAggregate, err := order.NewOrder(cmd.OrderID(), cmd.Drink(), cmd.Size(), cmd.Milk(), cmd.Shots(), h.clk.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, orderAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderAggregate, nil
}

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the current snapshot of a single order.
// Returns the full order state needed to render its representation,
// including the status from which available actions are derived.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db, cache)
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s ($%.2f)\n",
//	    snapshot.ID, snapshot.Status, float64(snapshot.CostCents)/100)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order by ID.
// Returns an error if the order ID is invalid.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the unique identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents a complete order snapshot in the read model.
// Contains every attribute exposed by the order representation.
//
// Example:
//
//	response := GetOrderQueryResponse{
//	    ID:        orderID,
//	    Drink:     "latte",
//	    Size:      order.Medium,
//	    Milk:      order.Whole,
//	    Shots:     2,
//	    Status:    order.Pending,
//	    CostCents: 350,
//	}
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	Drink        string
	Size         order.Size
	Milk         order.Milk
	Shots        int
	Status       order.Status
	CostCents    int
	Paid         bool
	CardLastFour string
	CreatedAt    time.Time
}

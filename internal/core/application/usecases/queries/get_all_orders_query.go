package queries

import (
	"errors"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves orders matching optional filters.
// A nil status or paid filter means the attribute is not filtered on;
// with both filters nil every order in the system is returned.
//
// Example:
//
//	status := order.Paid
//	query, err := NewGetAllOrdersQuery(&status, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("%d orders awaiting preparation\n", len(orders))
type GetAllOrdersQuery struct {
	status *order.Status
	paid   *bool

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to list orders.
// Both filters are optional; a provided status must be a known order status.
func NewGetAllOrdersQuery(status *order.Status, paid *bool) (GetAllOrdersQuery, error) {
	listQuery := GetAllOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
		value := *status
		listQuery.status = &value
	}

	if paid != nil {
		value := *paid
		listQuery.paid = &value
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when orders of every status match.
func (q GetAllOrdersQuery) Status() *order.Status {
	return q.status
}

// Paid returns the payment filter, or nil when both paid and unpaid orders match.
func (q GetAllOrdersQuery) Paid() *bool {
	return q.paid
}

// GetAllOrdersQueryResponse represents one order in the listing read model.
// Carries the same attributes as a single-order snapshot so listings can
// render complete representations.
type GetAllOrdersQueryResponse struct {
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

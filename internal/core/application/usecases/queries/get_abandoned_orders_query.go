package queries

import (
	"errors"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrGetAbandonedOrdersQueryIsNotConstructed = errors.New(
		"GetAbandonedOrdersQuery must be created via NewGetAbandonedOrdersQuery constructor",
	)
)

// GetAbandonedOrdersQuery retrieves orders placed but never paid for.
// Returns pending orders created before the cutoff so stale, forgotten
// orders can be reported and followed up on.
//
// Example:
//
//	cutoff := time.Now().Add(-30 * time.Minute)
//	query, err := NewGetAbandonedOrdersQuery(cutoff)
//	if err != nil {
//	    return fmt.Errorf("invalid cutoff: %w", err)
//	}
//
//	handler := NewGetAbandonedOrdersQueryHandler(db)
//	abandoned, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get abandoned orders: %w", err)
//	}
//
//	for _, order := range abandoned {
//	    fmt.Printf("Order %s (%s) unpaid since %s\n",
//	        order.ID, order.Drink, order.CreatedAt)
//	}
type GetAbandonedOrdersQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetAbandonedOrdersQuery creates a query for pending orders older than
// the cutoff. Returns an error if the cutoff is the zero time.
func NewGetAbandonedOrdersQuery(cutoff time.Time) (GetAbandonedOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetAbandonedOrdersQuery{}, errs.NewValueIsRequiredError("cutoff is required")
	}

	return GetAbandonedOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAbandonedOrdersQueryIsNotConstructed if validation fails.
func (q GetAbandonedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAbandonedOrdersQueryIsNotConstructed)
}

// Cutoff returns the moment before which pending orders count as abandoned.
func (q GetAbandonedOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetAbandonedOrdersQueryResponse represents one abandoned order.
// Contains the data needed to report the order and its outstanding amount.
type GetAbandonedOrdersQueryResponse struct {
	ID        kernel.UUID
	Drink     string
	CostCents int
	CreatedAt time.Time
}

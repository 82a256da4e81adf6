package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// OrderCache defines the contract for the order snapshot cache.
//
// The cache is an optimization layer in front of the repository: it is written
// through after every successful command and consulted before single-order
// reads. It is never authoritative. Implementations must treat cache failures
// as recoverable; callers fall back to the repository on any error.
type OrderCache interface {
	// Put stores a snapshot of the order, replacing any previous one.
	Put(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a cached order snapshot by its unique identifier.
	// Returns errs.ErrObjectNotFound (wrapped) on a cache miss.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

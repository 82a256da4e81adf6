package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order snapshot.
// Consults the cache first and falls back to the database on any cache
// error, refilling the cache after a successful database read. The cache
// is an optimization only; the database remains the source of truth.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db, cache)
//	query, _ := NewGetOrderQuery(orderID)
//
//	snapshot, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return fmt.Errorf("order %s does not exist", orderID)
//	}
type GetOrderQueryHandler struct {
	db    *gorm.DB
	cache ports.OrderCache
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection and an order cache.
func NewGetOrderQueryHandler(db *gorm.DB, cache ports.OrderCache) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, cache: cache}
}

// Handle executes the query to retrieve one order.
// Returns errs.ErrObjectNotFound (wrapped) if no order exists with the
// requested ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if cached, err := h.cache.Get(ctx, query.OrderID()); err == nil {
		return newGetOrderQueryResponse(cached), nil
	}

	aggregate, err := h.loadFromDatabase(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	// A failed cache refill never fails the read.
	_ = h.cache.Put(ctx, aggregate)

	return newGetOrderQueryResponse(aggregate), nil
}

// loadFromDatabase reads the order row and restores the full aggregate,
// which revalidates the stored state before it is returned or cached.
func (h GetOrderQueryHandler) loadFromDatabase(
	ctx context.Context,
	query GetOrderQuery,
) (*order.Order, error) {
	var (
		drink        string
		size         int
		milk         int
		shots        int
		status       int
		costCents    int
		paid         bool
		cardLastFour string
		createdAt    time.Time
		version      int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			drink,
			size,
			milk,
			shots,
			status,
			cost_cents,
			paid,
			card_last_four,
			created_at,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&drink,
		&size,
		&milk,
		&shots,
		&status,
		&costCents,
		&paid,
		&cardLastFour,
		&createdAt,
		&version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	return order.RestoreOrder(
		query.OrderID(),
		drink,
		order.Size(size),
		order.Milk(milk),
		shots,
		order.Status(status),
		costCents,
		paid,
		cardLastFour,
		createdAt,
		version,
	)
}

// newGetOrderQueryResponse maps an order aggregate to its read model.
func newGetOrderQueryResponse(aggregate *order.Order) GetOrderQueryResponse {
	return GetOrderQueryResponse{
		ID:           aggregate.ID(),
		Drink:        aggregate.Drink(),
		Size:         aggregate.Size(),
		Milk:         aggregate.Milk(),
		Shots:        aggregate.Shots(),
		Status:       aggregate.Status(),
		CostCents:    aggregate.CostCents(),
		Paid:         aggregate.Paid(),
		CardLastFour: aggregate.CardLastFour(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

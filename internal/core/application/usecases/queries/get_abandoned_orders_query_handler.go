package queries

import (
	"context"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAbandonedOrdersQueryHandler finds orders awaiting payment past the cutoff.
// Orders that were paid, cancelled or progressed further never count as
// abandoned regardless of age.
//
// Example:
//
//	handler := NewGetAbandonedOrdersQueryHandler(db)
//	query, _ := NewGetAbandonedOrdersQuery(time.Now().Add(-30 * time.Minute))
//
//	abandoned, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get abandoned orders: %v", err)
//	    return err
//	}
//
//	if len(abandoned) > 0 {
//	    fmt.Printf("%d orders need follow-up\n", len(abandoned))
//	}
type GetAbandonedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAbandonedOrdersQueryHandler creates a handler for abandoned order queries.
// Requires a GORM database connection for query execution.
func NewGetAbandonedOrdersQueryHandler(db *gorm.DB) GetAbandonedOrdersQueryHandler {
	return GetAbandonedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve pending orders created before the cutoff.
// Results are sorted oldest first so the longest-waiting orders lead the report.
func (h GetAbandonedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAbandonedOrdersQuery,
) ([]GetAbandonedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAbandonedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			drink,
			cost_cents,
			created_at
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at, id
	`, order.Pending, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAbandonedOrdersQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderResp.Drink,
			&orderResp.CostCents,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.CreatedAt = createdAt
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

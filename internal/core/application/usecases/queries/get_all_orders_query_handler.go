package queries

import (
	"context"
	"strings"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists orders from the database.
// Applies the optional status and paid filters and returns orders in
// placement order for stable listings.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	query, _ := NewGetAllOrdersQuery(nil, nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to list orders matching the filters.
// Results are sorted by creation time, then by ID for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			drink,
			size,
			milk,
			shots,
			status,
			cost_cents,
			paid,
			card_last_four,
			created_at
		FROM orders`

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *status)
	}
	if paid := query.Paid(); paid != nil {
		conditions = append(conditions, "paid = ?")
		args = append(args, *paid)
	}
	if len(conditions) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	sql += "\n\t\tORDER BY created_at, id"

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse
		var id uuid.UUID
		var size, milk, status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderResp.Drink,
			&size,
			&milk,
			&orderResp.Shots,
			&status,
			&orderResp.CostCents,
			&orderResp.Paid,
			&orderResp.CardLastFour,
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
		orderResp.Size = order.Size(size)
		orderResp.Milk = order.Milk(milk)
		orderResp.Status = order.Status(status)
		orderResp.CreatedAt = createdAt
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

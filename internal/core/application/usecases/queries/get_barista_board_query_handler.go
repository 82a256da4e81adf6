package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetBaristaBoardQueryHandler counts active orders per preparation stage.
// Groups the orders table by status so a single scan produces the whole board.
type GetBaristaBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetBaristaBoardQueryHandler creates a handler for barista board queries.
// Requires a GORM database connection for query execution.
func NewGetBaristaBoardQueryHandler(db *gorm.DB) GetBaristaBoardQueryHandler {
	return GetBaristaBoardQueryHandler{db: db}
}

// Handle executes the query to count orders in each active status.
// Statuses with no orders report zero.
func (h GetBaristaBoardQueryHandler) Handle(
	ctx context.Context,
	query GetBaristaBoardQuery,
) (GetBaristaBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBaristaBoardQueryResponse{}, err
	}

	var board GetBaristaBoardQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		WHERE status IN (?, ?, ?)
		GROUP BY status
	`, order.Paid, order.Preparing, order.Ready).Rows()
	if err != nil {
		return GetBaristaBoardQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int

		if err = rows.Scan(&status, &count); err != nil {
			return GetBaristaBoardQueryResponse{}, err
		}

		switch order.Status(status) {
		case order.Paid:
			board.PaidCount = count
		case order.Preparing:
			board.PreparingCount = count
		case order.Ready:
			board.ReadyCount = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetBaristaBoardQueryResponse{}, err
	}

	return board, nil
}

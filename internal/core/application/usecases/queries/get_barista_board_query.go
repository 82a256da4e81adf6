package queries

import (
	"errors"

	"coffeeshop/internal/pkg/guard"
)

var (
	ErrGetBaristaBoardQueryIsNotConstructed = errors.New(
		"GetBaristaBoardQuery must be created via NewGetBaristaBoardQuery constructor",
	)
)

// GetBaristaBoardQuery retrieves the barista workload board.
// Returns how many orders sit in each active stage of the preparation
// pipeline: paid and waiting, currently preparing, and ready for pickup.
//
// Example:
//
//	query := NewGetBaristaBoardQuery()
//	handler := NewGetBaristaBoardQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get barista board: %w", err)
//	}
//
//	fmt.Printf("queue: %d paid, %d preparing, %d ready\n",
//	    board.PaidCount, board.PreparingCount, board.ReadyCount)
type GetBaristaBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBaristaBoardQuery creates a query to retrieve the barista board.
// This is a parameterless query that counts orders in active statuses.
func NewGetBaristaBoardQuery() GetBaristaBoardQuery {
	return GetBaristaBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBaristaBoardQueryIsNotConstructed if validation fails.
func (q GetBaristaBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetBaristaBoardQueryIsNotConstructed)
}

// GetBaristaBoardQueryResponse represents the barista workload counts.
// Orders in terminal or unpaid statuses do not appear on the board.
type GetBaristaBoardQueryResponse struct {
	PaidCount      int
	PreparingCount int
	ReadyCount     int
}

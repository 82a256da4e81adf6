// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with an index on
// status for efficient barista queue and abandoned-order queries. The version
// column backs optimistic concurrency control.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Drink        string
	Size         int
	Milk         int
	Shots        int
	Status       int `gorm:"index"`
	CostCents    int
	Paid         bool
	CardLastFour string
	CreatedAt    time.Time
	Version      int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the payment record and version.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:           order.ID().Bytes(),
		Drink:        order.Drink(),
		Size:         int(order.Size()),
		Milk:         int(order.Milk()),
		Shots:        order.Shots(),
		Status:       int(order.Status()),
		CostCents:    order.CostCents(),
		Paid:         order.Paid(),
		CardLastFour: order.CardLastFour(),
		CreatedAt:    order.CreatedAt(),
		Version:      order.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, payment record and
// version using RestoreOrder, which revalidates the stored state.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Drink,
		order.Size(dto.Size),
		order.Milk(dto.Milk),
		dto.Shots,
		order.Status(dto.Status),
		dto.CostCents,
		dto.Paid,
		dto.CardLastFour,
		dto.CreatedAt,
		dto.Version,
	)
}

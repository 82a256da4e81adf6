// Package ordercache provides a Redis-backed snapshot cache for order
// aggregates. Snapshots are written through after every state change and
// expire on their own, so the cache never has to be invalidated explicitly.
package ordercache

import (
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// orderDTO is the JSON shape of a cached order snapshot. It carries the
// version so a snapshot restored from the cache stays usable for optimistic
// concurrency checks.
type orderDTO struct {
	ID           string    `json:"id"`
	Drink        string    `json:"drink"`
	Size         int       `json:"size"`
	Milk         int       `json:"milk"`
	Shots        int       `json:"shots"`
	Status       int       `json:"status"`
	CostCents    int       `json:"cost_cents"`
	Paid         bool      `json:"paid"`
	CardLastFour string    `json:"card_last_four,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Version      int       `json:"version"`
}

// fromDomain converts an order domain aggregate to its cache representation.
func fromDomain(order *order.Order) orderDTO {
	return orderDTO{
		ID:           order.ID().String(),
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

// toDomain converts a cached snapshot back to an order domain aggregate.
// Reconstruction goes through RestoreOrder, which revalidates the stored
// state, so a corrupted snapshot surfaces as an error instead of a broken
// aggregate.
func toDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
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

package ordercache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces order snapshots in the shared Redis keyspace.
const keyPrefix = "order:"

// RedisOrderCache implements OrderCache using Redis. Every snapshot is
// stored as a JSON string under its order key with the configured TTL.
type RedisOrderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisOrderCache creates a new Redis order cache. Snapshots expire after
// ttl; a non-positive ttl keeps them until the next write.
func NewRedisOrderCache(client *redis.Client, ttl time.Duration) *RedisOrderCache {
	return &RedisOrderCache{
		client: client,
		ttl:    ttl,
	}
}

// Put stores a snapshot of the order, replacing any previous one and
// resetting its TTL.
func (c *RedisOrderCache) Put(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	return c.client.Set(ctx, orderKey(aggregate.ID()), payload, c.ttl).Err()
}

// Get retrieves a cached order snapshot by its unique identifier.
// Returns errs.ErrObjectNotFound (wrapped) on a cache miss.
func (c *RedisOrderCache) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	payload, err := c.client.Get(ctx, orderKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	var dto orderDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func orderKey(id kernel.UUID) string {
	return keyPrefix + id.String()
}

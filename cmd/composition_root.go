package cmd

import (
	"coffeeshop/internal/adapters/out/postgres"
	"coffeeshop/internal/adapters/out/redis/ordercache"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	orderCache *ordercache.RedisOrderCache
	clock      clock.Clock
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderCache: ordercache.NewRedisOrderCache(redisClient, configs.OrderCacheTTL),
		clock:      clock.NewSystem(),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePrepareOrderCommandHandler() commands.PrepareOrderCommandHandler {
	return commands.NewPrepareOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.orderCache)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAbandonedOrdersQueryHandler() queries.GetAbandonedOrdersQueryHandler {
	return queries.NewGetAbandonedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBaristaBoardQueryHandler() queries.GetBaristaBoardQueryHandler {
	return queries.NewGetBaristaBoardQueryHandler(c.gormDB)
}

// OrderCache exposes the snapshot cache shared by the HTTP layer and the
// single-order read path.
func (c *CompositionRoot) OrderCache() ports.OrderCache {
	return c.orderCache
}

// Clock exposes the shared clock.
func (c *CompositionRoot) Clock() clock.Clock {
	return c.clock
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

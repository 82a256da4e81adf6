package queries_test

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/adapters/out/postgres/orderrepo"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAbandonedOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAbandonedOrdersQueryHandler
	repo      *orderrepo.GormOrderRepository
}

func (suite *GetAbandonedOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAbandonedOrdersQueryHandler(db)
	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetAbandonedOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAbandonedOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetAbandonedOrdersQueryHandlerTestSuite) TestHandle_NoAbandonedOrders_ReturnsEmptySlice() {
	cutoff := suite.baseTime()
	suite.seedOrder(order.Pending, cutoff.Add(time.Minute)) // placed after the cutoff

	query, err := queries.NewGetAbandonedOrdersQuery(cutoff)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAbandonedOrdersQueryHandlerTestSuite) TestHandle_StalePendingOrders_ReturnsOldestFirst() {
	cutoff := suite.baseTime()
	newer := suite.seedOrder(order.Pending, cutoff.Add(-10*time.Minute))
	oldest := suite.seedOrder(order.Pending, cutoff.Add(-time.Hour))

	query, err := queries.NewGetAbandonedOrdersQuery(cutoff)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(oldest.ID(), result[0].ID)
	suite.Equal(newer.ID(), result[1].ID)
	suite.Equal("latte", result[0].Drink)
	suite.Equal(350, result[0].CostCents)
	suite.True(oldest.CreatedAt().Equal(result[0].CreatedAt))
}

func (suite *GetAbandonedOrdersQueryHandlerTestSuite) TestHandle_ProgressedOrders_NeverCountAsAbandoned() {
	cutoff := suite.baseTime()
	old := cutoff.Add(-time.Hour)

	// Orders that moved past pending are not abandoned regardless of age
	suite.seedOrder(order.Paid, old)
	suite.seedOrder(order.Preparing, old)
	suite.seedOrder(order.Cancelled, old)
	suite.seedOrder(order.Delivered, old)
	stale := suite.seedOrder(order.Pending, old)

	query, err := queries.NewGetAbandonedOrdersQuery(cutoff)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(stale.ID(), result[0].ID)
}

func (suite *GetAbandonedOrdersQueryHandlerTestSuite) TestHandle_OrderPlacedExactlyAtCutoff_IsNotAbandoned() {
	cutoff := suite.baseTime()
	suite.seedOrder(order.Pending, cutoff)

	query, err := queries.NewGetAbandonedOrdersQuery(cutoff)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetAbandonedOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAbandonedOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAbandonedOrdersQuery constructor")
}

// seedOrder persists an order in the given state with the given placement time.
func (suite *GetAbandonedOrdersQueryHandlerTestSuite) seedOrder(
	status order.Status, createdAt time.Time,
) *order.Order {
	paid := status != order.Pending && status != order.Cancelled
	cardLastFour := ""
	if paid {
		cardLastFour = "4242"
	}

	seeded, err := order.RestoreOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 2,
		status, 350, paid, cardLastFour, createdAt, 1)
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), seeded)
	suite.Require().NoError(err)

	return seeded
}

func (suite *GetAbandonedOrdersQueryHandlerTestSuite) baseTime() time.Time {
	return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
}

func TestGetAbandonedOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAbandonedOrdersQueryHandlerTestSuite))
}

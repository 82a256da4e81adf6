package commands_test

import (
	"testing"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPayOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewPayOrderCommand(id, "4111111111111111", 300)

	existing := restoredOrder(t, id, order.Pending, false)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory)
	paid, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, paid)
	assert.Equal(t, order.Paid, paid.Status())
	assert.True(t, paid.Paid())
	assert.Equal(t, "1111", paid.CardLastFour())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPayOrderCommandHandler_Handle_InsufficientAmount(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewPayOrderCommand(id, "4111111111111111", 100)

	existing := restoredOrder(t, id, order.Pending, false)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory)
	paid, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, paid)
	require.ErrorIs(t, err, order.ErrInsufficientAmount)
	assert.Equal(t, "Insufficient amount. Need $3.00", err.Error())
	assert.False(t, existing.Paid()) // aggregate untouched
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPayOrderCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewPayOrderCommand(id, "4242424242424242", 300)

	existing := restoredOrder(t, id, order.Paid, true)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory)
	paid, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, paid)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, "1111", existing.CardLastFour()) // original card preserved
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPayOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewPayOrderCommand(id, "4111111111111111", 300)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory)
	paid, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, paid)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

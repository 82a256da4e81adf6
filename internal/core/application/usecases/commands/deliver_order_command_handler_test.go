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

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeliverOrderCommand(id)

	existing := restoredOrder(t, id, order.Ready, true)

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

	h := commands.NewDeliverOrderCommandHandler(factory)
	delivered, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, delivered)
	assert.Equal(t, order.Delivered, delivered.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_NotReadyRejected(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeliverOrderCommand(id)

	existing := restoredOrder(t, id, order.Preparing, true)

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

	h := commands.NewDeliverOrderCommandHandler(factory)
	delivered, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, delivered)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "cannot deliver order in status preparing")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

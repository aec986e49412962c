package commands_test

import (
	"testing"
	"time"

	"chefbook/internal/core/application/usecases/commands"
	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"
	"chefbook/internal/core/ports"
	"chefbook/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeclareOrderExpiredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	chefID := kernel.NewUUID()
	// Placed long enough ago that the acceptance window has lapsed.
	overdue := testOrder(t, customerID, chefID, time.Now().Add(-10*time.Minute))

	cmd, err := commands.NewDeclareOrderExpiredCommand(overdue.ID(), customerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, overdue.ID()).Return(overdue, nil).Once(),
		repo.On("UpdateInStatus", mock.Anything, overdue, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyOrderUpdate", chefID, overdue).Once()

	events := new(MockEventPublisher)
	events.On("Publish", mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Kind == ports.EventOrderExpired
	})).Once()

	h := commands.NewDeclareOrderExpiredCommandHandler(factory, notifier, events)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Expired, overdue.Status())
	notifier.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestDeclareOrderExpiredCommandHandler_Handle_WindowStillOpen(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	chefID := kernel.NewUUID()
	fresh := testOrder(t, customerID, chefID, time.Now())

	cmd, err := commands.NewDeclareOrderExpiredCommand(fresh.ID(), customerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, fresh.ID()).Return(fresh, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeclareOrderExpiredCommandHandler(factory, new(MockNotifier), new(MockEventPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)

	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Greater(t, conflict.Remaining, time.Duration(0))
	require.Equal(t, order.Pending, fresh.Status())
}

func TestDeclareOrderExpiredCommandHandler_Handle_NotTheCustomer(t *testing.T) {
	ctx := t.Context()
	overdue := testOrder(t, kernel.NewUUID(), kernel.NewUUID(), time.Now().Add(-10*time.Minute))
	stranger := kernel.NewUUID()

	cmd, err := commands.NewDeclareOrderExpiredCommand(overdue.ID(), stranger)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, overdue.ID()).Return(overdue, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeclareOrderExpiredCommandHandler(factory, new(MockNotifier), new(MockEventPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}

package commands_test

import (
	"context"
	"testing"
	"time"

	"chefbook/internal/core/application/usecases/commands"
	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"
	"chefbook/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateInStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateInPaymentStatus(ctx context.Context, o *order.Order, expected order.PaymentStatus) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllPendingForChef(ctx context.Context, chefID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, chefID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllOverdueUnnotified(ctx context.Context, now time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyNewOrder(chefID kernel.UUID, o *order.Order) {
	m.Called(chefID, o)
}

func (m *MockNotifier) NotifyOrderUpdate(recipientID kernel.UUID, o *order.Order) {
	m.Called(recipientID, o)
}

func (m *MockNotifier) NotifyPaymentRequested(chefID kernel.UUID, o *order.Order) {
	m.Called(chefID, o)
}

func (m *MockNotifier) NotifyPaymentVerified(customerID, orderID kernel.UUID, verified bool, message string) {
	m.Called(customerID, orderID, verified, message)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(event ports.OrderEvent) {
	m.Called(event)
}

// testOrder builds a pending order placed at the given instant.
func testOrder(t *testing.T, customerID, chefID kernel.UUID, placedAt time.Time) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), 2, decimal.NewFromInt(450))
	require.NoError(t, err)

	slot, err := order.NewTimeSlot("Saturday", "18:00", "21:00")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, chefID,
		[]order.LineItem{item}, 4, false, nil,
		"12 Rose Lane", "",
		placedAt.AddDate(0, 0, 1), slot, placedAt,
	)
	require.NoError(t, err)
	return o
}

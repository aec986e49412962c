package queries_test

import (
	"context"
	"testing"
	"time"

	"chefbook/internal/adapters/out/postgres/orderrepo"
	"chefbook/internal/core/application/usecases/queries"
	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"
	"chefbook/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

// QueryHandlersIntegrationTestSuite exercises the read-side handlers against
// rows written through the order repository, so the raw select lists stay in
// sync with the write-side schema.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_AsCustomer_ReturnsFullOrder() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	chefID := kernel.NewUUID()
	placed := suite.placeOrder(customerID, chefID)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(placed.ID(), customerID)
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(placed.ID().IsEqual(resp.ID))
	suite.True(customerID.IsEqual(resp.CustomerID))
	suite.True(chefID.IsEqual(resp.ChefID))
	suite.Len(resp.Items, 1)
	suite.Equal("Pending", resp.Status)
	suite.Equal("Pending", resp.PaymentStatus)
	suite.Equal("Unknown", resp.PaymentMethod)
	suite.False(resp.Paid)
	suite.True(placed.Total().Equal(resp.Total))
	suite.Equal("Saturday", resp.SlotDay)
	suite.Positive(resp.RemainingSeconds)
	suite.LessOrEqual(resp.RemainingSeconds, int64(order.AcceptanceWindow.Seconds()))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_AsChef_Succeeds() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	chefID := kernel.NewUUID()
	placed := suite.placeOrder(customerID, chefID)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(placed.ID(), chefID)
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(placed.ID().IsEqual(resp.ID))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_AsStranger_NotAuthorized() {
	ctx := context.Background()
	placed := suite.placeOrder(kernel.NewUUID(), kernel.NewUUID())

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(placed.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrNotAuthorized)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_MissingOrder_NotFound() {
	ctx := context.Background()

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPendingOrdersForChef_OldestFirst() {
	ctx := context.Background()
	chefID := kernel.NewUUID()

	older := suite.placeOrder(kernel.NewUUID(), chefID)
	// Force a distinct placement time so ordering is deterministic.
	suite.Require().NoError(
		suite.db.Exec("UPDATE orders SET placed_at = placed_at - interval '1 minute' WHERE id = ?",
			older.ID().Bytes()).Error)

	newer := suite.placeOrder(kernel.NewUUID(), chefID)
	suite.placeOrder(kernel.NewUUID(), kernel.NewUUID()) // different chef

	decided := suite.placeOrder(kernel.NewUUID(), chefID)
	suite.Require().NoError(decided.AcceptBy(chefID))
	suite.Require().NoError(suite.orderRepo.UpdateInStatus(ctx, decided, order.Pending))

	handler := queries.NewGetPendingOrdersForChefQueryHandler(suite.db)
	query, err := queries.NewGetPendingOrdersForChefQuery(chefID)
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(resp, 2)
	suite.True(older.ID().IsEqual(resp[0].ID))
	suite.True(newer.ID().IsEqual(resp[1].ID))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPendingOrdersForChef_Empty() {
	ctx := context.Background()

	handler := queries.NewGetPendingOrdersForChefQueryHandler(suite.db)
	query, err := queries.NewGetPendingOrdersForChefQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.NotNil(resp)
	suite.Empty(resp)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrdersForCustomer_IncludesTerminalOrders() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	chefID := kernel.NewUUID()

	kept := suite.placeOrder(customerID, chefID)
	rejected := suite.placeOrder(customerID, chefID)
	suite.Require().NoError(rejected.RejectBy(chefID))
	suite.Require().NoError(suite.orderRepo.UpdateInStatus(ctx, rejected, order.Pending))

	suite.placeOrder(kernel.NewUUID(), chefID) // someone else's order

	handler := queries.NewGetOrdersForCustomerQueryHandler(suite.db)
	query, err := queries.NewGetOrdersForCustomerQuery(customerID)
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(resp, 2)

	statuses := map[string]bool{}
	ids := map[string]bool{}
	for _, r := range resp {
		statuses[r.Status] = true
		ids[r.ID.String()] = true
		suite.True(customerID.IsEqual(r.CustomerID))
	}
	suite.True(statuses["Pending"])
	suite.True(statuses["Rejected"])
	suite.True(ids[kept.ID().String()])
	suite.True(ids[rejected.ID().String()])
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_InvalidQuery_ReturnsError() {
	handler := queries.NewGetOrderQueryHandler(suite.db)

	_, err := handler.Handle(context.Background(), queries.GetOrderQuery{})
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

// placeOrder persists a fresh pending order for the given parties.
func (suite *QueryHandlersIntegrationTestSuite) placeOrder(customerID, chefID kernel.UUID) *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), 2, decimal.NewFromInt(450))
	suite.Require().NoError(err)

	slot, err := order.NewTimeSlot("Saturday", "18:00", "21:00")
	suite.Require().NoError(err)

	placedAt := time.Now().UTC()
	placed, err := order.NewOrder(
		kernel.NewUUID(), customerID, chefID,
		[]order.LineItem{item}, 4, false, []string{"peanuts"},
		"12 Rose Lane", "", placedAt.AddDate(0, 0, 1), slot, placedAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), placed))
	return placed
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}

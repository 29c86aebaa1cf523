package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/dc"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ProcessedOrder_ReturnsLinesWithRouting() {
	ctx := context.Background()

	coords, err := kernel.NewCoordinates(-23.5505, -46.6333)
	suite.Require().NoError(err)
	address, err := kernel.NewAddress("Avenida Paulista", "1000", "Sao Paulo", "SP", "BR", "01310-100", coords)
	suite.Require().NoError(err)

	dcCoords, err := kernel.NewCoordinates(-23.4605, -46.6333)
	suite.Require().NoError(err)
	dcAddress, err := kernel.NewAddress("Rua Industrial", "500", "Sao Paulo", "SP", "BR", "04000-000", dcCoords)
	suite.Require().NoError(err)
	center, err := dc.NewDistributionCenter("DC-SP-01", "Sao Paulo warehouse", dcAddress)
	suite.Require().NoError(err)
	nearby, err := dc.NewNearbyDistributionCenter("DC-SP-01", 9.7)
	suite.Require().NoError(err)

	itemA, err := order.NewItem("SKU-A", 2)
	suite.Require().NoError(err)
	itemB, err := order.NewItem("SKU-B", 1)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewOrderID(), "customer-42",
		[]*order.Item{itemA, itemB}, address, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(aggregate.StartProcessing())
	suite.Require().NoError(itemA.Assign(center))
	itemA.SetAvailableDistributionCenters([]dc.NearbyDistributionCenter{nearby})
	_, err = aggregate.FinishProcessing(1, 1)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(resp.ID.IsEqual(aggregate.ID()))
	suite.Equal("customer-42", resp.CustomerID)
	suite.Equal(order.Processing, resp.Status)
	suite.Equal(1, resp.ItemsProcessed)
	suite.Equal(1, resp.ItemsFailed)
	suite.Require().Len(resp.Items, 2)

	// Items come back sorted by item id.
	suite.Equal("SKU-A", resp.Items[0].ItemID)
	suite.Equal(2, resp.Items[0].Quantity)
	suite.Equal("DC-SP-01", resp.Items[0].AssignedCode)
	suite.Require().Len(resp.Items[0].Available, 1)
	suite.Equal("DC-SP-01", resp.Items[0].Available[0].Code)
	suite.InDelta(9.7, resp.Items[0].Available[0].DistanceKm, 0.001)

	suite.Equal("SKU-B", resp.Items[1].ItemID)
	suite.Empty(resp.Items[1].AssignedCode)
	suite.Empty(resp.Items[1].Available)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewOrderID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}

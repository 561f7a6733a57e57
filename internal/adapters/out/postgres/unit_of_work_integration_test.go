package postgres_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/memory"
	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest starts every test from the seeded demo fleet.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE delivery_stops, deliveries, order_products, orders, vehicles").Error
	suite.Require().NoError(err)
	suite.Require().NoError(memory.Seed(context.Background(), suite.factory.Create(), testNow))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) orderByNumber(number string) *order.Order {
	all, err := suite.factory.Create().OrderRepository().GetAll(context.Background())
	suite.Require().NoError(err)
	for _, o := range all {
		if o.Number() == number {
			return o
		}
	}
	suite.FailNow("order not seeded", number)
	return nil
}

func (suite *UnitOfWorkIntegrationTestSuite) vehicleByNumber(number string) *vehicle.Vehicle {
	all, err := suite.factory.Create().VehicleRepository().GetAll(context.Background())
	suite.Require().NoError(err)
	for _, v := range all {
		if v.Number() == number {
			return v
		}
	}
	suite.FailNow("vehicle not seeded", number)
	return nil
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without begin")
	suite.Require().Error(uow.Rollback(ctx), "rollback without begin")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSeed_ReadsBackInRegistrationOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	vehicles, err := uow.VehicleRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(vehicles, 4)
	suite.Equal("MH-12-AB-1234", vehicles[0].Number())

	pending, err := uow.OrderRepository().GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal("ORD-001", pending[0].Number())
	suite.Equal(500, pending[0].RequiredCapacity())
	suite.Len(pending[0].Products(), 1)

	deliveries, err := uow.DeliveryRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(deliveries, 1)
	suite.Len(deliveries[0].Stops(), 2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentCommitsAllThreeAggregates() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := uow.OrderRepository().Get(ctx, suite.orderByNumber("ORD-001").ID())
	suite.Require().NoError(err)
	v, err := uow.VehicleRepository().Get(ctx, suite.vehicleByNumber("MH-12-AB-1234").ID())
	suite.Require().NoError(err)

	a, err := services.NewAssignmentService().Assign(kernel.NewUUID(), o, v, testNow)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, a.Order))
	suite.Require().NoError(uow.VehicleRepository().Update(ctx, a.Vehicle))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, a.Delivery))
	suite.Equal(3, uow.(*postgres_adapter.GormUnitOfWork).TrackedCount())
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	storedOrder, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, storedOrder.Status())

	storedVehicle, err := reader.VehicleRepository().Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Equal(vehicle.Loading, storedVehicle.Status())
	suite.Equal(500, storedVehicle.CurrentLoad())

	storedDelivery, err := reader.DeliveryRepository().Get(ctx, a.Delivery.ID())
	suite.Require().NoError(err)
	suite.Equal("ORD-001", storedDelivery.OrderNumber())
	suite.Equal(0, storedDelivery.Vehicle().CurrentLoad)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := uow.OrderRepository().Get(ctx, suite.orderByNumber("ORD-001").ID())
	suite.Require().NoError(err)
	suite.Require().NoError(o.Assign())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, stored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_NotFound() {
	ctx := context.Background()
	uow := suite.factory.Create()

	_, err := uow.VehicleRepository().Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = uow.OrderRepository().Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = uow.DeliveryRepository().Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	ghost := suite.vehicleByNumber("MH-15-CD-5678")
	unknown, err := vehicle.RestoreVehicle(kernel.NewUUID(), "MH-99-ZZ-0000", ghost.Type(), ghost.Capacity(),
		0, ghost.Status(), ghost.Driver(), ghost.Location(), testNow)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(uow.VehicleRepository().Update(ctx, unknown), errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestVehicleRepository_UpdateWritesZeroValues() {
	ctx := context.Background()
	repo := suite.factory.Create().VehicleRepository()
	v := suite.vehicleByNumber("MH-04-EF-9012")

	emptied, err := vehicle.RestoreVehicle(v.ID(), v.Number(), v.Type(), v.Capacity(), 0,
		vehicle.Available, v.Driver(), v.Location(), testNow)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Update(ctx, emptied))

	stored, err := repo.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Zero(stored.CurrentLoad())
	suite.Equal(vehicle.Available, stored.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

// Package postgres provides the GORM-based implementation of the Unit of Work pattern
// over PostgreSQL, the durable alternative to the in-memory fleet store.
//
// A unit of work wraps one database transaction. Repositories obtained after Begin run
// inside it and lock the orders and vehicles they read, so two concurrent assignments
// of the same order or vehicle are serialized and the second one re-validates against
// committed state. Repositories obtained without Begin use the plain connection.
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.VehicleRepository().Update(ctx, v); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/deliveryrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// Migrate creates or updates every table of the fleet store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ProductDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.StopDTO{},
	)
}

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the aggregates written
// during it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin twice does not nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction without an active transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction and forgets the
// tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	db, inTx := uow.conn()
	return vehiclerepo.NewGormVehicleRepository(db, uow, inTx)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db, inTx := uow.conn()
	return orderrepo.NewGormOrderRepository(db, uow, inTx)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	db, _ := uow.conn()
	return deliveryrepo.NewGormDeliveryRepository(db, uow)
}

// TrackAggregate registers an aggregate written within this unit of work. Called by
// the repositories on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many aggregates were written since the last rollback.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() (*gorm.DB, bool) {
	if uow.tx != nil {
		return uow.tx, true
	}
	return uow.db, false
}

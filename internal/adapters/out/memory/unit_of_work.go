package memory

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without a matching Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is a copy-on-write transaction over the Store. Repositories obtained
// before Begin read and write the committed state directly.
type UnitOfWork struct {
	store *Store
	tx    *state
}

// Begin waits for other writing units of work to finish, then takes a private copy of
// the committed state. Calling Begin twice is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	if err := uow.store.acquire(ctx); err != nil {
		return err
	}
	uow.tx = uow.store.committed().clone()
	return nil
}

// Commit publishes every change made since Begin at once.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}
	uow.store.swap(uow.tx)
	uow.tx = nil
	uow.store.release()
	return nil
}

// Rollback drops the private copy.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}
	uow.tx = nil
	uow.store.release()
	return nil
}

func (uow *UnitOfWork) VehicleRepository() ports.VehicleRepository {
	return &VehicleRepository{uow: uow}
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return &DeliveryRepository{uow: uow}
}

func (uow *UnitOfWork) read() *state {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.store.committed()
}

func (uow *UnitOfWork) write(ctx context.Context, fn func(*state) error) error {
	if uow.tx != nil {
		return fn(uow.tx)
	}
	return uow.store.autoCommit(ctx, fn)
}

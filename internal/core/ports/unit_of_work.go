package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the fleet store.
// Repositories obtained before Begin, or after Commit/Rollback, read the committed state.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes every change since Begin visible at once.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards every change since Begin.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	VehicleRepository() VehicleRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
}

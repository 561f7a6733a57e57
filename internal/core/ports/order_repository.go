package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order in creation order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllPending returns the orders the assignment wizard may offer.
	GetAllPending(ctx context.Context) ([]*order.Order, error)
}

package ports

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Deliveries are append-only: there is no Update and nothing is ever deleted.
type DeliveryRepository interface {
	// Add appends a new delivery with its stops.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get returns the delivery or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAll returns every delivery in the order they were added.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)
}

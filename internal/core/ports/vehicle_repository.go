// Package ports defines the contracts between the application core and its adapters:
// repositories and unit of work for the fleet store, the wizard session store and the
// event publisher.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle. The vehicle must not already exist.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get returns the vehicle or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAll returns every vehicle in registration order.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)

	// GetAllAvailable returns the vehicles in Available status.
	GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error)
}

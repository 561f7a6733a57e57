package memory

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
)

// VehicleRepository hands out clones, so callers never mutate stored state.
type VehicleRepository struct {
	uow *UnitOfWork
}

func (r *VehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(s *state) error {
		if !s.vehicles.insert(aggregate.ID(), aggregate.Clone()) {
			return errs.NewValueIsInvalidError("vehicle " + aggregate.ID().String() + " already exists")
		}
		return nil
	})
}

func (r *VehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(s *state) error {
		if !s.vehicles.replace(aggregate.ID(), aggregate.Clone()) {
			return errs.NewObjectNotFoundError("vehicle", aggregate.ID())
		}
		return nil
	})
}

func (r *VehicleRepository) Get(_ context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	v, ok := r.uow.read().vehicles.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("vehicle", id)
	}
	return v.Clone(), nil
}

func (r *VehicleRepository) GetAll(_ context.Context) ([]*vehicle.Vehicle, error) {
	return r.uow.read().vehicles.list((*vehicle.Vehicle).Clone, nil), nil
}

func (r *VehicleRepository) GetAllAvailable(_ context.Context) ([]*vehicle.Vehicle, error) {
	return r.uow.read().vehicles.list((*vehicle.Vehicle).Clone, func(v *vehicle.Vehicle) bool {
		return v.Status() == vehicle.Available
	}), nil
}

package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetVehicleQueryIsNotConstructed = errors.New(
	"GetVehicleQuery must be created via NewGetVehicleQuery constructor",
)

// GetVehicleQuery loads one vehicle for its details page.
type GetVehicleQuery struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetVehicleQuery(vehicleID kernel.UUID) (GetVehicleQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetVehicleQuery{}, err
	}
	return GetVehicleQuery{vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleQueryIsNotConstructed)
}

func (q GetVehicleQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

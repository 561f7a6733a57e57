package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSelectVehicleCommandIsNotConstructed = errors.New(
	"SelectVehicleCommand must be created via NewSelectVehicleCommand constructor",
)

// SelectVehicleCommand picks the vehicle of a wizard session.
type SelectVehicleCommand struct {
	sessionID kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSelectVehicleCommand(sessionID, vehicleID kernel.UUID) (SelectVehicleCommand, error) {
	if err := errors.Join(sessionID.Validate(), vehicleID.Validate()); err != nil {
		return SelectVehicleCommand{}, err
	}
	return SelectVehicleCommand{
		sessionID: sessionID,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SelectVehicleCommand) Validate() error {
	return c.guard.Validate(ErrSelectVehicleCommandIsNotConstructed)
}

func (c SelectVehicleCommand) SessionID() kernel.UUID { return c.sessionID }
func (c SelectVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }

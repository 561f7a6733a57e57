package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand or NewAutoAssignVehicleCommand",
)

// AssignVehicleCommand binds a pending order to a vehicle in one step. When built with
// NewAutoAssignVehicleCommand the nearest compatible vehicle is chosen.
//
// Example:
//
//	cmd, err := NewAssignVehicleCommand(orderID, vehicleID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	fmt.Println("delivery", result.DeliveryID)
type AssignVehicleCommand struct {
	orderID   kernel.UUID
	vehicleID kernel.UUID
	auto      bool

	guard guard.ConstructorGuard
}

func NewAssignVehicleCommand(orderID, vehicleID kernel.UUID) (AssignVehicleCommand, error) {
	if err := errors.Join(orderID.Validate(), vehicleID.Validate()); err != nil {
		return AssignVehicleCommand{}, err
	}
	return AssignVehicleCommand{
		orderID:   orderID,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func NewAutoAssignVehicleCommand(orderID kernel.UUID) (AssignVehicleCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignVehicleCommand{}, err
	}
	return AssignVehicleCommand{
		orderID: orderID,
		auto:    true,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

func (c AssignVehicleCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VehicleID is meaningless when IsAuto is true.
func (c AssignVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c AssignVehicleCommand) IsAuto() bool {
	return c.auto
}

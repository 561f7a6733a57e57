package commands

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAddVehicleCommandIsNotConstructed = errors.New(
	"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
)

// AddVehicleCommand registers a vehicle from the fleet form. Every field is required and
// capacity must be positive. The vehicle starts empty at (0, 0) with the given address.
//
// Example:
//
//	cmd, err := NewAddVehicleCommand(kernel.NewUUID(), "MH-12-XY-0001", "Van", 1500,
//	    "Anil Kumar", "+91 90000 12345", "Nagpur Yard", vehicle.Available)
//	if err != nil {
//	    return err // 400 with the joined messages
//	}
type AddVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID   kernel.UUID
	number      string
	kind        string
	capacity    int
	driverName  string
	driverPhone string
	address     string
	status      vehicle.Status

	guard guard.ConstructorGuard
}

// NewAddVehicleCommand validates the form. An Unknown status defaults to Available.
func NewAddVehicleCommand(
	vehicleID kernel.UUID,
	number string,
	kind string,
	capacity int,
	driverName string,
	driverPhone string,
	address string,
	status vehicle.Status,
) (AddVehicleCommand, error) {
	c := AddVehicleCommand{guard: guard.NewConstructorGuard()}

	if status == vehicle.Unknown {
		status = vehicle.Available
	}

	if err := errors.Join(
		c.setVehicleID(vehicleID),
		c.setRequired(&c.number, "vehicle number", number),
		c.setRequired(&c.kind, "type", kind),
		c.setCapacity(capacity),
		c.setRequired(&c.driverName, "driver name", driverName),
		c.setRequired(&c.driverPhone, "driver phone", driverPhone),
		c.setRequired(&c.address, "location", address),
		c.setStatus(status),
	); err != nil {
		return AddVehicleCommand{}, err
	}

	return c, nil
}

func (c AddVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAddVehicleCommandIsNotConstructed)
}

func (c AddVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c AddVehicleCommand) Number() string         { return c.number }
func (c AddVehicleCommand) Type() string           { return c.kind }
func (c AddVehicleCommand) Capacity() int          { return c.capacity }
func (c AddVehicleCommand) DriverName() string     { return c.driverName }
func (c AddVehicleCommand) DriverPhone() string    { return c.driverPhone }
func (c AddVehicleCommand) Address() string        { return c.address }
func (c AddVehicleCommand) Status() vehicle.Status { return c.status }

func (c *AddVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vehicleID = id
	return nil
}

func (c *AddVehicleCommand) setRequired(field *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*field = value
	return nil
}

func (c *AddVehicleCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("capacity must be a positive number, got %d", capacity))
	}
	c.capacity = capacity
	return nil
}

func (c *AddVehicleCommand) setStatus(status vehicle.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrVehicleIsNotConstructed is returned when using a Vehicle not built by a constructor.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrInsufficientCapacity is returned when an order needs more capacity than the vehicle has.
	ErrInsufficientCapacity = errors.New("vehicle capacity is insufficient for the order")
)

// Vehicle is the aggregate root of the fleet.
//
// Business rules:
//   - Vehicle must have a valid UUID, non-empty number and type, positive capacity
//   - Current load is within [0, capacity]
//   - The vehicle can take an order only while Available and with capacity >= required capacity
//
// Example:
//
//	driver, _ := vehicle.NewDriver(kernel.NewUUID(), "Ramesh Patil", "+91 98220 11111", "MH12-2019-0042")
//	loc, _ := kernel.NewLocation(18.5204, 73.8567, "Pune Warehouse")
//	v, err := vehicle.NewVehicle(kernel.NewUUID(), "MH-12-AB-1234", "Truck", 1000, driver, loc, vehicle.Available, now)
type Vehicle struct {
	id          kernel.UUID
	number      string
	kind        string
	capacity    int
	currentLoad int
	status      Status
	driver      Driver
	location    kernel.Location
	lastUpdated time.Time

	guard guard.ConstructorGuard
}

// NewVehicle registers an empty vehicle in the given status.
func NewVehicle(
	id kernel.UUID,
	number string,
	kind string,
	capacity int,
	driver Driver,
	location kernel.Location,
	status Status,
	now time.Time,
) (*Vehicle, error) {
	return RestoreVehicle(id, number, kind, capacity, 0, status, driver, location, now)
}

// RestoreVehicle reconstructs a vehicle with its persisted load and status.
func RestoreVehicle(
	id kernel.UUID,
	number string,
	kind string,
	capacity int,
	currentLoad int,
	status Status,
	driver Driver,
	location kernel.Location,
	lastUpdated time.Time,
) (*Vehicle, error) {
	v := &Vehicle{
		lastUpdated: lastUpdated,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setNumber(number),
		v.setKind(kind),
		v.setCapacity(capacity),
		v.setStatus(status),
		v.setDriver(driver),
		v.setLocation(location),
	); err != nil {
		return nil, err
	}

	if err := v.setCurrentLoad(currentLoad); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate fails for a nil or zero Vehicle.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares vehicles by identity.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Number returns the plate/registration number, e.g. "MH-12-AB-1234".
func (v *Vehicle) Number() string {
	return v.number
}

// Type returns the vehicle type, e.g. "Truck" or "Mini Truck".
func (v *Vehicle) Type() string {
	return v.kind
}

func (v *Vehicle) Capacity() int {
	return v.capacity
}

func (v *Vehicle) CurrentLoad() int {
	return v.currentLoad
}

func (v *Vehicle) Status() Status {
	return v.status
}

func (v *Vehicle) Driver() Driver {
	return v.driver
}

func (v *Vehicle) Location() kernel.Location {
	return v.location
}

func (v *Vehicle) LastUpdated() time.Time {
	return v.lastUpdated
}

// CapacityPercentage is currentLoad / capacity * 100.
func (v *Vehicle) CapacityPercentage() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.currentLoad) / float64(v.capacity) * 100
}

// CanTakeOrder reports whether the vehicle belongs to the compatible set of the order:
// status Available and capacity >= the order's required capacity.
func (v *Vehicle) CanTakeOrder(o *order.Order) (bool, error) {
	if err := errors.Join(v.Validate(), o.Validate()); err != nil {
		return false, err
	}

	return v.status == Available && v.capacity >= o.RequiredCapacity(), nil
}

// TakeOrder starts loading the order: status becomes Loading and the current load is
// overwritten with the order's required capacity.
//
// The vehicle must be Available and large enough; a second order is rejected because
// the vehicle is no longer Available.
func (v *Vehicle) TakeOrder(o *order.Order, now time.Time) error {
	if err := errors.Join(v.Validate(), o.Validate()); err != nil {
		return err
	}

	if v.capacity < o.RequiredCapacity() {
		return fmt.Errorf("%w: capacity %d, required %d", ErrInsufficientCapacity, v.capacity, o.RequiredCapacity())
	}

	newStatus, err := v.status.StartLoading()
	if err != nil {
		return err
	}

	v.status = newStatus
	v.currentLoad = o.RequiredCapacity()
	v.lastUpdated = now
	return nil
}

// Clone returns an independent copy, used by the in-memory store to stage changes.
func (v *Vehicle) Clone() *Vehicle {
	c := *v
	return &c
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("vehicle number")
	}
	v.number = number
	return nil
}

func (v *Vehicle) setKind(kind string) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return errs.NewValueIsRequiredError("type")
	}
	v.kind = kind
	return nil
}

func (v *Vehicle) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	v.capacity = capacity
	return nil
}

// setCurrentLoad runs after setCapacity so the upper bound is known.
func (v *Vehicle) setCurrentLoad(load int) error {
	if load < 0 || load > v.capacity {
		return errs.NewValueIsOutOfRangeError("current load", load, 0, v.capacity)
	}
	v.currentLoad = load
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}

func (v *Vehicle) setDriver(driver Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}
	v.driver = driver
	return nil
}

func (v *Vehicle) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	v.location = location
	return nil
}

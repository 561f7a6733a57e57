package delivery

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

const (
	ProgressMin = 0
	ProgressMax = 100
)

// ErrDeliveryIsNotConstructed is returned for a Delivery not built by a constructor.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via Schedule or RestoreDelivery")

// Delivery is the aggregate root of a vehicle/order pairing in execution.
type Delivery struct {
	id            kernel.UUID
	orderID       kernel.UUID
	vehicleID     kernel.UUID
	orderNumber   string
	vehicle       VehicleSnapshot
	route         string
	status        Status
	progress      int
	eta           time.Time
	startTime     time.Time
	completedTime *time.Time
	stops         []Stop

	guard guard.ConstructorGuard
}

// Schedule creates the delivery produced by assigning o to the snapshotted vehicle:
//   - status Scheduled, progress 0, eta = delivery window end, start time = now
//   - route "<vehicle address> → <destination address>"
//   - a Pickup stop at the vehicle location, Completed at now
//   - a Delivery stop at the order destination, Pending until the window end
func Schedule(id kernel.UUID, o *order.Order, snapshot VehicleSnapshot, now time.Time) (*Delivery, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	windowEnd := o.DeliveryWindow().End()

	pickup, err := NewStop(kernel.NewUUID(), snapshot.Location, StopPickup, StopCompleted, now, &now, "")
	if err != nil {
		return nil, fmt.Errorf("pickup stop: %w", err)
	}
	dropOff, err := NewStop(kernel.NewUUID(), o.Destination(), StopDelivery, StopPending, windowEnd, nil, "")
	if err != nil {
		return nil, fmt.Errorf("delivery stop: %w", err)
	}

	return RestoreDelivery(
		id,
		o.ID(),
		snapshot.ID,
		o.Number(),
		snapshot,
		RouteBetween(snapshot.Location, o.Destination()),
		StatusScheduled,
		ProgressMin,
		windowEnd,
		now,
		nil,
		[]Stop{pickup, dropOff},
	)
}

// RestoreDelivery rebuilds a delivery in any state, for repositories and seed data.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	vehicleID kernel.UUID,
	orderNumber string,
	snapshot VehicleSnapshot,
	route string,
	status Status,
	progress int,
	eta time.Time,
	startTime time.Time,
	completedTime *time.Time,
	stops []Stop,
) (*Delivery, error) {
	d := &Delivery{
		vehicle:   snapshot,
		route:     route,
		eta:       eta,
		startTime: startTime,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setVehicleID(vehicleID),
		d.setOrderNumber(orderNumber),
		d.setStatus(status),
		d.setProgress(progress),
		d.setStops(stops),
	); err != nil {
		return nil, err
	}

	if completedTime != nil {
		ct := *completedTime
		d.completedTime = &ct
	}

	return d, nil
}

// RouteBetween renders the human-readable route of a delivery.
func RouteBetween(from, to kernel.Location) string {
	return from.Address() + " → " + to.Address()
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) VehicleID() kernel.UUID {
	return d.vehicleID
}

func (d *Delivery) OrderNumber() string {
	return d.orderNumber
}

// Vehicle returns the snapshot taken at assignment time.
func (d *Delivery) Vehicle() VehicleSnapshot {
	return d.vehicle
}

func (d *Delivery) Route() string {
	return d.route
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) Progress() int {
	return d.progress
}

func (d *Delivery) ETA() time.Time {
	return d.eta
}

func (d *Delivery) StartTime() time.Time {
	return d.startTime
}

// CompletedTime returns the completion time, if the delivery has completed.
func (d *Delivery) CompletedTime() (time.Time, bool) {
	if d.completedTime == nil {
		return time.Time{}, false
	}
	return *d.completedTime, true
}

// Stops returns a copy of the ordered stops.
func (d *Delivery) Stops() []Stop {
	stops := make([]Stop, len(d.stops))
	copy(stops, d.stops)
	return stops
}

// IsActive reports whether the delivery is Scheduled, In Progress or Delayed.
func (d *Delivery) IsActive() bool {
	return d.status.IsActive()
}

// IsOnTime reports whether a completed delivery finished no later than its eta.
// A delivery without a completion time counts as on time.
func (d *Delivery) IsOnTime() bool {
	if d.status != StatusCompleted || d.completedTime == nil {
		return true
	}
	return !d.completedTime.After(d.eta)
}

// Clone returns an independent copy, used by the in-memory store to stage changes.
func (d *Delivery) Clone() *Delivery {
	c := *d
	c.stops = d.Stops()
	if d.completedTime != nil {
		ct := *d.completedTime
		c.completedTime = &ct
	}
	return &c
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("order id: %w", err)
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("vehicle id: %w", err)
	}
	d.vehicleID = id
	return nil
}

func (d *Delivery) setOrderNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	d.orderNumber = number
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setProgress(progress int) error {
	if progress < ProgressMin || progress > ProgressMax {
		return errs.NewValueIsOutOfRangeError("progress", progress, ProgressMin, ProgressMax)
	}
	d.progress = progress
	return nil
}

func (d *Delivery) setStops(stops []Stop) error {
	for i, s := range stops {
		if err := s.id.Validate(); err != nil {
			return fmt.Errorf("stop %d: %w", i, err)
		}
	}
	d.stops = make([]Stop, len(stops))
	copy(d.stops, stops)
	return nil
}

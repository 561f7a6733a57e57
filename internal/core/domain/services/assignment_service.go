package services

import (
	"errors"
	"slices"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// ErrVehicleNotFound is returned when no vehicle in the candidate list is compatible with
// the order.
var ErrVehicleNotFound = errors.New("no compatible vehicle found")

// Assignment is the outcome of binding an order to a vehicle. Order and Vehicle are the
// mutated aggregates passed in; Delivery is new.
type Assignment struct {
	Order    *order.Order
	Vehicle  *vehicle.Vehicle
	Delivery *delivery.Delivery
}

// AssignmentService decides which vehicles may carry an order and performs the
// assignment.
//
// Business rules:
//   - Only Pending orders can be assigned
//   - A vehicle is compatible when it is Available and its capacity is at least the
//     order's required capacity
//   - Compatible vehicles are offered nearest first
//
// Example usage:
//
//	svc := services.NewAssignmentService()
//	candidates, _ := svc.CompatibleVehicles(o, fleet)
//	result, err := svc.Assign(kernel.NewUUID(), o, candidates[0], time.Now())
type AssignmentService struct{}

func NewAssignmentService() AssignmentService {
	return AssignmentService{}
}

// CompatibleVehicles filters vehicles down to those that can take o, sorted by distance
// to the order destination. Vehicles at equal distance keep their input order.
func (s AssignmentService) CompatibleVehicles(o *order.Order, vehicles []*vehicle.Vehicle) ([]*vehicle.Vehicle, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	type candidate struct {
		v        *vehicle.Vehicle
		distance float64
	}

	candidates := make([]candidate, 0, len(vehicles))
	for _, v := range vehicles {
		ok, err := v.CanTakeOrder(o)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		d, err := v.Location().DistanceKm(o.Destination())
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{v: v, distance: d})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		switch {
		case a.distance < b.distance:
			return -1
		case a.distance > b.distance:
			return 1
		default:
			return 0
		}
	})

	result := make([]*vehicle.Vehicle, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.v)
	}
	return result, nil
}

// FindBestVehicle returns the nearest compatible vehicle.
func (s AssignmentService) FindBestVehicle(o *order.Order, vehicles []*vehicle.Vehicle) (*vehicle.Vehicle, error) {
	compatible, err := s.CompatibleVehicles(o, vehicles)
	if err != nil {
		return nil, err
	}
	if len(compatible) == 0 {
		return nil, ErrVehicleNotFound
	}
	return compatible[0], nil
}

// Assign binds o to v:
//  1. the order becomes Assigned
//  2. the vehicle becomes Loading and its current load is set to the required capacity
//  3. a Scheduled delivery is created with a snapshot of the vehicle as selected
//
// Nothing is changed when o or v do not qualify.
func (s AssignmentService) Assign(
	deliveryID kernel.UUID,
	o *order.Order,
	v *vehicle.Vehicle,
	now time.Time,
) (Assignment, error) {
	if err := deliveryID.Validate(); err != nil {
		return Assignment{}, err
	}
	if err := o.ValidateAssign(); err != nil {
		return Assignment{}, err
	}
	if err := v.Status().ValidateAssign(); err != nil {
		return Assignment{}, err
	}

	snapshot := delivery.SnapshotOf(v)

	d, err := delivery.Schedule(deliveryID, o, snapshot, now)
	if err != nil {
		return Assignment{}, err
	}

	if err = v.TakeOrder(o, now); err != nil {
		return Assignment{}, err
	}

	if err = o.Assign(); err != nil {
		return Assignment{}, err
	}

	return Assignment{Order: o, Vehicle: v, Delivery: d}, nil
}

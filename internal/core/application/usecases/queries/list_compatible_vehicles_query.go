package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/guard"
)

var ErrListCompatibleVehiclesQueryIsNotConstructed = errors.New(
	"ListCompatibleVehiclesQuery must be created via NewListCompatibleVehiclesQuery constructor",
)

// ListCompatibleVehiclesQuery lists the vehicles that can carry an order:
// Available and with capacity of at least the order's required capacity.
type ListCompatibleVehiclesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListCompatibleVehiclesQuery(orderID kernel.UUID) (ListCompatibleVehiclesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListCompatibleVehiclesQuery{}, err
	}
	return ListCompatibleVehiclesQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCompatibleVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListCompatibleVehiclesQueryIsNotConstructed)
}

type ListCompatibleVehiclesQueryResponse struct {
	Order    *order.Order
	Vehicles []*vehicle.Vehicle
}

type ListCompatibleVehiclesQueryHandler struct {
	orders   ports.OrderRepository
	vehicles ports.VehicleRepository
	assigner services.AssignmentService
}

func NewListCompatibleVehiclesQueryHandler(
	orders ports.OrderRepository,
	vehicles ports.VehicleRepository,
) ListCompatibleVehiclesQueryHandler {
	return ListCompatibleVehiclesQueryHandler{
		orders:   orders,
		vehicles: vehicles,
		assigner: services.NewAssignmentService(),
	}
}

// Handle returns the vehicles nearest to the order destination first.
// No compatible vehicle is an empty list, not an error.
func (h ListCompatibleVehiclesQueryHandler) Handle(
	ctx context.Context,
	query ListCompatibleVehiclesQuery,
) (ListCompatibleVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCompatibleVehiclesQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.orderID)
	if err != nil {
		return ListCompatibleVehiclesQueryResponse{}, err
	}

	available, err := h.vehicles.GetAllAvailable(ctx)
	if err != nil {
		return ListCompatibleVehiclesQueryResponse{}, err
	}

	compatible, err := h.assigner.CompatibleVehicles(o, available)
	if err != nil {
		return ListCompatibleVehiclesQueryResponse{}, err
	}

	return ListCompatibleVehiclesQueryResponse{Order: o, Vehicles: compatible}, nil
}

package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/wizard"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/guard"
)

var ErrGetAssignmentSessionQueryIsNotConstructed = errors.New(
	"GetAssignmentSessionQuery must be created via NewGetAssignmentSessionQuery constructor",
)

type GetAssignmentSessionQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAssignmentSessionQuery(sessionID kernel.UUID) (GetAssignmentSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetAssignmentSessionQuery{}, err
	}
	return GetAssignmentSessionQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAssignmentSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentSessionQueryIsNotConstructed)
}

// GetAssignmentSessionQueryResponse is everything the wizard renders for its current step.
// PendingOrders is filled on order-selection, CompatibleVehicles once an order is selected.
type GetAssignmentSessionQueryResponse struct {
	Session            *wizard.Wizard
	SelectedOrder      *order.Order
	SelectedVehicle    *vehicle.Vehicle
	PendingOrders      []*order.Order
	CompatibleVehicles []*vehicle.Vehicle
}

type GetAssignmentSessionQueryHandler struct {
	sessions ports.WizardSessionStore
	orders   ports.OrderRepository
	vehicles ports.VehicleRepository
	assigner services.AssignmentService
}

func NewGetAssignmentSessionQueryHandler(
	sessions ports.WizardSessionStore,
	orders ports.OrderRepository,
	vehicles ports.VehicleRepository,
) GetAssignmentSessionQueryHandler {
	return GetAssignmentSessionQueryHandler{
		sessions: sessions,
		orders:   orders,
		vehicles: vehicles,
		assigner: services.NewAssignmentService(),
	}
}

func (h GetAssignmentSessionQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentSessionQuery,
) (GetAssignmentSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAssignmentSessionQueryResponse{}, err
	}

	w, err := h.sessions.Get(ctx, query.sessionID)
	if err != nil {
		return GetAssignmentSessionQueryResponse{}, err
	}
	res := GetAssignmentSessionQueryResponse{
		Session:            w,
		PendingOrders:      []*order.Order{},
		CompatibleVehicles: []*vehicle.Vehicle{},
	}

	if w.Step() == wizard.StepOrderSelection {
		pending, err := h.orders.GetAllPending(ctx)
		if err != nil {
			return GetAssignmentSessionQueryResponse{}, err
		}
		res.PendingOrders = append(res.PendingOrders, pending...)
	}

	orderID, ok := w.SelectedOrderID()
	if !ok {
		return res, nil
	}
	if res.SelectedOrder, err = h.orders.Get(ctx, orderID); err != nil {
		return GetAssignmentSessionQueryResponse{}, err
	}

	if w.Step() == wizard.StepVehicleSelection {
		available, err := h.vehicles.GetAllAvailable(ctx)
		if err != nil {
			return GetAssignmentSessionQueryResponse{}, err
		}
		if res.CompatibleVehicles, err = h.assigner.CompatibleVehicles(res.SelectedOrder, available); err != nil {
			return GetAssignmentSessionQueryResponse{}, err
		}
	}

	if vehicleID, ok := w.SelectedVehicleID(); ok {
		if res.SelectedVehicle, err = h.vehicles.Get(ctx, vehicleID); err != nil {
			return GetAssignmentSessionQueryResponse{}, err
		}
	}

	return res, nil
}

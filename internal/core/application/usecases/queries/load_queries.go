package queries

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/loadcheck"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ListLoadVehiclesQueryHandler lists the vehicles offered by the load management picker.
type ListLoadVehiclesQueryHandler struct {
	vehicles ports.VehicleRepository
}

func NewListLoadVehiclesQueryHandler(vehicles ports.VehicleRepository) ListLoadVehiclesQueryHandler {
	return ListLoadVehiclesQueryHandler{vehicles: vehicles}
}

func (h ListLoadVehiclesQueryHandler) Handle(ctx context.Context) ([]*vehicle.Vehicle, error) {
	all, err := h.vehicles.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*vehicle.Vehicle, 0, len(all))
	for _, v := range all {
		if v.Status().IsActive() {
			res = append(res, v)
		}
	}
	return res, nil
}

var ErrGetLoadChecklistQueryIsNotConstructed = errors.New(
	"GetLoadChecklistQuery must be created via NewGetLoadChecklistQuery constructor",
)

type GetLoadChecklistQuery struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLoadChecklistQuery(vehicleID kernel.UUID) (GetLoadChecklistQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetLoadChecklistQuery{}, err
	}
	return GetLoadChecklistQuery{vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLoadChecklistQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadChecklistQueryIsNotConstructed)
}

type GetLoadChecklistQueryResponse struct {
	Vehicle   *vehicle.Vehicle
	Checklist *loadcheck.Checklist
	Summary   loadcheck.Summary
}

type GetLoadChecklistQueryHandler struct {
	vehicles   ports.VehicleRepository
	checklists ports.ChecklistStore
}

func NewGetLoadChecklistQueryHandler(
	vehicles ports.VehicleRepository,
	checklists ports.ChecklistStore,
) GetLoadChecklistQueryHandler {
	return GetLoadChecklistQueryHandler{vehicles: vehicles, checklists: checklists}
}

// Handle returns a fresh checklist when the vehicle has none stored yet. The fresh
// checklist is not saved.
func (h GetLoadChecklistQueryHandler) Handle(
	ctx context.Context,
	query GetLoadChecklistQuery,
) (GetLoadChecklistQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadChecklistQueryResponse{}, err
	}

	v, err := h.vehicles.Get(ctx, query.vehicleID)
	if err != nil {
		return GetLoadChecklistQueryResponse{}, err
	}
	if !v.Status().IsActive() {
		return GetLoadChecklistQueryResponse{}, errs.NewValueIsInvalidErrorWithCause(
			"vehicle",
			fmt.Errorf("%s is %s, load checks need Available, Loading or In Transit", v.Number(), v.Status()),
		)
	}

	c, err := h.checklists.Get(ctx, query.vehicleID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		c, err = loadcheck.NewChecklist(query.vehicleID)
	}
	if err != nil {
		return GetLoadChecklistQueryResponse{}, err
	}

	return GetLoadChecklistQueryResponse{Vehicle: v, Checklist: c, Summary: c.Summary()}, nil
}

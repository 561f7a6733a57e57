package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
)

// GetVehicleQueryResponse is the vehicle with the deliveries recorded for it.
type GetVehicleQueryResponse struct {
	Vehicle    *vehicle.Vehicle
	Deliveries []*delivery.Delivery
}

type GetVehicleQueryHandler struct {
	vehicles   ports.VehicleRepository
	deliveries ports.DeliveryRepository
}

func NewGetVehicleQueryHandler(
	vehicles ports.VehicleRepository,
	deliveries ports.DeliveryRepository,
) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{vehicles: vehicles, deliveries: deliveries}
}

// Handle returns an errs.ObjectNotFoundError for an unknown id.
func (h GetVehicleQueryHandler) Handle(ctx context.Context, query GetVehicleQuery) (GetVehicleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVehicleQueryResponse{}, err
	}

	v, err := h.vehicles.Get(ctx, query.VehicleID())
	if err != nil {
		return GetVehicleQueryResponse{}, err
	}

	all, err := h.deliveries.GetAll(ctx)
	if err != nil {
		return GetVehicleQueryResponse{}, err
	}

	own := make([]*delivery.Delivery, 0)
	for _, d := range all {
		if d.VehicleID().IsEqual(v.ID()) {
			own = append(own, d)
		}
	}

	return GetVehicleQueryResponse{Vehicle: v, Deliveries: own}, nil
}

package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
)

// GetTrackerQueryResponse feeds the shipment tracker map.
type GetTrackerQueryResponse struct {
	// Vehicles with a known position. A vehicle at 0,0 has never reported one.
	Vehicles []*vehicle.Vehicle
	// Routes are the deliveries that are on the road: In Progress or Delayed.
	Routes         []*delivery.Delivery
	InTransitCount int
	DelayedCount   int
}

type GetTrackerQueryHandler struct {
	vehicles   ports.VehicleRepository
	deliveries ports.DeliveryRepository
}

func NewGetTrackerQueryHandler(
	vehicles ports.VehicleRepository,
	deliveries ports.DeliveryRepository,
) GetTrackerQueryHandler {
	return GetTrackerQueryHandler{vehicles: vehicles, deliveries: deliveries}
}

func (h GetTrackerQueryHandler) Handle(ctx context.Context) (GetTrackerQueryResponse, error) {
	vs, err := h.vehicles.GetAll(ctx)
	if err != nil {
		return GetTrackerQueryResponse{}, err
	}
	ds, err := h.deliveries.GetAll(ctx)
	if err != nil {
		return GetTrackerQueryResponse{}, err
	}

	res := GetTrackerQueryResponse{
		Vehicles: make([]*vehicle.Vehicle, 0, len(vs)),
		Routes:   make([]*delivery.Delivery, 0),
	}
	for _, v := range vs {
		if v.Status() == vehicle.InTransit {
			res.InTransitCount++
		}
		if v.Location().Lat() != 0 && v.Location().Lng() != 0 {
			res.Vehicles = append(res.Vehicles, v)
		}
	}
	for _, d := range ds {
		switch d.Status() {
		case delivery.StatusInProgress:
			res.Routes = append(res.Routes, d)
		case delivery.StatusDelayed:
			res.DelayedCount++
			res.Routes = append(res.Routes, d)
		}
	}

	return res, nil
}

package queries

import (
	"context"
	"slices"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// RecentDeliveriesLimit caps the recent deliveries list of the dashboard.
const RecentDeliveriesLimit = 5

type GetDashboardQueryResponse struct {
	KPIs             services.DashboardKPIs
	Fleet            services.FleetMetrics
	DeliveryStatus   services.DeliveryStatusSummary
	RecentDeliveries []*delivery.Delivery
}

type GetDashboardQueryHandler struct {
	vehicles   ports.VehicleRepository
	orders     ports.OrderRepository
	deliveries ports.DeliveryRepository
}

func NewGetDashboardQueryHandler(
	vehicles ports.VehicleRepository,
	orders ports.OrderRepository,
	deliveries ports.DeliveryRepository,
) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{vehicles: vehicles, orders: orders, deliveries: deliveries}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context) (GetDashboardQueryResponse, error) {
	vs, err := h.vehicles.GetAll(ctx)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	ords, err := h.orders.GetAll(ctx)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	ds, err := h.deliveries.GetAll(ctx)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return GetDashboardQueryResponse{
		KPIs:             services.ComputeDashboardKPIs(vs, ords, ds),
		Fleet:            services.ComputeFleetMetrics(vs),
		DeliveryStatus:   services.ComputeDeliveryStatus(ds),
		RecentDeliveries: recentDeliveries(ds, RecentDeliveriesLimit),
	}, nil
}

// recentDeliveries returns up to limit deliveries, latest start first.
func recentDeliveries(ds []*delivery.Delivery, limit int) []*delivery.Delivery {
	sorted := slices.Clone(ds)
	slices.SortStableFunc(sorted, func(a, b *delivery.Delivery) int {
		return b.StartTime().Compare(a.StartTime())
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	if sorted == nil {
		sorted = []*delivery.Delivery{}
	}
	return sorted
}

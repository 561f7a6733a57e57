package queries

import (
	"context"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
)

type ListVehiclesQueryHandler struct {
	vehicles ports.VehicleRepository
}

func NewListVehiclesQueryHandler(vehicles ports.VehicleRepository) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{vehicles: vehicles}
}

func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) (ListVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListVehiclesQueryResponse{}, err
	}

	all, err := h.vehicles.GetAll(ctx)
	if err != nil {
		return ListVehiclesQueryResponse{}, err
	}

	status, filtered := query.Status()
	matched := make([]*vehicle.Vehicle, 0, len(all))
	for _, v := range all {
		if filtered && v.Status() != status {
			continue
		}
		if !matchesSearch(query.Search(), v.Number(), v.Driver().Name()) {
			continue
		}
		matched = append(matched, v)
	}

	return ListVehiclesQueryResponse{
		Vehicles: matched,
		Tabs:     vehicleTabs(all),
	}, nil
}

func vehicleTabs(all []*vehicle.Vehicle) []TabCount {
	counts := make(map[vehicle.Status]int)
	for _, v := range all {
		counts[v.Status()]++
	}

	tabs := []TabCount{{Tab: TabAll, Count: len(all)}}
	for _, st := range vehicle.Statuses() {
		tabs = append(tabs, TabCount{Tab: st.String(), Count: counts[st]})
	}
	return tabs
}

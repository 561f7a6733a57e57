package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/ports"
)

type ListDeliveriesQueryHandler struct {
	deliveries ports.DeliveryRepository
}

func NewListDeliveriesQueryHandler(deliveries ports.DeliveryRepository) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{deliveries: deliveries}
}

func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) (ListDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	all, err := h.deliveries.GetAll(ctx)
	if err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	status, filtered := query.Status()
	matched := make([]*delivery.Delivery, 0, len(all))
	for _, d := range all {
		if filtered && d.Status() != status {
			continue
		}
		if !matchesSearch(query.Search(), d.OrderNumber(), d.Vehicle().Number) {
			continue
		}
		matched = append(matched, d)
	}

	counts := make(map[delivery.Status]int)
	for _, d := range all {
		counts[d.Status()]++
	}
	tabs := []TabCount{{Tab: TabAll, Count: len(all)}}
	for _, st := range delivery.Statuses() {
		tabs = append(tabs, TabCount{Tab: st.String(), Count: counts[st]})
	}

	return ListDeliveriesQueryResponse{Deliveries: matched, Tabs: tabs}, nil
}

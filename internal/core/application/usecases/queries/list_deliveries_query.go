package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery is the deliveries screen: search over order number or the vehicle
// number recorded in the delivery, filtered by a status tab.
type ListDeliveriesQuery struct {
	search string
	status *delivery.Status

	guard guard.ConstructorGuard
}

func NewListDeliveriesQuery(search, tab string) (ListDeliveriesQuery, error) {
	q := ListDeliveriesQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}

	if !isAllTab(tab) {
		st, err := delivery.ParseStatus(tab)
		if err != nil {
			return ListDeliveriesQuery{}, err
		}
		q.status = &st
	}

	return q, nil
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

func (q ListDeliveriesQuery) Search() string {
	return q.search
}

func (q ListDeliveriesQuery) Status() (delivery.Status, bool) {
	if q.status == nil {
		return delivery.StatusUnknown, false
	}
	return *q.status, true
}

type ListDeliveriesQueryResponse struct {
	Deliveries []*delivery.Delivery
	Tabs       []TabCount
}

package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders, optionally narrowed to one status.
type ListOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(tab string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if !isAllTab(tab) {
		st, err := order.ParseStatus(tab)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = &st
	}
	return q, nil
}

// NewListPendingOrdersQuery lists the order-selection candidates of the assignment wizard.
func NewListPendingOrdersQuery() ListOrdersQuery {
	st := order.Pending
	return ListOrdersQuery{status: &st, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}

type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle never returns a nil slice, so an empty result renders as [].
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status, filtered := query.Status()

	var (
		all []*order.Order
		err error
	)
	if filtered && status == order.Pending {
		all, err = h.orders.GetAllPending(ctx)
	} else {
		all, err = h.orders.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	res := make([]*order.Order, 0, len(all))
	for _, o := range all {
		if filtered && o.Status() != status {
			continue
		}
		res = append(res, o)
	}
	return res, nil
}

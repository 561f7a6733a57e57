package memory

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(s *state) error {
		if !s.orders.insert(aggregate.ID(), aggregate.Clone()) {
			return errs.NewValueIsInvalidError("order " + aggregate.ID().String() + " already exists")
		}
		return nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(s *state) error {
		if !s.orders.replace(aggregate.ID(), aggregate.Clone()) {
			return errs.NewObjectNotFoundError("order", aggregate.ID())
		}
		return nil
	})
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := r.uow.read().orders.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o.Clone(), nil
}

func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return r.uow.read().orders.list((*order.Order).Clone, nil), nil
}

func (r *OrderRepository) GetAllPending(_ context.Context) ([]*order.Order, error) {
	return r.uow.read().orders.list((*order.Order).Clone, func(o *order.Order) bool {
		return o.Status() == order.Pending
	}), nil
}

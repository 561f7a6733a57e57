package memory

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// DeliveryRepository is append-only: deliveries are never updated or removed.
type DeliveryRepository struct {
	uow *UnitOfWork
}

func (r *DeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(s *state) error {
		if !s.deliveries.insert(aggregate.ID(), aggregate.Clone()) {
			return errs.NewValueIsInvalidError("delivery " + aggregate.ID().String() + " already exists")
		}
		return nil
	})
}

func (r *DeliveryRepository) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	d, ok := r.uow.read().deliveries.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("delivery", id)
	}
	return d.Clone(), nil
}

func (r *DeliveryRepository) GetAll(_ context.Context) ([]*delivery.Delivery, error) {
	return r.uow.read().deliveries.list((*delivery.Delivery).Clone, nil), nil
}

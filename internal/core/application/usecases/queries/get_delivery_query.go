package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery loads one delivery with its stops.
type GetDeliveryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

type GetDeliveryQueryHandler struct {
	deliveries ports.DeliveryRepository
}

func NewGetDeliveryQueryHandler(deliveries ports.DeliveryRepository) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{deliveries: deliveries}
}

// Handle returns an errs.ObjectNotFoundError for an unknown id.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.deliveries.Get(ctx, query.deliveryID)
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// CreateOrderCommandHandler registers new Pending orders.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle creates the order created at the current time.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	o, err := order.NewOrder(
		command.OrderID(),
		command.Number(),
		command.Products(),
		command.Destination(),
		command.RequiredCapacity(),
		command.DeliveryWindow(),
		command.Priority(),
		now,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, h.logger, ports.Event{
		Type:        ports.EventOrderCreated,
		AggregateID: o.ID().String(),
		OccurredAt:  now,
		Payload: map[string]any{
			"orderNumber":      o.Number(),
			"requiredCapacity": o.RequiredCapacity(),
		},
	})

	return nil
}

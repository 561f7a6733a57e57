package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
)

// AddVehicleCommandHandler adds a vehicle to the fleet. No write happens when the
// vehicle cannot be built.
type AddVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewAddVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AddVehicleCommandHandler {
	return AddVehicleCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

func (h AddVehicleCommandHandler) Handle(ctx context.Context, command AddVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	driver, err := vehicle.NewDriver(kernel.NewUUID(), command.DriverName(), command.DriverPhone(), "")
	if err != nil {
		return err
	}

	location, err := kernel.NewLocation(0, 0, command.Address())
	if err != nil {
		return err
	}

	v, err := vehicle.NewVehicle(
		command.VehicleID(),
		command.Number(),
		command.Type(),
		command.Capacity(),
		driver,
		location,
		command.Status(),
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

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, h.logger, ports.Event{
		Type:        ports.EventVehicleAdded,
		AggregateID: v.ID().String(),
		OccurredAt:  now,
		Payload: map[string]any{
			"vehicleNumber": v.Number(),
			"capacity":      v.Capacity(),
			"status":        v.Status().String(),
		},
	})

	return nil
}

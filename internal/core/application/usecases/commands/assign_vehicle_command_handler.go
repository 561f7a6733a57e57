package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// ErrNoCompatibleVehicle is returned by auto-assignment when no vehicle fits the order.
var ErrNoCompatibleVehicle = errors.New("no compatible vehicle for the order")

// AssignVehicleResult identifies what the assignment produced.
type AssignVehicleResult struct {
	OrderID    kernel.UUID
	VehicleID  kernel.UUID
	DeliveryID kernel.UUID
}

// AssignVehicleCommandHandler commits an assignment: the order becomes Assigned, the
// vehicle starts Loading with the order's required capacity and a Scheduled delivery is
// appended, all in one unit of work.
//
// Order and vehicle are re-read inside the unit of work, so a vehicle taken by a
// concurrent assignment is rejected instead of being assigned twice.
//
// Example:
//
//	handler := NewAssignVehicleCommandHandler(uowFactory, publisher, logger)
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order or vehicle
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    // order not Pending or vehicle not Available
//	}
type AssignVehicleCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.AssignmentService
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewAssignVehicleCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewAssignmentService(),
		publisher:  publisher,
		logger:     logger,
	}
}

func (h AssignVehicleCommandHandler) Handle(ctx context.Context, command AssignVehicleCommand) (AssignVehicleResult, error) {
	if err := command.Validate(); err != nil {
		return AssignVehicleResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignVehicleResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	vehicleRepo := uow.VehicleRepository()
	deliveryRepo := uow.DeliveryRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return AssignVehicleResult{}, err
	}

	var v *vehicle.Vehicle
	if command.IsAuto() {
		available, getErr := vehicleRepo.GetAllAvailable(ctx)
		if getErr != nil {
			return AssignVehicleResult{}, getErr
		}
		v, err = h.assigner.FindBestVehicle(o, available)
		if errors.Is(err, services.ErrVehicleNotFound) {
			return AssignVehicleResult{}, ErrNoCompatibleVehicle
		}
	} else {
		v, err = vehicleRepo.Get(ctx, command.VehicleID())
	}
	if err != nil {
		return AssignVehicleResult{}, err
	}

	now := time.Now().UTC()

	assignment, err := h.assigner.Assign(kernel.NewUUID(), o, v, now)
	if err != nil {
		return AssignVehicleResult{}, err
	}

	if err = orderRepo.Update(ctx, assignment.Order); err != nil {
		return AssignVehicleResult{}, err
	}

	if err = vehicleRepo.Update(ctx, assignment.Vehicle); err != nil {
		return AssignVehicleResult{}, err
	}

	if err = deliveryRepo.Add(ctx, assignment.Delivery); err != nil {
		return AssignVehicleResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignVehicleResult{}, err
	}

	d := assignment.Delivery
	publish(ctx, h.publisher, h.logger,
		ports.Event{
			Type:        ports.EventOrderAssigned,
			AggregateID: o.ID().String(),
			OccurredAt:  now,
			Payload:     map[string]any{"orderNumber": o.Number(), "vehicleId": v.ID().String()},
		},
		ports.Event{
			Type:        ports.EventVehicleAssigned,
			AggregateID: v.ID().String(),
			OccurredAt:  now,
			Payload: map[string]any{
				"vehicleNumber": v.Number(),
				"status":        v.Status().String(),
				"currentLoad":   v.CurrentLoad(),
			},
		},
		ports.Event{
			Type:        ports.EventDeliveryScheduled,
			AggregateID: d.ID().String(),
			OccurredAt:  now,
			Payload:     map[string]any{"route": d.Route(), "eta": d.ETA()},
		},
	)

	return AssignVehicleResult{
		OrderID:    o.ID(),
		VehicleID:  v.ID(),
		DeliveryID: d.ID(),
	}, nil
}

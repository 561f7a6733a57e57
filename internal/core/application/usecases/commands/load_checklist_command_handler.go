package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/loadcheck"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ChecklistFor returns the stored checklist of the vehicle, or a fresh one. Only vehicles
// that are Available, Loading or In Transit have a checklist.
func ChecklistFor(
	ctx context.Context,
	vehicles ports.VehicleRepository,
	checklists ports.ChecklistStore,
	vehicleID kernel.UUID,
) (*loadcheck.Checklist, error) {
	v, err := vehicles.Get(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !v.Status().IsActive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"vehicle",
			fmt.Errorf("%s is %s, load checks need Available, Loading or In Transit", v.Number(), v.Status()),
		)
	}

	c, err := checklists.Get(ctx, vehicleID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return loadcheck.NewChecklist(vehicleID)
	}
	return c, err
}

type ToggleLoadItemCommandHandler struct {
	vehicles   ports.VehicleRepository
	checklists ports.ChecklistStore
}

func NewToggleLoadItemCommandHandler(
	vehicles ports.VehicleRepository,
	checklists ports.ChecklistStore,
) ToggleLoadItemCommandHandler {
	return ToggleLoadItemCommandHandler{vehicles: vehicles, checklists: checklists}
}

func (h ToggleLoadItemCommandHandler) Handle(ctx context.Context, command ToggleLoadItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	c, err := ChecklistFor(ctx, h.vehicles, h.checklists, command.VehicleID())
	if err != nil {
		return err
	}

	if err = c.Toggle(command.ItemID()); err != nil {
		return err
	}

	return h.checklists.Save(ctx, c)
}

type SetLoadModeCommandHandler struct {
	vehicles   ports.VehicleRepository
	checklists ports.ChecklistStore
}

func NewSetLoadModeCommandHandler(
	vehicles ports.VehicleRepository,
	checklists ports.ChecklistStore,
) SetLoadModeCommandHandler {
	return SetLoadModeCommandHandler{vehicles: vehicles, checklists: checklists}
}

func (h SetLoadModeCommandHandler) Handle(ctx context.Context, command SetLoadModeCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	c, err := ChecklistFor(ctx, h.vehicles, h.checklists, command.VehicleID())
	if err != nil {
		return err
	}

	if err = c.SetMode(command.Mode()); err != nil {
		return err
	}

	return h.checklists.Save(ctx, c)
}

// ConfirmLoadCommandHandler confirms a checklist. Vehicles, orders and deliveries are
// left unchanged; only the checklist is cleared and a LoadConfirmed event is published.
type ConfirmLoadCommandHandler struct {
	vehicles   ports.VehicleRepository
	checklists ports.ChecklistStore
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewConfirmLoadCommandHandler(
	vehicles ports.VehicleRepository,
	checklists ports.ChecklistStore,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ConfirmLoadCommandHandler {
	return ConfirmLoadCommandHandler{
		vehicles:   vehicles,
		checklists: checklists,
		publisher:  publisher,
		logger:     logger,
	}
}

func (h ConfirmLoadCommandHandler) Handle(ctx context.Context, command ConfirmLoadCommand) (loadcheck.Confirmation, error) {
	if err := command.Validate(); err != nil {
		return loadcheck.Confirmation{}, err
	}

	c, err := ChecklistFor(ctx, h.vehicles, h.checklists, command.VehicleID())
	if err != nil {
		return loadcheck.Confirmation{}, err
	}

	confirmation, err := c.Confirm()
	if err != nil {
		return loadcheck.Confirmation{}, err
	}

	if err = h.checklists.Save(ctx, c); err != nil {
		return loadcheck.Confirmation{}, err
	}

	publish(ctx, h.publisher, h.logger, ports.Event{
		Type:        ports.EventLoadConfirmed,
		AggregateID: command.VehicleID().String(),
		OccurredAt:  time.Now().UTC(),
		Payload: map[string]any{
			"mode":          string(confirmation.Mode),
			"loadedCount":   confirmation.Summary.LoadedCount,
			"totalWeightKg": confirmation.Summary.TotalWeightKg,
			"totalCrates":   confirmation.Summary.TotalCrates,
		},
	})

	return confirmation, nil
}

package commands

import (
	"context"
	"time"

	"logistics/internal/core/ports"
)

type StepBackCommandHandler struct {
	sessions ports.WizardSessionStore
}

func NewStepBackCommandHandler(sessions ports.WizardSessionStore) StepBackCommandHandler {
	return StepBackCommandHandler{sessions: sessions}
}

// Handle never depends on the fleet: going back is allowed even when no vehicle fits.
func (h StepBackCommandHandler) Handle(ctx context.Context, command StepBackCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	w, err := h.sessions.Get(ctx, command.SessionID())
	if err != nil {
		return err
	}

	if err = w.Back(time.Now().UTC()); err != nil {
		return err
	}

	return h.sessions.Save(ctx, w)
}

type ResetAssignmentCommandHandler struct {
	sessions ports.WizardSessionStore
}

func NewResetAssignmentCommandHandler(sessions ports.WizardSessionStore) ResetAssignmentCommandHandler {
	return ResetAssignmentCommandHandler{sessions: sessions}
}

// Handle clears the session; the fleet store is not touched.
func (h ResetAssignmentCommandHandler) Handle(ctx context.Context, command ResetAssignmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	w, err := h.sessions.Get(ctx, command.SessionID())
	if err != nil {
		return err
	}

	w.Reset(time.Now().UTC())

	return h.sessions.Save(ctx, w)
}

// ConfirmAssignmentCommandHandler commits the session's selection through
// AssignVehicleCommandHandler and then resets the session. A failed commit leaves the
// stored session in confirmation.
type ConfirmAssignmentCommandHandler struct {
	sessions ports.WizardSessionStore
	assign   AssignVehicleCommandHandler
}

func NewConfirmAssignmentCommandHandler(
	sessions ports.WizardSessionStore,
	assign AssignVehicleCommandHandler,
) ConfirmAssignmentCommandHandler {
	return ConfirmAssignmentCommandHandler{sessions: sessions, assign: assign}
}

func (h ConfirmAssignmentCommandHandler) Handle(
	ctx context.Context,
	command ConfirmAssignmentCommand,
) (AssignVehicleResult, error) {
	if err := command.Validate(); err != nil {
		return AssignVehicleResult{}, err
	}

	w, err := h.sessions.Get(ctx, command.SessionID())
	if err != nil {
		return AssignVehicleResult{}, err
	}

	sel, err := w.Confirm(time.Now().UTC())
	if err != nil {
		return AssignVehicleResult{}, err
	}

	assignCmd, err := NewAssignVehicleCommand(sel.OrderID, sel.VehicleID)
	if err != nil {
		return AssignVehicleResult{}, err
	}

	result, err := h.assign.Handle(ctx, assignCmd)
	if err != nil {
		return AssignVehicleResult{}, err
	}

	if err = h.sessions.Save(ctx, w); err != nil {
		return AssignVehicleResult{}, err
	}

	return result, nil
}

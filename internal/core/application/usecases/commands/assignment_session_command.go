package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrStepBackCommandIsNotConstructed = errors.New(
		"StepBackCommand must be created via NewStepBackCommand constructor",
	)
	ErrResetAssignmentCommandIsNotConstructed = errors.New(
		"ResetAssignmentCommand must be created via NewResetAssignmentCommand constructor",
	)
	ErrConfirmAssignmentCommandIsNotConstructed = errors.New(
		"ConfirmAssignmentCommand must be created via NewConfirmAssignmentCommand constructor",
	)
)

// sessionCommand carries the wizard session a command applies to.
type sessionCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func newSessionCommand(sessionID kernel.UUID) (sessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return sessionCommand{}, err
	}
	return sessionCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c sessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// StepBackCommand returns a session from vehicle selection to order selection.
type StepBackCommand struct{ sessionCommand }

func NewStepBackCommand(sessionID kernel.UUID) (StepBackCommand, error) {
	c, err := newSessionCommand(sessionID)
	return StepBackCommand{c}, err
}

func (c StepBackCommand) Validate() error {
	return c.guard.Validate(ErrStepBackCommandIsNotConstructed)
}

// ResetAssignmentCommand discards the selections of a session from any step.
type ResetAssignmentCommand struct{ sessionCommand }

func NewResetAssignmentCommand(sessionID kernel.UUID) (ResetAssignmentCommand, error) {
	c, err := newSessionCommand(sessionID)
	return ResetAssignmentCommand{c}, err
}

func (c ResetAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrResetAssignmentCommandIsNotConstructed)
}

// ConfirmAssignmentCommand commits the selection of a session in confirmation.
type ConfirmAssignmentCommand struct{ sessionCommand }

func NewConfirmAssignmentCommand(sessionID kernel.UUID) (ConfirmAssignmentCommand, error) {
	c, err := newSessionCommand(sessionID)
	return ConfirmAssignmentCommand{c}, err
}

func (c ConfirmAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmAssignmentCommandIsNotConstructed)
}

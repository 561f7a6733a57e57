package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrStartAssignmentCommandIsNotConstructed = errors.New(
	"StartAssignmentCommand must be created via NewStartAssignmentCommand constructor",
)

// StartAssignmentCommand opens a new assignment wizard session at order selection.
type StartAssignmentCommand struct {
	guard guard.ConstructorGuard
}

func NewStartAssignmentCommand() StartAssignmentCommand {
	return StartAssignmentCommand{guard: guard.NewConstructorGuard()}
}

func (c StartAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrStartAssignmentCommandIsNotConstructed)
}

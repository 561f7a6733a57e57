package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/loadcheck"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrToggleLoadItemCommandIsNotConstructed = errors.New(
		"ToggleLoadItemCommand must be created via NewToggleLoadItemCommand constructor",
	)
	ErrSetLoadModeCommandIsNotConstructed = errors.New(
		"SetLoadModeCommand must be created via NewSetLoadModeCommand constructor",
	)
	ErrConfirmLoadCommandIsNotConstructed = errors.New(
		"ConfirmLoadCommand must be created via NewConfirmLoadCommand constructor",
	)
)

// ToggleLoadItemCommand flips one line of a vehicle's checklist.
type ToggleLoadItemCommand struct {
	vehicleID kernel.UUID
	itemID    string

	guard guard.ConstructorGuard
}

func NewToggleLoadItemCommand(vehicleID kernel.UUID, itemID string) (ToggleLoadItemCommand, error) {
	itemID = strings.TrimSpace(itemID)

	var itemErr error
	if itemID == "" {
		itemErr = errs.NewValueIsRequiredError("item id")
	}
	if err := errors.Join(vehicleID.Validate(), itemErr); err != nil {
		return ToggleLoadItemCommand{}, err
	}

	return ToggleLoadItemCommand{vehicleID: vehicleID, itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleLoadItemCommand) Validate() error {
	return c.guard.Validate(ErrToggleLoadItemCommandIsNotConstructed)
}

func (c ToggleLoadItemCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c ToggleLoadItemCommand) ItemID() string         { return c.itemID }

// SetLoadModeCommand switches a vehicle's checklist between loading and unloading.
type SetLoadModeCommand struct {
	vehicleID kernel.UUID
	mode      loadcheck.Mode

	guard guard.ConstructorGuard
}

func NewSetLoadModeCommand(vehicleID kernel.UUID, mode loadcheck.Mode) (SetLoadModeCommand, error) {
	if err := errors.Join(vehicleID.Validate(), mode.Validate()); err != nil {
		return SetLoadModeCommand{}, err
	}
	return SetLoadModeCommand{vehicleID: vehicleID, mode: mode, guard: guard.NewConstructorGuard()}, nil
}

func (c SetLoadModeCommand) Validate() error {
	return c.guard.Validate(ErrSetLoadModeCommandIsNotConstructed)
}

func (c SetLoadModeCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c SetLoadModeCommand) Mode() loadcheck.Mode   { return c.mode }

// ConfirmLoadCommand accepts the checked lines of a vehicle's checklist.
type ConfirmLoadCommand struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmLoadCommand(vehicleID kernel.UUID) (ConfirmLoadCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return ConfirmLoadCommand{}, err
	}
	return ConfirmLoadCommand{vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

func (c ConfirmLoadCommand) Validate() error {
	return c.guard.Validate(ErrConfirmLoadCommandIsNotConstructed)
}

func (c ConfirmLoadCommand) VehicleID() kernel.UUID { return c.vehicleID }

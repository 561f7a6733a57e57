package wizard

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrWizardIsNotConstructed is returned for a Wizard not built by Start or Restore.
	ErrWizardIsNotConstructed = errors.New("Wizard must be created via Start constructor")
	// ErrInvalidTransition is returned when an action is not allowed in the current step.
	ErrInvalidTransition = errors.New("action is not allowed in the current step")
	// ErrVehicleIsNotCompatible is returned when the vehicle is not Available or too small.
	ErrVehicleIsNotCompatible = errs.NewValueIsInvalidErrorWithCause(
		"vehicle",
		errors.New("vehicle must be Available with capacity of at least the required capacity"),
	)
)

// Selection is the order/vehicle pair handed over on Confirm.
type Selection struct {
	OrderID   kernel.UUID
	VehicleID kernel.UUID
}

// Wizard is one operator's assignment session.
type Wizard struct {
	id        kernel.UUID
	step      Step
	orderID   *kernel.UUID
	vehicleID *kernel.UUID
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// Start opens a session at order selection.
func Start(id kernel.UUID, now time.Time) (*Wizard, error) {
	return Restore(id, StepOrderSelection, nil, nil, now)
}

// Restore rebuilds a persisted session. The selections must match the step: vehicle
// selection needs an order, confirmation needs both.
func Restore(id kernel.UUID, step Step, orderID, vehicleID *kernel.UUID, updatedAt time.Time) (*Wizard, error) {
	if err := errors.Join(id.Validate(), step.Validate()); err != nil {
		return nil, err
	}

	switch {
	case step == StepVehicleSelection && orderID == nil:
		return nil, errs.NewValueIsRequiredError("selected order")
	case step == StepConfirmation && (orderID == nil || vehicleID == nil):
		return nil, errs.NewValueIsRequiredError("selected order and vehicle")
	}

	return &Wizard{
		id:        id,
		step:      step,
		orderID:   copyID(orderID),
		vehicleID: copyID(vehicleID),
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (w *Wizard) Validate() error {
	if w == nil {
		return ErrWizardIsNotConstructed
	}
	return w.guard.Validate(ErrWizardIsNotConstructed)
}

func (w *Wizard) ID() kernel.UUID {
	return w.id
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) UpdatedAt() time.Time {
	return w.updatedAt
}

// SelectedOrderID returns the chosen order, if any.
func (w *Wizard) SelectedOrderID() (kernel.UUID, bool) {
	if w.orderID == nil {
		return kernel.UUID{}, false
	}
	return *w.orderID, true
}

// SelectedVehicleID returns the chosen vehicle, if any.
func (w *Wizard) SelectedVehicleID() (kernel.UUID, bool) {
	if w.vehicleID == nil {
		return kernel.UUID{}, false
	}
	return *w.vehicleID, true
}

// SelectOrder picks a Pending order and moves to vehicle selection.
func (w *Wizard) SelectOrder(o *order.Order, now time.Time) error {
	if err := errors.Join(w.Validate(), o.Validate()); err != nil {
		return err
	}
	if w.step != StepOrderSelection {
		return w.transitionError("select order")
	}
	if err := o.ValidateAssign(); err != nil {
		return err
	}

	id := o.ID()
	w.orderID = &id
	w.vehicleID = nil
	w.step = StepVehicleSelection
	w.updatedAt = now
	return nil
}

// SelectVehicle picks a vehicle compatible with the selected order o and moves to
// confirmation.
func (w *Wizard) SelectVehicle(o *order.Order, v *vehicle.Vehicle, now time.Time) error {
	if err := errors.Join(o.Validate(), v.Validate()); err != nil {
		return err
	}
	if err := w.ValidateSelectVehicle(); err != nil {
		return err
	}
	if w.orderID == nil || !w.orderID.IsEqual(o.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("%s is not the selected order", o.Number()))
	}

	ok, err := v.CanTakeOrder(o)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVehicleIsNotCompatible
	}

	id := v.ID()
	w.vehicleID = &id
	w.step = StepConfirmation
	w.updatedAt = now
	return nil
}

// ValidateSelectVehicle checks that the session is waiting for a vehicle.
func (w *Wizard) ValidateSelectVehicle() error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.step != StepVehicleSelection || w.orderID == nil {
		return w.transitionError("select vehicle")
	}
	return nil
}

// Back returns from vehicle selection to order selection. The order stays highlighted
// until another one is picked.
func (w *Wizard) Back(now time.Time) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.step != StepVehicleSelection {
		return w.transitionError("go back")
	}

	w.step = StepOrderSelection
	w.updatedAt = now
	return nil
}

// Confirm hands over the selection and resets the session. The caller commits the
// assignment and persists the reset session only if the commit succeeds.
func (w *Wizard) Confirm(now time.Time) (Selection, error) {
	if err := w.Validate(); err != nil {
		return Selection{}, err
	}
	if w.step != StepConfirmation {
		return Selection{}, w.transitionError("confirm")
	}

	sel := Selection{OrderID: *w.orderID, VehicleID: *w.vehicleID}
	w.Reset(now)
	return sel, nil
}

// Reset discards both selections and returns to order selection.
func (w *Wizard) Reset(now time.Time) {
	w.step = StepOrderSelection
	w.orderID = nil
	w.vehicleID = nil
	w.updatedAt = now
}

func (w *Wizard) transitionError(action string) error {
	return fmt.Errorf("%w: cannot %s in step %s", ErrInvalidTransition, action, w.step)
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

// Clone returns an independent copy.
func (w *Wizard) Clone() *Wizard {
	c := *w
	c.orderID = copyID(w.orderID)
	c.vehicleID = copyID(w.vehicleID)
	return &c
}

package wizard

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Step is the current screen of the wizard.
type Step string

const (
	StepOrderSelection   Step = "order-selection"
	StepVehicleSelection Step = "vehicle-selection"
	StepConfirmation     Step = "confirmation"
)

func (s Step) Validate() error {
	switch s {
	case StepOrderSelection, StepVehicleSelection, StepConfirmation:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%q is not a wizard step", string(s)))
	}
}

// Number is the 1-based position shown in the progress indicator.
func (s Step) Number() int {
	switch s {
	case StepOrderSelection:
		return 1
	case StepVehicleSelection:
		return 2
	case StepConfirmation:
		return 3
	default:
		return 0
	}
}

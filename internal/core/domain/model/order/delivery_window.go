package order

import (
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
)

// DeliveryWindow is the interval in which the customer expects the goods. Its end
// becomes the ETA of the delivery created at assignment.
type DeliveryWindow struct {
	start time.Time
	end   time.Time
}

func NewDeliveryWindow(start, end time.Time) (DeliveryWindow, error) {
	if start.IsZero() || end.IsZero() {
		return DeliveryWindow{}, errs.NewValueIsRequiredError("delivery window")
	}
	if end.Before(start) {
		return DeliveryWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery window",
			fmt.Errorf("end %s is before start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
		)
	}
	return DeliveryWindow{start: start, end: end}, nil
}

func (w DeliveryWindow) Start() time.Time { return w.start }
func (w DeliveryWindow) End() time.Time   { return w.end }

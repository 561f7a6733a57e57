package delivery

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the execution state of a delivery.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota
	StatusScheduled
	StatusInProgress
	StatusDelayed
	StatusCompleted
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusScheduled:  "Scheduled",
		StatusInProgress: "In Progress",
		StatusDelayed:    "Delayed",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

// Statuses lists the valid statuses in tab order.
func Statuses() []Status {
	return []Status{StatusScheduled, StatusInProgress, StatusDelayed, StatusCompleted, StatusCancelled}
}

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if st.String() == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", s))
}

func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the delivery still occupies its vehicle (Scheduled, In Progress
// or Delayed).
func (s Status) IsActive() bool {
	return s == StatusScheduled || s == StatusInProgress || s == StatusDelayed
}

// StopType tells pickups from drop-offs.
type StopType string

const (
	StopPickup   StopType = "Pickup"
	StopDelivery StopType = "Delivery"
)

func (t StopType) Validate() error {
	switch t {
	case StopPickup, StopDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stop type", fmt.Errorf("%q is not a stop type", string(t)))
	}
}

// StopStatus is the progress of a single stop.
type StopStatus string

const (
	StopPending   StopStatus = "Pending"
	StopCompleted StopStatus = "Completed"
	StopSkipped   StopStatus = "Skipped"
)

func (s StopStatus) Validate() error {
	switch s {
	case StopPending, StopCompleted, StopSkipped:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stop status", fmt.Errorf("%q is not a stop status", string(s)))
	}
}

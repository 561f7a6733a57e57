package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
//	Pending ──> Assigned ──> In Progress ──> Completed
//
// An order leaves Pending only through the vehicle assignment workflow.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending orders wait for a vehicle and are the only ones offered for assignment.
	Pending

	// Assigned orders are bound to a vehicle through a scheduled delivery.
	Assigned

	// InProgress orders are on the road.
	InProgress

	// Completed is final.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Assigned:   "Assigned",
		InProgress: "In Progress",
		Completed:  "Completed",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Assigned, InProgress, Completed}
}

// ParseStatus converts a display name such as "In Progress" back to a Status.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if st.String() == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAssign checks, without side effects, that the order may be assigned.
//
//	if err := o.Status().ValidateAssign(); err != nil {
//	    // not selectable in the assignment wizard
//	}
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// Assign transitions Pending -> Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}

	return Assigned, nil
}

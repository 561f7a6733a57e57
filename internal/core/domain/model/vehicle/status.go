package vehicle

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the operational state of a vehicle.
//
//	Available ──> Loading ──> In Transit ──> Unloading ──> Available
//	     │                                                    ▲
//	     └──────────────> Maintenance ────────────────────────┘
//
// Only the Available ──> Loading edge is driven by the assignment workflow; the
// remaining states are set by fleet operators and seed data.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Available
	InTransit
	Loading
	Unloading
	Maintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Available:   "Available",
		InTransit:   "In Transit",
		Loading:     "Loading",
		Unloading:   "Unloading",
		Maintenance: "Maintenance",
	}
}

// Statuses lists the valid statuses in the order the fleet view shows its tabs.
func Statuses() []Status {
	return []Status{Available, InTransit, Loading, Unloading, Maintenance}
}

// ParseStatus converts the display name ("In Transit") back to a Status.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if st.String() == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a vehicle status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Maintenance {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid vehicle status", s))
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

// ValidateAssign checks that a vehicle in this status may be bound to an order.
func (s Status) ValidateAssign() error {
	if s != Available {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// StartLoading transitions Available -> Loading.
func (s Status) StartLoading() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}
	return Loading, nil
}

// IsActive reports whether the vehicle is selectable on the load management screen.
func (s Status) IsActive() bool {
	return s == Available || s == Loading || s == InTransit
}

package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Priority ranks orders for operators; it does not influence vehicle compatibility.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

func (p Priority) Validate() error {
	if p < PriorityHigh || p > PriorityLow {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// ParsePriority converts "High", "Medium" or "Low" to a Priority.
func ParsePriority(s string) (Priority, error) {
	for _, p := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		if p.String() == s {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a priority", s))
}

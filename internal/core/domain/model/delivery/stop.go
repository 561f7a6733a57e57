package delivery

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Stop is a single pickup or drop-off point within a delivery's route.
type Stop struct {
	id            kernel.UUID
	location      kernel.Location
	kind          StopType
	status        StopStatus
	scheduledTime time.Time
	actualTime    *time.Time
	notes         string
}

// NewStop validates a stop. A nil actualTime means the stop has not been reached yet.
func NewStop(
	id kernel.UUID,
	location kernel.Location,
	kind StopType,
	status StopStatus,
	scheduledTime time.Time,
	actualTime *time.Time,
	notes string,
) (Stop, error) {
	var scheduledErr error
	if scheduledTime.IsZero() {
		scheduledErr = errs.NewValueIsRequiredError("scheduled time")
	}

	if err := errors.Join(id.Validate(), location.Validate(), kind.Validate(), status.Validate(), scheduledErr); err != nil {
		return Stop{}, err
	}

	s := Stop{
		id:            id,
		location:      location,
		kind:          kind,
		status:        status,
		scheduledTime: scheduledTime,
		notes:         strings.TrimSpace(notes),
	}
	if actualTime != nil {
		at := *actualTime
		s.actualTime = &at
	}
	return s, nil
}

func (s Stop) ID() kernel.UUID           { return s.id }
func (s Stop) Location() kernel.Location { return s.location }
func (s Stop) Type() StopType            { return s.kind }
func (s Stop) Status() StopStatus        { return s.status }
func (s Stop) ScheduledTime() time.Time  { return s.scheduledTime }
func (s Stop) Notes() string             { return s.notes }

// ActualTime returns the time the stop was reached, if it was.
func (s Stop) ActualTime() (time.Time, bool) {
	if s.actualTime == nil {
		return time.Time{}, false
	}
	return *s.actualTime, true
}

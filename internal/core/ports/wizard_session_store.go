package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/loadcheck"
	"logistics/internal/core/domain/model/wizard"
)

// WizardSessionStore keeps assignment wizard sessions between requests.
type WizardSessionStore interface {
	// Save creates or replaces the session.
	Save(ctx context.Context, session *wizard.Wizard) error

	// Get returns the session or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*wizard.Wizard, error)
}

// ChecklistStore keeps one load checklist per vehicle.
type ChecklistStore interface {
	// Save creates or replaces the checklist of its vehicle.
	Save(ctx context.Context, checklist *loadcheck.Checklist) error

	// Get returns the checklist of the vehicle or an errs.ObjectNotFoundError.
	Get(ctx context.Context, vehicleID kernel.UUID) (*loadcheck.Checklist, error)
}

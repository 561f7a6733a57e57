package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/wizard"
	"logistics/internal/core/ports"
)

type StartAssignmentCommandHandler struct {
	sessions ports.WizardSessionStore
}

func NewStartAssignmentCommandHandler(sessions ports.WizardSessionStore) StartAssignmentCommandHandler {
	return StartAssignmentCommandHandler{sessions: sessions}
}

// Handle returns the id of the new session.
func (h StartAssignmentCommandHandler) Handle(ctx context.Context, command StartAssignmentCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	w, err := wizard.Start(kernel.NewUUID(), time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.sessions.Save(ctx, w); err != nil {
		return kernel.UUID{}, err
	}

	return w.ID(), nil
}

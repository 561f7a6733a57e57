package memory

import (
	"context"
	"sync"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/loadcheck"
	"logistics/internal/core/domain/model/wizard"
	"logistics/internal/pkg/errs"
)

// WizardSessionStore keeps assignment wizard sessions until Expire drops them.
type WizardSessionStore struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*wizard.Wizard
}

func NewWizardSessionStore() *WizardSessionStore {
	return &WizardSessionStore{sessions: make(map[kernel.UUID]*wizard.Wizard)}
}

func (s *WizardSessionStore) Save(_ context.Context, session *wizard.Wizard) error {
	if err := session.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID()] = session.Clone()
	return nil
}

func (s *WizardSessionStore) Get(_ context.Context, id kernel.UUID) (*wizard.Wizard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("assignment session", id)
	}
	return w.Clone(), nil
}

// Expire drops the sessions last updated before cutoff and reports how many went.
func (s *WizardSessionStore) Expire(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, w := range s.sessions {
		if w.UpdatedAt().Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

// ChecklistStore keeps one load checklist per vehicle.
type ChecklistStore struct {
	mu         sync.RWMutex
	checklists map[kernel.UUID]*loadcheck.Checklist
}

func NewChecklistStore() *ChecklistStore {
	return &ChecklistStore{checklists: make(map[kernel.UUID]*loadcheck.Checklist)}
}

func (s *ChecklistStore) Save(_ context.Context, checklist *loadcheck.Checklist) error {
	if err := checklist.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checklists[checklist.VehicleID()] = checklist.Clone()
	return nil
}

func (s *ChecklistStore) Get(_ context.Context, vehicleID kernel.UUID) (*loadcheck.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.checklists[vehicleID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("load checklist", vehicleID)
	}
	return c.Clone(), nil
}

// Package redis keeps assignment wizard sessions and load checklists in Redis, so they
// survive restarts and are shared between server instances.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/loadcheck"
	"logistics/internal/core/domain/model/wizard"
	"logistics/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix   = "logistics:wizard:"
	checklistKeyPrefix = "logistics:checklist:"
)

type sessionDTO struct {
	ID        string    `json:"id"`
	Step      string    `json:"step"`
	OrderID   string    `json:"orderId,omitempty"`
	VehicleID string    `json:"vehicleId,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WizardSessionStore expires a session ttl after its last save.
type WizardSessionStore struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

func NewWizardSessionStore(client goredis.UniversalClient, ttl time.Duration) *WizardSessionStore {
	return &WizardSessionStore{client: client, ttl: ttl}
}

func (s *WizardSessionStore) Save(ctx context.Context, session *wizard.Wizard) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := sessionDTO{
		ID:        session.ID().String(),
		Step:      string(session.Step()),
		UpdatedAt: session.UpdatedAt(),
	}
	if id, ok := session.SelectedOrderID(); ok {
		dto.OrderID = id.String()
	}
	if id, ok := session.SelectedVehicleID(); ok {
		dto.VehicleID = id.String()
	}

	body, err := json.Marshal(dto)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+dto.ID, body, s.ttl).Err()
}

func (s *WizardSessionStore) Get(ctx context.Context, id kernel.UUID) (*wizard.Wizard, error) {
	body, err := s.client.Get(ctx, sessionKeyPrefix+id.String()).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, errs.NewObjectNotFoundError("assignment session", id)
	}
	if err != nil {
		return nil, err
	}

	var dto sessionDTO
	if err = json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("decode assignment session %s: %w", id, err)
	}

	orderID, err := optionalID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := optionalID(dto.VehicleID)
	if err != nil {
		return nil, err
	}

	return wizard.Restore(id, wizard.Step(dto.Step), orderID, vehicleID, dto.UpdatedAt)
}

func optionalID(s string) (*kernel.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

type checklistDTO struct {
	Mode   string   `json:"mode"`
	Loaded []string `json:"loaded"`
}

// ChecklistStore keeps one checklist per vehicle without expiry.
type ChecklistStore struct {
	client goredis.UniversalClient
}

func NewChecklistStore(client goredis.UniversalClient) *ChecklistStore {
	return &ChecklistStore{client: client}
}

func (s *ChecklistStore) Save(ctx context.Context, checklist *loadcheck.Checklist) error {
	if err := checklist.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(checklistDTO{
		Mode:   string(checklist.Mode()),
		Loaded: checklist.LoadedItemIDs(),
	})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, checklistKeyPrefix+checklist.VehicleID().String(), body, 0).Err()
}

func (s *ChecklistStore) Get(ctx context.Context, vehicleID kernel.UUID) (*loadcheck.Checklist, error) {
	body, err := s.client.Get(ctx, checklistKeyPrefix+vehicleID.String()).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, errs.NewObjectNotFoundError("load checklist", vehicleID)
	}
	if err != nil {
		return nil, err
	}

	var dto checklistDTO
	if err = json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("decode load checklist %s: %w", vehicleID, err)
	}

	return loadcheck.RestoreChecklist(vehicleID, loadcheck.Mode(dto.Mode), dto.Loaded)
}

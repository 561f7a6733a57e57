package ports

import (
	"context"
	"time"
)

// EventType names a committed change.
type EventType string

const (
	EventVehicleAdded      EventType = "VehicleAdded"
	EventOrderCreated      EventType = "OrderCreated"
	EventVehicleAssigned   EventType = "VehicleAssigned"
	EventOrderAssigned     EventType = "OrderAssigned"
	EventDeliveryScheduled EventType = "DeliveryScheduled"
	EventLoadConfirmed     EventType = "LoadConfirmed"
)

// Event is the message sent to subscribers after a successful commit.
type Event struct {
	Type        EventType      `json:"type"`
	AggregateID string         `json:"aggregateId"`
	OccurredAt  time.Time      `json:"occurredAt"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// EventPublisher delivers events to external subscribers. Command handlers log publish
// errors and do not fail the command.
type EventPublisher interface {
	Publish(ctx context.Context, events ...Event) error
}

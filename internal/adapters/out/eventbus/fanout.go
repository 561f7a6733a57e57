// Package eventbus combines event publishers.
package eventbus

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/ports"
)

// Fanout delivers every event to all of its publishers. A failing publisher does not
// stop the others; the errors are joined.
type Fanout struct {
	publishers []ports.EventPublisher
}

func NewFanout(publishers ...ports.EventPublisher) *Fanout {
	nonNil := make([]ports.EventPublisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			nonNil = append(nonNil, p)
		}
	}
	return &Fanout{publishers: nonNil}
}

func (f *Fanout) Publish(ctx context.Context, events ...ports.Event) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogPublisher writes events to the structured log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...ports.Event) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "event",
			slog.String("type", string(e.Type)),
			slog.String("aggregate_id", e.AggregateID),
			slog.Time("occurred_at", e.OccurredAt))
	}
	return nil
}

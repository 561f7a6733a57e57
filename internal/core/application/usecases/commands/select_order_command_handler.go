package commands

import (
	"context"
	"time"

	"logistics/internal/core/ports"
)

// SelectOrderCommandHandler moves a session to vehicle selection. Only Pending orders
// are accepted.
type SelectOrderCommandHandler struct {
	sessions ports.WizardSessionStore
	orders   ports.OrderRepository
}

func NewSelectOrderCommandHandler(
	sessions ports.WizardSessionStore,
	orders ports.OrderRepository,
) SelectOrderCommandHandler {
	return SelectOrderCommandHandler{sessions: sessions, orders: orders}
}

func (h SelectOrderCommandHandler) Handle(ctx context.Context, command SelectOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	w, err := h.sessions.Get(ctx, command.SessionID())
	if err != nil {
		return err
	}

	o, err := h.orders.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = w.SelectOrder(o, time.Now().UTC()); err != nil {
		return err
	}

	return h.sessions.Save(ctx, w)
}

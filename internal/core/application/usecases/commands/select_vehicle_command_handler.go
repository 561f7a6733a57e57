package commands

import (
	"context"
	"time"

	"logistics/internal/core/ports"
)

// SelectVehicleCommandHandler moves a session to confirmation. The vehicle must be
// compatible with the selected order.
type SelectVehicleCommandHandler struct {
	sessions ports.WizardSessionStore
	orders   ports.OrderRepository
	vehicles ports.VehicleRepository
}

func NewSelectVehicleCommandHandler(
	sessions ports.WizardSessionStore,
	orders ports.OrderRepository,
	vehicles ports.VehicleRepository,
) SelectVehicleCommandHandler {
	return SelectVehicleCommandHandler{sessions: sessions, orders: orders, vehicles: vehicles}
}

func (h SelectVehicleCommandHandler) Handle(ctx context.Context, command SelectVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	w, err := h.sessions.Get(ctx, command.SessionID())
	if err != nil {
		return err
	}

	if err = w.ValidateSelectVehicle(); err != nil {
		return err
	}
	orderID, _ := w.SelectedOrderID()

	o, err := h.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}

	v, err := h.vehicles.Get(ctx, command.VehicleID())
	if err != nil {
		return err
	}

	if err = w.SelectVehicle(o, v, time.Now().UTC()); err != nil {
		return err
	}

	return h.sessions.Save(ctx, w)
}

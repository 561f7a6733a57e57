package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSelectOrderCommandIsNotConstructed = errors.New(
	"SelectOrderCommand must be created via NewSelectOrderCommand constructor",
)

// SelectOrderCommand picks the order of a wizard session.
type SelectOrderCommand struct {
	sessionID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewSelectOrderCommand(sessionID, orderID kernel.UUID) (SelectOrderCommand, error) {
	if err := errors.Join(sessionID.Validate(), orderID.Validate()); err != nil {
		return SelectOrderCommand{}, err
	}
	return SelectOrderCommand{
		sessionID: sessionID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SelectOrderCommand) Validate() error {
	return c.guard.Validate(ErrSelectOrderCommandIsNotConstructed)
}

func (c SelectOrderCommand) SessionID() kernel.UUID { return c.sessionID }
func (c SelectOrderCommand) OrderID() kernel.UUID   { return c.orderID }

package commands

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new Pending order.
//
// Example:
//
//	window, _ := order.NewDeliveryWindow(start, end)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "ORD-2025-010", destination, 750, window, order.PriorityMedium, products)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = NewCreateOrderCommandHandler(uowFactory, publisher, logger).Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	number           string
	destination      kernel.Location
	requiredCapacity int
	window           order.DeliveryWindow
	priority         order.Priority
	products         []order.Product

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. Destination and window must come from
// their constructors.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	number string,
	destination kernel.Location,
	requiredCapacity int,
	window order.DeliveryWindow,
	priority order.Priority,
	products []order.Product,
) (CreateOrderCommand, error) {
	c := CreateOrderCommand{
		window:   window,
		products: products,
		guard:    guard.NewConstructorGuard(),
	}

	var windowErr error
	if window.End().IsZero() {
		windowErr = errs.NewValueIsRequiredError("delivery window")
	}

	if err := errors.Join(
		c.setOrderID(orderID),
		c.setNumber(number),
		c.setDestination(destination),
		c.setRequiredCapacity(requiredCapacity),
		c.setPriority(priority),
		windowErr,
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID                 { return c.orderID }
func (c CreateOrderCommand) Number() string                       { return c.number }
func (c CreateOrderCommand) Destination() kernel.Location         { return c.destination }
func (c CreateOrderCommand) RequiredCapacity() int                { return c.requiredCapacity }
func (c CreateOrderCommand) DeliveryWindow() order.DeliveryWindow { return c.window }
func (c CreateOrderCommand) Priority() order.Priority             { return c.priority }
func (c CreateOrderCommand) Products() []order.Product            { return c.products }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	c.number = number
	return nil
}

func (c *CreateOrderCommand) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setRequiredCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("required capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	c.requiredCapacity = capacity
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned for an Order not built by NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer request. It is created Pending and moves to
// Assigned when the assignment workflow binds it to a vehicle.
//
// Invariants:
//   - valid identity, non-empty order number, valid destination
//   - required capacity is positive
//   - delivery window end is not before its start
type Order struct {
	id               kernel.UUID
	number           string
	products         []Product
	destination      kernel.Location
	requiredCapacity int
	window           DeliveryWindow
	priority         Priority
	status           Status
	createdAt        time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order.
//
//	window, _ := order.NewDeliveryWindow(start, end)
//	o, err := order.NewOrder(kernel.NewUUID(), "ORD-001", products, destination, 500, window, order.PriorityHigh, now)
func NewOrder(
	id kernel.UUID,
	number string,
	products []Product,
	destination kernel.Location,
	requiredCapacity int,
	window DeliveryWindow,
	priority Priority,
	createdAt time.Time,
) (*Order, error) {
	return RestoreOrder(id, number, products, destination, requiredCapacity, window, priority, Pending, createdAt)
}

// RestoreOrder rebuilds an order in any status, for repositories and seed data.
func RestoreOrder(
	id kernel.UUID,
	number string,
	products []Product,
	destination kernel.Location,
	requiredCapacity int,
	window DeliveryWindow,
	priority Priority,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		window:    window,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setProducts(products),
		o.setDestination(destination),
		o.setRequiredCapacity(requiredCapacity),
		o.setWindow(window),
		o.setPriority(priority),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number, e.g. "ORD-001".
func (o *Order) Number() string {
	return o.number
}

// Products returns a copy of the line items.
func (o *Order) Products() []Product {
	out := make([]Product, len(o.products))
	copy(out, o.products)
	return out
}

func (o *Order) Destination() kernel.Location {
	return o.destination
}

// RequiredCapacity is the load, in capacity units, the order occupies on a vehicle.
func (o *Order) RequiredCapacity() int {
	return o.requiredCapacity
}

func (o *Order) DeliveryWindow() DeliveryWindow {
	return o.window
}

func (o *Order) Priority() Priority {
	return o.priority
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ValidateAssign checks that the order can be offered by the assignment workflow.
func (o *Order) ValidateAssign() error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.status.ValidateAssign()
}

// Assign marks the order Assigned. Only Pending orders can be assigned.
func (o *Order) Assign() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Clone returns an independent copy, used by the in-memory store to stage changes.
func (o *Order) Clone() *Order {
	c := *o
	c.products = o.Products()
	return &c
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setProducts(products []Product) error {
	o.products = make([]Product, len(products))
	copy(o.products, products)
	return nil
}

func (o *Order) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

// setRequiredCapacity rejects non-positive values.
func (o *Order) setRequiredCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("required capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	o.requiredCapacity = capacity
	return nil
}

func (o *Order) setWindow(window DeliveryWindow) error {
	if window.Start().IsZero() || window.End().IsZero() {
		return errs.NewValueIsRequiredError("delivery window")
	}
	o.window = window
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

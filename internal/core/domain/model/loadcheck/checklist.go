package loadcheck

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const unitKg = "kg"

var (
	ErrChecklistIsNotConstructed = errors.New("Checklist must be created via NewChecklist constructor")
	// ErrNothingLoaded is returned by Confirm when no item is checked.
	ErrNothingLoaded = errs.NewValueIsInvalidErrorWithCause("load items", errors.New("at least one item must be loaded"))
)

// Mode is the direction of the checklist.
type Mode string

const (
	ModeLoading   Mode = "loading"
	ModeUnloading Mode = "unloading"
)

func (m Mode) Validate() error {
	if m != ModeLoading && m != ModeUnloading {
		return errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%q is not a load mode", string(m)))
	}
	return nil
}

// Item is one line of the checklist.
type Item struct {
	ID          string
	ProductName string
	Quantity    int
	Unit        string
	CrateCount  int
	IsLoaded    bool
}

// DefaultItems returns the fixed checklist, all unchecked.
func DefaultItems() []Item {
	return []Item{
		{ID: "1", ProductName: "Tomato Seeds - Hybrid", Quantity: 500, Unit: unitKg, CrateCount: 10},
		{ID: "2", ProductName: "Organic Fertilizer", Quantity: 2000, Unit: unitKg, CrateCount: 40},
		{ID: "3", ProductName: "Mango Saplings", Quantity: 300, Unit: "units", CrateCount: 15},
		{ID: "4", ProductName: "NPK Fertilizer", Quantity: 1500, Unit: unitKg, CrateCount: 30},
	}
}

// Summary aggregates the checked items. Weight only counts items measured in kg.
type Summary struct {
	LoadedCount   int
	TotalItems    int
	TotalWeightKg int
	TotalCrates   int
}

// Confirmation is what a successful Confirm reports.
type Confirmation struct {
	VehicleID kernel.UUID
	Mode      Mode
	Items     []Item
	Summary   Summary
}

// Checklist is the per-vehicle checklist session.
type Checklist struct {
	vehicleID kernel.UUID
	mode      Mode
	items     []Item

	guard guard.ConstructorGuard
}

// NewChecklist opens an unchecked checklist in loading mode.
func NewChecklist(vehicleID kernel.UUID) (*Checklist, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}
	return &Checklist{
		vehicleID: vehicleID,
		mode:      ModeLoading,
		items:     DefaultItems(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreChecklist rebuilds a stored checklist from its mode and the ids of the checked items.
func RestoreChecklist(vehicleID kernel.UUID, mode Mode, loadedItemIDs []string) (*Checklist, error) {
	c, err := NewChecklist(vehicleID)
	if err != nil {
		return nil, err
	}
	if err = c.SetMode(mode); err != nil {
		return nil, err
	}
	for _, id := range loadedItemIDs {
		if err = c.Toggle(id); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadedItemIDs lists the checked items in checklist order.
func (c *Checklist) LoadedItemIDs() []string {
	ids := make([]string, 0, len(c.items))
	for _, it := range c.items {
		if it.IsLoaded {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func (c *Checklist) Validate() error {
	if c == nil {
		return ErrChecklistIsNotConstructed
	}
	return c.guard.Validate(ErrChecklistIsNotConstructed)
}

func (c *Checklist) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *Checklist) Mode() Mode {
	return c.mode
}

// Items returns a copy of the checklist lines.
func (c *Checklist) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// SetMode switches between loading and unloading; the checks are kept.
func (c *Checklist) SetMode(mode Mode) error {
	if err := errors.Join(c.Validate(), mode.Validate()); err != nil {
		return err
	}
	c.mode = mode
	return nil
}

// Toggle flips the loaded flag of one item.
func (c *Checklist) Toggle(itemID string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].IsLoaded = !c.items[i].IsLoaded
			return nil
		}
	}
	return errs.NewObjectNotFoundError("load item", itemID)
}

func (c *Checklist) Summary() Summary {
	s := Summary{TotalItems: len(c.items)}
	for _, it := range c.items {
		if !it.IsLoaded {
			continue
		}
		s.LoadedCount++
		s.TotalCrates += it.CrateCount
		if it.Unit == unitKg {
			s.TotalWeightKg += it.Quantity
		}
	}
	return s
}

// Confirm accepts the checked items and clears every toggle. With nothing checked it
// fails with ErrNothingLoaded and leaves the checklist unchanged.
func (c *Checklist) Confirm() (Confirmation, error) {
	if err := c.Validate(); err != nil {
		return Confirmation{}, err
	}

	summary := c.Summary()
	if summary.LoadedCount == 0 {
		return Confirmation{}, ErrNothingLoaded
	}

	loaded := make([]Item, 0, summary.LoadedCount)
	for i := range c.items {
		if c.items[i].IsLoaded {
			loaded = append(loaded, c.items[i])
		}
		c.items[i].IsLoaded = false
	}

	return Confirmation{
		VehicleID: c.vehicleID,
		Mode:      c.mode,
		Items:     loaded,
		Summary:   summary,
	}, nil
}

// Clone returns an independent copy.
func (c *Checklist) Clone() *Checklist {
	cp := *c
	cp.items = c.Items()
	return &cp
}

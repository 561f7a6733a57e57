package order

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ProductType classifies the agricultural goods an order carries.
type ProductType string

const (
	ProductSeeds       ProductType = "Seeds"
	ProductSaplings    ProductType = "Saplings"
	ProductFertilizers ProductType = "Fertilizers"
)

func (t ProductType) Validate() error {
	switch t {
	case ProductSeeds, ProductSaplings, ProductFertilizers:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("product type", fmt.Errorf("%q is not a product type", string(t)))
	}
}

// Product is one line item of an order.
type Product struct {
	id         kernel.UUID
	name       string
	kind       ProductType
	quantity   int
	unit       string
	crateCount int
}

// NewProduct validates a line item. Quantity is positive; crate count may be zero for
// goods shipped loose.
func NewProduct(id kernel.UUID, name string, kind ProductType, quantity int, unit string, crateCount int) (Product, error) {
	p := Product{
		id:         id,
		name:       strings.TrimSpace(name),
		kind:       kind,
		quantity:   quantity,
		unit:       strings.TrimSpace(unit),
		crateCount: crateCount,
	}

	var nameErr, quantityErr, unitErr, cratesErr error
	if p.name == "" {
		nameErr = errs.NewValueIsRequiredError("product name")
	}
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.unit == "" {
		unitErr = errs.NewValueIsRequiredError("unit")
	}
	if crateCount < 0 {
		cratesErr = errs.NewValueIsInvalidErrorWithCause("crate count", fmt.Errorf("%d is negative", crateCount))
	}

	if err := errors.Join(id.Validate(), nameErr, kind.Validate(), quantityErr, unitErr, cratesErr); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (p Product) ID() kernel.UUID   { return p.id }
func (p Product) Name() string      { return p.name }
func (p Product) Type() ProductType { return p.kind }
func (p Product) Quantity() int     { return p.quantity }
func (p Product) Unit() string      { return p.unit }
func (p Product) CrateCount() int   { return p.crateCount }

package vehicle

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Driver is the person currently operating a vehicle. It is a value object embedded in
// the Vehicle aggregate; the license number may be blank for drivers registered through
// the fleet form.
type Driver struct {
	id            kernel.UUID
	name          string
	phone         string
	licenseNumber string
}

// NewDriver validates name and phone.
func NewDriver(id kernel.UUID, name, phone, licenseNumber string) (Driver, error) {
	d := Driver{licenseNumber: strings.TrimSpace(licenseNumber)}

	if err := errors.Join(d.setID(id), d.setName(name), d.setPhone(phone)); err != nil {
		return Driver{}, err
	}
	return d, nil
}

func (d Driver) ID() kernel.UUID {
	return d.id
}

func (d Driver) Name() string {
	return d.name
}

func (d Driver) Phone() string {
	return d.phone
}

func (d Driver) LicenseNumber() string {
	return d.licenseNumber
}

// Validate fails for a zero Driver.
func (d Driver) Validate() error {
	if err := d.id.Validate(); err != nil {
		return err
	}
	if d.name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("driver phone")
	}
	d.phone = phone
	return nil
}

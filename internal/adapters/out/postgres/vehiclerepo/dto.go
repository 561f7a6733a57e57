// Package vehiclerepo maps the vehicle aggregate to the vehicles table.
package vehiclerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO is one row of the vehicles table. The driver and the location are
// embedded columns; Seq keeps registration order and is filled by the database.
type VehicleDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Seq         int64       `gorm:"type:bigserial;<-:false"`
	Number      string      `gorm:"type:varchar(32);not null;uniqueIndex"`
	Type        string      `gorm:"type:varchar(64);not null"`
	Capacity    int         `gorm:"type:int;not null"`
	CurrentLoad int         `gorm:"type:int;not null"`
	Status      int         `gorm:"type:smallint;not null;index"`
	Driver      DriverDTO   `gorm:"embedded;embeddedPrefix:driver_"`
	Location    LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	LastUpdated time.Time   `gorm:"not null"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

type DriverDTO struct {
	ID      uuid.UUID `gorm:"type:uuid"`
	Name    string    `gorm:"type:varchar(255)"`
	Phone   string    `gorm:"type:varchar(32)"`
	License string    `gorm:"type:varchar(64)"`
}

// LocationDTO is shared by every table that stores a kernel.Location.
type LocationDTO struct {
	Lat     float64 `gorm:"type:double precision"`
	Lng     float64 `gorm:"type:double precision"`
	Address string  `gorm:"type:varchar(255)"`
}

func LocationFromDomain(l kernel.Location) LocationDTO {
	return LocationDTO{Lat: l.Lat(), Lng: l.Lng(), Address: l.Address()}
}

func (dto LocationDTO) ToDomain() (kernel.Location, error) {
	return kernel.NewLocation(dto.Lat, dto.Lng, dto.Address)
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	d := v.Driver()
	return VehicleDTO{
		ID:          v.ID().Bytes(),
		Number:      v.Number(),
		Type:        v.Type(),
		Capacity:    v.Capacity(),
		CurrentLoad: v.CurrentLoad(),
		Status:      int(v.Status()),
		Driver: DriverDTO{
			ID:      d.ID().Bytes(),
			Name:    d.Name(),
			Phone:   d.Phone(),
			License: d.LicenseNumber(),
		},
		Location:    LocationFromDomain(v.Location()),
		LastUpdated: v.LastUpdated(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.Driver.ID[:])
	if err != nil {
		return nil, err
	}
	driver, err := vehicle.NewDriver(driverID, dto.Driver.Name, dto.Driver.Phone, dto.Driver.License)
	if err != nil {
		return nil, err
	}

	loc, err := dto.Location.ToDomain()
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Number, dto.Type, dto.Capacity, dto.CurrentLoad,
		vehicle.Status(dto.Status), driver, loc, dto.LastUpdated)
}

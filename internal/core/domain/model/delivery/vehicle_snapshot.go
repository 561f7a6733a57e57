package delivery

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// VehicleSnapshot records the vehicle as it was when the delivery was scheduled.
type VehicleSnapshot struct {
	ID            kernel.UUID
	Number        string
	Type          string
	Capacity      int
	CurrentLoad   int
	Status        vehicle.Status
	DriverName    string
	DriverPhone   string
	DriverLicense string
	Location      kernel.Location
	CapturedAt    time.Time
}

// SnapshotOf copies the fields of v. The result shares nothing with v.
func SnapshotOf(v *vehicle.Vehicle) VehicleSnapshot {
	d := v.Driver()
	return VehicleSnapshot{
		ID:            v.ID(),
		Number:        v.Number(),
		Type:          v.Type(),
		Capacity:      v.Capacity(),
		CurrentLoad:   v.CurrentLoad(),
		Status:        v.Status(),
		DriverName:    d.Name(),
		DriverPhone:   d.Phone(),
		DriverLicense: d.LicenseNumber(),
		Location:      v.Location(),
		CapturedAt:    v.LastUpdated(),
	}
}

// Package deliveryrepo maps the delivery aggregate to the deliveries and delivery_stops
// tables. The vehicle snapshot is stored in vehicle_* columns of the delivery row.
package deliveryrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Seq           int64              `gorm:"type:bigserial;<-:false"`
	OrderID       uuid.UUID          `gorm:"type:uuid;not null;index"`
	VehicleID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	OrderNumber   string             `gorm:"type:varchar(32);not null"`
	Vehicle       VehicleSnapshotDTO `gorm:"embedded;embeddedPrefix:vehicle_"`
	Route         string             `gorm:"type:varchar(512);not null"`
	Status        int                `gorm:"type:smallint;not null;index"`
	Progress      int                `gorm:"type:smallint;not null"`
	ETA           time.Time          `gorm:"column:eta;not null"`
	StartTime     time.Time          `gorm:"not null"`
	CompletedTime *time.Time
	Stops         []StopDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// VehicleSnapshotDTO holds the vehicle as it was when the delivery was scheduled.
type VehicleSnapshotDTO struct {
	Number        string                  `gorm:"type:varchar(32)"`
	Type          string                  `gorm:"type:varchar(64)"`
	Capacity      int                     `gorm:"type:int"`
	CurrentLoad   int                     `gorm:"type:int"`
	Status        int                     `gorm:"type:smallint"`
	DriverName    string                  `gorm:"type:varchar(255)"`
	DriverPhone   string                  `gorm:"type:varchar(32)"`
	DriverLicense string                  `gorm:"type:varchar(64)"`
	Location      vehiclerepo.LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	CapturedAt    time.Time
}

type StopDTO struct {
	ID            uuid.UUID               `gorm:"type:uuid;primaryKey"`
	DeliveryID    uuid.UUID               `gorm:"type:uuid;not null;index"`
	Position      int                     `gorm:"type:int;not null"`
	Location      vehiclerepo.LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Type          string                  `gorm:"type:varchar(16);not null"`
	Status        string                  `gorm:"type:varchar(16);not null"`
	ScheduledTime time.Time               `gorm:"not null"`
	ActualTime    *time.Time
	Notes         string `gorm:"type:text"`
}

func (StopDTO) TableName() string {
	return "delivery_stops"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	deliveryID := d.ID().Bytes()

	stops := make([]StopDTO, 0, len(d.Stops()))
	for i, s := range d.Stops() {
		dto := StopDTO{
			ID:            s.ID().Bytes(),
			DeliveryID:    deliveryID,
			Position:      i,
			Location:      vehiclerepo.LocationFromDomain(s.Location()),
			Type:          string(s.Type()),
			Status:        string(s.Status()),
			ScheduledTime: s.ScheduledTime(),
			Notes:         s.Notes(),
		}
		if at, ok := s.ActualTime(); ok {
			dto.ActualTime = &at
		}
		stops = append(stops, dto)
	}

	snap := d.Vehicle()
	dto := DeliveryDTO{
		ID:          deliveryID,
		OrderID:     d.OrderID().Bytes(),
		VehicleID:   d.VehicleID().Bytes(),
		OrderNumber: d.OrderNumber(),
		Vehicle: VehicleSnapshotDTO{
			Number:        snap.Number,
			Type:          snap.Type,
			Capacity:      snap.Capacity,
			CurrentLoad:   snap.CurrentLoad,
			Status:        int(snap.Status),
			DriverName:    snap.DriverName,
			DriverPhone:   snap.DriverPhone,
			DriverLicense: snap.DriverLicense,
			Location:      vehiclerepo.LocationFromDomain(snap.Location),
			CapturedAt:    snap.CapturedAt,
		},
		Route:     d.Route(),
		Status:    int(d.Status()),
		Progress:  d.Progress(),
		ETA:       d.ETA(),
		StartTime: d.StartTime(),
		Stops:     stops,
	}
	if ct, ok := d.CompletedTime(); ok {
		dto.CompletedTime = &ct
	}
	return dto
}

// toDomain expects Stops sorted by Position.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	snapLocation, err := dto.Vehicle.Location.ToDomain()
	if err != nil {
		return nil, err
	}
	snapshot := delivery.VehicleSnapshot{
		ID:            vehicleID,
		Number:        dto.Vehicle.Number,
		Type:          dto.Vehicle.Type,
		Capacity:      dto.Vehicle.Capacity,
		CurrentLoad:   dto.Vehicle.CurrentLoad,
		Status:        vehicle.Status(dto.Vehicle.Status),
		DriverName:    dto.Vehicle.DriverName,
		DriverPhone:   dto.Vehicle.DriverPhone,
		DriverLicense: dto.Vehicle.DriverLicense,
		Location:      snapLocation,
		CapturedAt:    dto.Vehicle.CapturedAt,
	}

	stops := make([]delivery.Stop, 0, len(dto.Stops))
	for _, s := range dto.Stops {
		stop, stopErr := stopToDomain(s)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return delivery.RestoreDelivery(id, orderID, vehicleID, dto.OrderNumber, snapshot, dto.Route,
		delivery.Status(dto.Status), dto.Progress, dto.ETA, dto.StartTime, dto.CompletedTime, stops)
}

func stopToDomain(dto StopDTO) (delivery.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return delivery.Stop{}, err
	}

	loc, err := dto.Location.ToDomain()
	if err != nil {
		return delivery.Stop{}, err
	}

	return delivery.NewStop(id, loc, delivery.StopType(dto.Type), delivery.StopStatus(dto.Status),
		dto.ScheduledTime, dto.ActualTime, dto.Notes)
}

package vehicle_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func newDriver(t *testing.T) vehicle.Driver {
	t.Helper()
	d, err := vehicle.NewDriver(kernel.NewUUID(), "Ramesh Patil", "+91 98220 11111", "MH12-2019-0042")
	require.NoError(t, err)
	return d
}

func newVehicle(t *testing.T, capacity int, status vehicle.Status) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "MH-12-AB-1234", "Truck", capacity, newDriver(t),
		kernel.MustNewLocation(18.5204, 73.8567, "Pune Warehouse"), status, now)
	require.NoError(t, err)
	return v
}

func newOrder(t *testing.T, required int) *order.Order {
	t.Helper()
	w, _ := order.NewDeliveryWindow(now, now.Add(8*time.Hour))
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-001", nil,
		kernel.MustNewLocation(19.9975, 73.7898, "Nashik Farm Co-op"), required, w, order.PriorityHigh, now)
	require.NoError(t, err)
	return o
}

func TestNewVehicle(t *testing.T) {
	t.Run("creates empty vehicle", func(t *testing.T) {
		v := newVehicle(t, 1000, vehicle.Available)

		require.NoError(t, v.Validate())
		assert.Equal(t, "MH-12-AB-1234", v.Number())
		assert.Equal(t, "Truck", v.Type())
		assert.Equal(t, 1000, v.Capacity())
		assert.Zero(t, v.CurrentLoad())
		assert.Equal(t, vehicle.Available, v.Status())
		assert.Equal(t, "Ramesh Patil", v.Driver().Name())
		assert.Equal(t, now, v.LastUpdated())
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.UUID{}, "", "", 0, vehicle.Driver{}, kernel.Location{}, vehicle.Unknown, now)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "vehicle number")
		assert.Contains(t, err.Error(), "type")
		assert.Contains(t, err.Error(), "capacity")
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("restored load must fit capacity", func(t *testing.T) {
		_, err := vehicle.RestoreVehicle(kernel.NewUUID(), "MH-14-CD-5678", "Truck", 300, 301, vehicle.Loading,
			newDriver(t), kernel.MustNewLocation(0, 0, "Depot"), now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewDriver(t *testing.T) {
	d, err := vehicle.NewDriver(kernel.NewUUID(), "  Suresh  ", "+91 1", "")
	require.NoError(t, err)
	assert.Equal(t, "Suresh", d.Name())
	assert.Empty(t, d.LicenseNumber())

	_, err = vehicle.NewDriver(kernel.NewUUID(), "", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "driver name")
	assert.Contains(t, err.Error(), "driver phone")
}

func TestVehicle_CanTakeOrder(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		status   vehicle.Status
		required int
		want     bool
	}{
		{name: "available with spare capacity", capacity: 1000, status: vehicle.Available, required: 500, want: true},
		{name: "available with exact capacity", capacity: 500, status: vehicle.Available, required: 500, want: true},
		{name: "available but too small", capacity: 300, status: vehicle.Available, required: 500, want: false},
		{name: "in maintenance", capacity: 1000, status: vehicle.Maintenance, required: 500, want: false},
		{name: "already loading", capacity: 1000, status: vehicle.Loading, required: 500, want: false},
		{name: "in transit", capacity: 1000, status: vehicle.InTransit, required: 100, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVehicle(t, tt.capacity, tt.status)

			got, err := v.CanTakeOrder(newOrder(t, tt.required))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid order", func(t *testing.T) {
		_, err := newVehicle(t, 1000, vehicle.Available).CanTakeOrder(nil)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestVehicle_TakeOrder(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("moves to loading and overwrites the load", func(t *testing.T) {
		v := newVehicle(t, 1000, vehicle.Available)

		require.NoError(t, v.TakeOrder(newOrder(t, 500), later))

		assert.Equal(t, vehicle.Loading, v.Status())
		assert.Equal(t, 500, v.CurrentLoad())
		assert.Equal(t, later, v.LastUpdated())
		assert.InDelta(t, 50.0, v.CapacityPercentage(), 1e-9)
	})

	t.Run("rejects insufficient capacity without change", func(t *testing.T) {
		v := newVehicle(t, 300, vehicle.Available)

		err := v.TakeOrder(newOrder(t, 500), later)

		require.ErrorIs(t, err, vehicle.ErrInsufficientCapacity)
		assert.Equal(t, vehicle.Available, v.Status())
		assert.Zero(t, v.CurrentLoad())
	})

	t.Run("rejects a second order", func(t *testing.T) {
		v := newVehicle(t, 1000, vehicle.Available)
		require.NoError(t, v.TakeOrder(newOrder(t, 500), later))

		err := v.TakeOrder(newOrder(t, 200), later)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 500, v.CurrentLoad())
	})
}

func TestVehicle_Clone(t *testing.T) {
	v := newVehicle(t, 1000, vehicle.Available)

	c := v.Clone()
	require.NoError(t, c.TakeOrder(newOrder(t, 400), now))

	assert.True(t, c.IsEqual(v))
	assert.Equal(t, vehicle.Available, v.Status())
	assert.Equal(t, vehicle.Loading, c.Status())
}

func TestStatus(t *testing.T) {
	s, err := vehicle.ParseStatus("In Transit")
	require.NoError(t, err)
	assert.Equal(t, vehicle.InTransit, s)

	_, err = vehicle.ParseStatus("Parked")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Len(t, vehicle.Statuses(), 5)
	assert.True(t, vehicle.Loading.IsActive())
	assert.False(t, vehicle.Maintenance.IsActive())
	assert.Equal(t, "Unknown", vehicle.Status(42).String())
}

package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		address string
		wantErr error
	}{
		{name: "valid", lat: 18.5204, lng: 73.8567, address: "Pune Warehouse"},
		{name: "origin coordinates with address", lat: 0, lng: 0, address: "Depot 4"},
		{name: "boundary", lat: 90, lng: -180, address: "Edge"},
		{name: "lat too high", lat: 90.1, lng: 0, address: "x", wantErr: errs.ErrValueIsOutOfRange},
		{name: "lng too low", lat: 0, lng: -180.5, address: "x", wantErr: errs.ErrValueIsOutOfRange},
		{name: "blank address", lat: 1, lng: 1, address: "   ", wantErr: errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.lat, tt.lng, tt.address)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Error(t, loc.Validate())
				return
			}
			require.NoError(t, err)
			require.NoError(t, loc.Validate())
			assert.InDelta(t, tt.lat, loc.Lat(), 1e-9)
			assert.InDelta(t, tt.lng, loc.Lng(), 1e-9)
			assert.Equal(t, tt.address, loc.Address())
		})
	}
}

func TestLocation_ZeroValue(t *testing.T) {
	var loc kernel.Location

	require.ErrorIs(t, loc.Validate(), kernel.ErrLocationIsNotConstructed)
}

func TestLocation_IsEqual(t *testing.T) {
	a := kernel.MustNewLocation(19.0760, 72.8777, "Mumbai Hub")
	b := kernel.MustNewLocation(19.0760, 72.8777, "Mumbai Hub")
	c := kernel.MustNewLocation(19.0760, 72.8777, "Mumbai Port")

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.Location{})
	require.Error(t, err)
}

func TestLocation_DistanceKm(t *testing.T) {
	pune := kernel.MustNewLocation(18.5204, 73.8567, "Pune")
	mumbai := kernel.MustNewLocation(19.0760, 72.8777, "Mumbai")

	t.Run("known distance", func(t *testing.T) {
		d, err := pune.DistanceKm(mumbai)

		require.NoError(t, err)
		assert.InDelta(t, 120, d, 5)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1, _ := pune.DistanceKm(mumbai)
		d2, _ := mumbai.DistanceKm(pune)

		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("identity", func(t *testing.T) {
		d, err := pune.DistanceKm(pune)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("zero value argument", func(t *testing.T) {
		_, err := pune.DistanceKm(kernel.Location{})

		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}

func TestMustNewLocation_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewLocation(100, 0, "x") })
}

package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// LatitudeMin and LatitudeMax bound the latitude in degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
	// LongitudeMin and LongitudeMax bound the longitude in degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0

	earthRadiusKm = 6371.0
)

// ErrLocationIsNotConstructed is returned when a zero Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Location is a geographic point plus the address shown to operators.
// Vehicles report their current Location, orders carry a destination Location and
// delivery stops copy one of the two.
//
//	loc, err := kernel.NewLocation(18.5204, 73.8567, "Pune Warehouse, MH")
//	if err != nil {
//	    // lat/lng out of range or empty address
//	}
type Location struct { //nolint:recvcheck //using for validation
	lat     float64
	lng     float64
	address string
	guard   guard.ConstructorGuard
}

// NewLocation validates the coordinates and address. Coordinates (0, 0) are accepted:
// vehicles registered through the fleet form only carry an address.
func NewLocation(lat, lng float64, address string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng), loc.setAddress(address)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MustNewLocation is NewLocation for static seed data; it panics on invalid input.
func MustNewLocation(lat, lng float64, address string) Location {
	loc, err := NewLocation(lat, lng, address)
	if err != nil {
		panic(err)
	}
	return loc
}

// Validate fails for a Location that was not built by NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Lat() float64 {
	return l.lat
}

func (l Location) Lng() float64 {
	return l.lng
}

func (l Location) Address() string {
	return l.address
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("%s (%.4f,%.4f)", l.address, l.lat, l.lng)
}

// IsEqual compares coordinates and address of two constructed locations.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// DistanceKm returns the great-circle (haversine) distance between two locations.
func (l Location) DistanceKm(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1, lat2 := toRadians(l.lat), toRadians(other.lat)
	dLat := lat2 - lat1
	dLng := toRadians(other.lng - l.lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a)), nil
}

func (l *Location) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	l.lat = lat
	return nil
}

func (l *Location) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}

	l.lng = lng
	return nil
}

func (l *Location) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	l.address = address
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

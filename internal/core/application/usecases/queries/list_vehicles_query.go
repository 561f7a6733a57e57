package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/guard"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery is the fleet screen: search over vehicle number or driver name,
// filtered by a status tab.
//
// Example:
//
//	query, err := NewListVehiclesQuery("mh-12", "In Transit")
//	resp, err := handler.Handle(ctx, query)
//	for _, tab := range resp.Tabs {
//	    fmt.Printf("%s (%d)\n", tab.Tab, tab.Count)
//	}
type ListVehiclesQuery struct {
	search string
	status *vehicle.Status

	guard guard.ConstructorGuard
}

// NewListVehiclesQuery accepts "" or "All" for no status filter, otherwise a vehicle
// status name.
func NewListVehiclesQuery(search, tab string) (ListVehiclesQuery, error) {
	q := ListVehiclesQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}

	if !isAllTab(tab) {
		st, err := vehicle.ParseStatus(tab)
		if err != nil {
			return ListVehiclesQuery{}, err
		}
		q.status = &st
	}

	return q, nil
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

func (q ListVehiclesQuery) Search() string {
	return q.search
}

// Status returns the tab filter; ok is false for the All tab.
func (q ListVehiclesQuery) Status() (vehicle.Status, bool) {
	if q.status == nil {
		return vehicle.Unknown, false
	}
	return *q.status, true
}

// ListVehiclesQueryResponse holds the matching vehicles and the badges of every tab,
// counted over the whole fleet.
type ListVehiclesQueryResponse struct {
	Vehicles []*vehicle.Vehicle
	Tabs     []TabCount
}

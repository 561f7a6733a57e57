// Package delivery contains the Delivery aggregate: a vehicle/order pairing in execution,
// tracked through an ordered sequence of stops.
//
// A Delivery embeds a VehicleSnapshot, a point-in-time copy of the vehicle taken when the
// order was assigned. It is not a live reference: later changes to the vehicle record do
// not propagate to existing deliveries, and the vehicle may be absent from the fleet.
package delivery

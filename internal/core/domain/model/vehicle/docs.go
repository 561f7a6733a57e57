// Package vehicle provides the Vehicle aggregate of the fleet: identity and plate number,
// capacity and current load, the embedded Driver, the last known Location and the
// operational Status.
//
// Key business rules:
//   - Capacity is positive and current load never exceeds it
//   - Only an Available vehicle whose capacity covers an order's required capacity can take it
//   - Taking an order moves the vehicle to Loading and overwrites the current load
//     with the order's required capacity (loads are not accumulated)
package vehicle

// Package kernel holds the value objects shared by every aggregate of the logistics domain:
//   - UUID: identity of vehicles, drivers, orders, deliveries and stops
//   - Location: a geographic point with a human-readable address
//
// Values are immutable and must be built through their constructors; the zero value
// of each type fails Validate.
package kernel

// Package loadcheck is the crate loading/unloading checklist shown for a vehicle.
// The items are a fixed list, not derived from orders, and confirming a checklist does not
// change any vehicle, order or delivery.
package loadcheck

// Package order provides the Order aggregate: a customer request to move goods
// (a list of products) to a destination inside a delivery window.
//
// The package includes:
//   - Order: the aggregate root with identity, order number, products and lifecycle
//   - Status: the order lifecycle Pending -> Assigned -> In Progress -> Completed
//   - Priority, Product and DeliveryWindow value objects
//
// Key business rules:
//   - Required capacity is positive and the delivery window does not end before it starts
//   - Only Pending orders can be assigned to a vehicle
package order

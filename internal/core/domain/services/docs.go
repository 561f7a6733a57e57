// Package services provides domain services that work across the vehicle, order and
// delivery aggregates.
//
// The package includes:
//   - AssignmentService: compatible vehicle selection and the assignment commit
//   - Fleet and delivery projections used by the dashboard and the fleet report job
package services

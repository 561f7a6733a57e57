// Package wizard models the three-step assignment workflow:
//
//	order-selection ──SelectOrder──> vehicle-selection ──SelectVehicle──> confirmation
//	       ▲                               │                                   │
//	       └────────────Back───────────────┘                                   │
//	       └──────────────────────────Confirm / Reset──────────────────────────┘
//
// Reset is allowed from every step. The Wizard only records selections; committing the
// assignment is done by the application layer after Confirm returns the selection.
package wizard

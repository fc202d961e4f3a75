// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root owning line items, the derived total, the
//     delivery address, and the lifecycle status
//   - Status: a state machine enforcing Pending -> Confirmed | Canceled
//
// Key business rules:
//   - Orders start in pending status at construction
//   - Confirmed and canceled are terminal: no transition leaves them
//   - The total is derived from the line items and never mutated afterwards
//   - A declined charge never constructs an order, so cancellation is only
//     reachable by an explicit call
package order

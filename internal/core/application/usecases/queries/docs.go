// Package queries contains read-only operations over the application state.
// Query handlers return plain response structs decoupled from the domain
// aggregates, so the boundary layer never touches entity internals.
package queries

package order

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Pending ──┬──> Confirmed
//	          └──> Canceled
//
// Confirmed and Canceled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status set at order construction.
	Pending

	// Confirmed is the terminal success status reached when the charge was authorized.
	Confirmed

	// Canceled is the terminal status reached only by explicit cancellation.
	Canceled
)

// getStatusStrings returns the string representations of all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Canceled:  "canceled",
	}
}

// getValidStatusStrings returns only the valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Canceled:  "canceled",
	}
}

// Validate checks if the Status value is one of Pending, Confirmed, Canceled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase status name, or "Unknown" for invalid values.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Confirmed || s == Canceled
}

// Confirm transitions the status to Confirmed.
// Only Pending orders can be confirmed; terminal statuses return an error.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}

// Cancel transitions the status to Canceled.
// Only Pending orders can be canceled; terminal statuses return an error.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Canceled, nil
}

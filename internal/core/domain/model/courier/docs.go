// Package courier provides the DeliveryPerson aggregate for courier registration
// and location tracking.
//
// Key business rules:
//   - The display name must be non-blank and contain no digits
//   - Experience must be provided
//   - Email, phone, and license plate must match their expected formats
//   - Passwords must meet minimum strength rules and are stored only as bcrypt hashes
//   - Registration fails fast: the first violated rule surfaces as a single typed error
//
// The current location is the only mutable field; it is replaced wholesale by
// UpdateLocation with last-write-wins semantics. Accepting or rejecting an order
// offer carries no courier state change in this core; the surrounding
// order-assignment workflow is out of scope.
package courier

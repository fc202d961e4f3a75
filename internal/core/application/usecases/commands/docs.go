// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// validated value object, paired with a handler that coordinates domain
// entities, the payment boundary, and repositories.
package commands

package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrAnalyzeBehaviorCommandIsNotConstructed = errors.New(
	"AnalyzeBehaviorCommand must be created via NewAnalyzeBehaviorCommand constructor",
)

// AnalyzeBehaviorCommand represents a diner signing in, which feeds the
// behavioral event log behind recommendations.
type AnalyzeBehaviorCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAnalyzeBehaviorCommand creates a behavior analysis command.
// The user id must be properly constructed.
func NewAnalyzeBehaviorCommand(userID kernel.UUID) (AnalyzeBehaviorCommand, error) {
	cmd := AnalyzeBehaviorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := userID.Validate(); err != nil {
		return AnalyzeBehaviorCommand{}, err
	}

	cmd.userID = userID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AnalyzeBehaviorCommand) Validate() error {
	return c.guard.Validate(ErrAnalyzeBehaviorCommandIsNotConstructed)
}

// UserID returns the diner whose behavior is being analyzed.
func (c AnalyzeBehaviorCommand) UserID() kernel.UUID {
	return c.userID
}

package commands

import (
	"context"

	"eats/internal/core/domain/services"
)

// AnalyzeBehaviorCommandHandler feeds a diner's sign-in into the behavioral
// event log that the periodic behavior report aggregates.
type AnalyzeBehaviorCommandHandler struct {
	recommender *services.Recommender
}

// NewAnalyzeBehaviorCommandHandler creates a handler for behavior analysis.
func NewAnalyzeBehaviorCommandHandler(recommender *services.Recommender) AnalyzeBehaviorCommandHandler {
	return AnalyzeBehaviorCommandHandler{
		recommender: recommender,
	}
}

// Handle records a login event for the diner.
func (h *AnalyzeBehaviorCommandHandler) Handle(_ context.Context, cmd AnalyzeBehaviorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.recommender.AnalyzeBehavior(cmd.UserID())
}

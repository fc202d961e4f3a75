package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/menu"
	"eats/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalyzeBehaviorCommand(t *testing.T) {
	t.Run("should create command for a valid user id", func(t *testing.T) {
		cmd, err := commands.NewAnalyzeBehaviorCommand(kernel.NewUUID())
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should reject an empty user id", func(t *testing.T) {
		_, err := commands.NewAnalyzeBehaviorCommand(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		cmd := commands.AnalyzeBehaviorCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrAnalyzeBehaviorCommandIsNotConstructed)
	})
}

func TestAnalyzeBehaviorCommandHandler_Handle(t *testing.T) {
	t.Run("should record a login event", func(t *testing.T) {
		ctx := t.Context()
		recommender := services.NewRecommender(menu.DefaultCatalog())
		cmd, err := commands.NewAnalyzeBehaviorCommand(kernel.NewUUID())
		require.NoError(t, err)

		h := commands.NewAnalyzeBehaviorCommandHandler(recommender)
		require.NoError(t, h.Handle(ctx, cmd))

		events := recommender.Events()
		require.Len(t, events, 1)
		assert.Equal(t, services.EventLogin, events[0].Type())
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		ctx := t.Context()
		recommender := services.NewRecommender(menu.DefaultCatalog())

		h := commands.NewAnalyzeBehaviorCommandHandler(recommender)
		err := h.Handle(ctx, commands.AnalyzeBehaviorCommand{})
		require.ErrorIs(t, err, commands.ErrAnalyzeBehaviorCommandIsNotConstructed)
		assert.Empty(t, recommender.Events())
	})
}

package memory_test

import (
	"testing"

	"eats/internal/adapters/out/memory"
	"eats/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("should return seeded catalog", func(t *testing.T) {
		repo := memory.NewMenuRepository(menu.DefaultCatalog())

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, "Greek Salad", items[0].Name())
	})

	t.Run("should append new items after the seed", func(t *testing.T) {
		repo := memory.NewMenuRepository(menu.DefaultCatalog())
		item, err := menu.NewItem("Lentil Soup", "Slow cooked lentils", 6.5, "Soups", "")
		require.NoError(t, err)

		require.NoError(t, repo.Add(ctx, item))

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 5)
		assert.Equal(t, "Lentil Soup", items[4].Name())
	})

	t.Run("should reject invalid item", func(t *testing.T) {
		repo := memory.NewMenuRepository(nil)

		require.ErrorIs(t, repo.Add(ctx, menu.Item{}), menu.ErrItemIsNotConstructed)
	})
}

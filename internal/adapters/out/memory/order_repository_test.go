package memory_test

import (
	"testing"

	"eats/internal/adapters/out/memory"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/menu"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), menu.DefaultCatalog(), "Athens", "")
	require.NoError(t, err)
	return o
}

func TestOrderRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("should add and get order", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		o := newOrder(t)

		require.NoError(t, repo.Add(ctx, o))

		got, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
	})

	t.Run("should reject duplicate id", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		o := newOrder(t)

		require.NoError(t, repo.Add(ctx, o))
		require.ErrorIs(t, repo.Add(ctx, o), errs.ErrValueIsInvalid)
	})

	t.Run("should classify unknown id as not found", func(t *testing.T) {
		repo := memory.NewOrderRepository()

		_, err := repo.Get(ctx, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should list orders in placement order", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		first := newOrder(t)
		second := newOrder(t)
		require.NoError(t, repo.Add(ctx, first))
		require.NoError(t, repo.Add(ctx, second))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.True(t, all[0].IsEqual(first))
		assert.True(t, all[1].IsEqual(second))
	})
}

package kernel_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEmpty(t, id.String())
	})

	t.Run("should create unique UUIDs on every call", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			id := kernel.NewUUID()
			assert.False(t, seen[id.String()], "duplicate UUID generated")
			seen[id.String()] = true
		}
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse valid UUID string", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should fail on invalid string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("same UUID compares equal", func(t *testing.T) {
		id := kernel.NewUUID()
		same := id

		assert.True(t, id.IsEqual(same))
	})

	t.Run("different UUIDs compare unequal", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}

package kernel_test

import (
	"testing"

	"flowerdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.NotEqual(t, uuid.Nil.String(), id1.String())
	assert.False(t, id1.IsEqual(id2))
}

func TestUUIDFromString(t *testing.T) {
	canonical := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should accept the supported spellings", func(t *testing.T) {
		for _, in := range []string{
			canonical,
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		} {
			id, err := kernel.UUIDFromString(in)
			require.NoError(t, err, in)
			assert.Equal(t, canonical, id.String())
		}
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("new-007")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	raw := uuid.New()

	id, err := kernel.UUIDFromBytes(raw[:])
	require.NoError(t, err)
	assert.Equal(t, raw, id.Bytes())

	_, err = kernel.UUIDFromBytes([]byte{1, 2, 3})
	require.Error(t, err)

	_, err = kernel.UUIDFromBytes(make([]byte, 16))
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	require.NoError(t, kernel.NewUUID().Validate())
}

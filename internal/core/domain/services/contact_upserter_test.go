package services_test

import (
	"testing"

	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactUpserter_Upsert(t *testing.T) {
	upserter := services.NewContactUpserter()
	info := contact.Info{
		BusinessName: "새 구하리교회",
		Phone:        "01027824244",
		Address:      "기흥구 마북로109",
		Note:         "본당앞에 올려놓을것",
	}

	t.Run("creates a contact for a new business", func(t *testing.T) {
		c, result, err := upserter.Upsert(nil, info)

		require.NoError(t, err)
		assert.Equal(t, services.UpsertCreated, result)
		assert.Equal(t, "새 구하리교회", c.BusinessName())
		assert.Equal(t, []string{"01027824244"}, c.Phones())
		require.NoError(t, c.ID().Validate())
	})

	t.Run("repeated save is skipped", func(t *testing.T) {
		existing, _, err := upserter.Upsert(nil, info)
		require.NoError(t, err)

		c, result, err := upserter.Upsert(existing, info)

		require.NoError(t, err)
		assert.Equal(t, services.UpsertSkipped, result)
		assert.Same(t, existing, c)
		assert.Equal(t, []string{"01027824244"}, c.Phones())
	})

	t.Run("fourth distinct phone drops the oldest", func(t *testing.T) {
		c, _, err := upserter.Upsert(nil, info)
		require.NoError(t, err)

		for _, phone := range []string{"010-2", "010-3", "010-4"} {
			next := info
			next.Phone = phone
			_, result, upsertErr := upserter.Upsert(c, next)
			require.NoError(t, upsertErr)
			assert.Equal(t, services.UpsertUpdated, result)
		}

		assert.Equal(t, []string{"010-4", "010-3", "010-2"}, c.Phones())
	})

	t.Run("blank business name is ignored", func(t *testing.T) {
		c, result, err := upserter.Upsert(nil, contact.Info{BusinessName: "  ", Phone: "010"})

		require.NoError(t, err)
		assert.Nil(t, c)
		assert.Equal(t, services.UpsertSkipped, result)
	})

	t.Run("name match is case sensitive", func(t *testing.T) {
		existing, err := contact.NewContact(kernel.NewUUID(), "MSS Flower", nil, "", "")
		require.NoError(t, err)

		_, _, err = upserter.Upsert(existing, contact.Info{BusinessName: "mss flower"})

		require.ErrorIs(t, err, services.ErrContactDoesNotMatch)
	})
}

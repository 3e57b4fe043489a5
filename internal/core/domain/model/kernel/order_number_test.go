package kernel_test

import (
	"testing"
	"time"

	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatePrefix(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)

	assert.Equal(t, "240101", kernel.DatePrefix(time.Date(2024, 1, 1, 8, 30, 0, 0, seoul)))
	assert.Equal(t, "241231", kernel.DatePrefix(time.Date(2024, 12, 31, 23, 59, 0, 0, seoul)))
}

func TestNewOrderNumber(t *testing.T) {
	t.Run("pads the sequence to three digits", func(t *testing.T) {
		n, err := kernel.NewOrderNumber("240101", 3)

		require.NoError(t, err)
		assert.Equal(t, "240101-003", n.String())
		assert.Equal(t, "240101", n.Prefix())
		assert.Equal(t, 3, n.Sequence())
	})

	t.Run("grows beyond three digits", func(t *testing.T) {
		n, err := kernel.NewOrderNumber("240101", 1000)

		require.NoError(t, err)
		assert.Equal(t, "240101-1000", n.String())
	})

	t.Run("rejects a zero sequence", func(t *testing.T) {
		_, err := kernel.NewOrderNumber("240101", 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects prefixes that are not dates", func(t *testing.T) {
		for _, prefix := range []string{"", "2401", "241301", "abcdef", "20240101"} {
			_, err := kernel.NewOrderNumber(prefix, 1)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, prefix)
		}
	})
}

func TestParseOrderNumber(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		for _, in := range []string{"240101-001", "240101-042", "251017-999", "251017-1000"} {
			n, err := kernel.ParseOrderNumber(in)
			require.NoError(t, err, in)
			assert.Equal(t, in, n.String())
		}
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		for _, in := range []string{
			"240101",
			"240101-",
			"240101-01",
			"240101-0a1",
			"240101-+01",
			"240101123000-123",
			"240101-000",
		} {
			_, err := kernel.ParseOrderNumber(in)
			require.Error(t, err, in)
		}
	})
}

func TestOrderNumber_Validate(t *testing.T) {
	var zero kernel.OrderNumber
	require.ErrorIs(t, zero.Validate(), kernel.ErrOrderNumberIsNotConstructed)

	n, err := kernel.ParseOrderNumber("240101-001")
	require.NoError(t, err)
	require.NoError(t, n.Validate())

	other, err := kernel.NewOrderNumber("240101", 1)
	require.NoError(t, err)
	assert.True(t, n.IsEqual(other))
}

func TestValidateDatePrefix(t *testing.T) {
	require.NoError(t, kernel.ValidateDatePrefix("240229"))
	require.ErrorIs(t, kernel.ValidateDatePrefix("230229"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, kernel.ValidateDatePrefix("2401"), errs.ErrValueIsInvalid)
}

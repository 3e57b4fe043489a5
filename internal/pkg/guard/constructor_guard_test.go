package guard_test

import (
	"errors"
	"testing"

	"flowerdelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("draft not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_supplied_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errFeeNotConstructed := errors.New("Fee must be created via newFee")

	type fee struct {
		won   int
		guard guard.ConstructorGuard
	}

	newFee := func(won int) (fee, error) {
		if won < 0 {
			return fee{}, errors.New("fee cannot be negative")
		}
		return fee{won: won, guard: guard.NewConstructorGuard()}, nil
	}

	built, err := newFee(15000)
	require.NoError(t, err)
	require.NoError(t, built.guard.Validate(errFeeNotConstructed))

	literal := fee{won: 15000}
	require.ErrorIs(t, literal.guard.Validate(errFeeNotConstructed), errFeeNotConstructed)

	_, err = newFee(-1)
	require.Error(t, err)
}

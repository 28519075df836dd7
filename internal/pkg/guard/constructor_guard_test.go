package guard_test

import (
	"errors"
	"testing"

	"purchasing/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("DeletePurchaseOrderCommand must be created via its constructor")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type command struct {
		poNumber string
		guard    guard.ConstructorGuard
	}
	errNotConstructed := errors.New("command must be created via newCommand")

	newCommand := func(poNumber string) (command, error) {
		if poNumber == "" {
			return command{}, errors.New("po number is required")
		}
		return command{poNumber: poNumber, guard: guard.NewConstructorGuard()}, nil
	}

	cmd, err := newCommand("PO25690219-P001")
	require.NoError(t, err)
	require.NoError(t, cmd.guard.Validate(errNotConstructed))

	var zero command
	require.ErrorIs(t, zero.guard.Validate(errNotConstructed), errNotConstructed)

	_, err = newCommand("")
	require.Error(t, err)
}

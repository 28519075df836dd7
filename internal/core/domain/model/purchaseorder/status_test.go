package purchaseorder_test

import (
	"errors"
	"testing"

	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want purchaseorder.Status
	}{
		{"DRAFT", purchaseorder.Draft},
		{"approved", purchaseorder.Approved},
		{" Sent ", purchaseorder.Sent},
		{"CANCELLED", purchaseorder.Cancelled},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := purchaseorder.ParseStatus(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("should reject unknown status as validation error", func(t *testing.T) {
		_, err := purchaseorder.ParseStatus("SHIPPED")

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	allowed := map[purchaseorder.Status][]purchaseorder.Status{
		purchaseorder.Draft:     {purchaseorder.Approved, purchaseorder.Cancelled},
		purchaseorder.Approved:  {purchaseorder.Sent, purchaseorder.Cancelled},
		purchaseorder.Sent:      {purchaseorder.Cancelled},
		purchaseorder.Cancelled: {},
	}
	all := []purchaseorder.Status{
		purchaseorder.Draft, purchaseorder.Approved, purchaseorder.Sent, purchaseorder.Cancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}

			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				got, err := from.TransitionTo(to)

				if want {
					require.NoError(t, err)
					assert.Equal(t, to, got)
					return
				}
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrConflict)
				assert.ErrorIs(t, err, purchaseorder.ErrTransitionNotAllowed)
				assert.False(t, errs.IsValidation(err))
			})
		}
	}

	t.Run("should reject unknown target as validation error", func(t *testing.T) {
		_, err := purchaseorder.Draft.TransitionTo(purchaseorder.Status("ARCHIVED"))

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.False(t, errors.Is(err, errs.ErrConflict))
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, purchaseorder.Cancelled.IsTerminal())
	assert.False(t, purchaseorder.Draft.IsTerminal())
	assert.False(t, purchaseorder.Sent.IsTerminal())
}

func TestStatus_AllowedTransitionsReturnsCopy(t *testing.T) {
	got := purchaseorder.Draft.AllowedTransitions()
	got[0] = purchaseorder.Cancelled

	assert.Equal(t,
		[]purchaseorder.Status{purchaseorder.Approved, purchaseorder.Cancelled},
		purchaseorder.Draft.AllowedTransitions(),
	)
}

func TestStatus_TransitionToNamesAllowedTargets(t *testing.T) {
	_, err := purchaseorder.Draft.TransitionTo(purchaseorder.Sent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition from DRAFT to SENT: allowed APPROVED, CANCELLED")

	_, err = purchaseorder.Cancelled.TransitionTo(purchaseorder.Draft)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CANCELLED is terminal")
}

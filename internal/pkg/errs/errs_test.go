package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	supplierID = "0b9c6a52-6f0e-4c55-9a43-1f6f3cf0c2d1"
	orderID    = "5d2e7c14-8b8f-4f0e-a1a7-2c9c1b0f7e35"
	productA   = "8f14e45f-ceea-467a-9f0e-5d8c3a7b2e10"
	productB   = "c9f0f895-fb98-4b91-b0a1-3e4d2c1b0a99"
)

// Stand-ins for the domain sentinels that travel as causes.
var (
	errTransitionNotAllowed   = errors.New("status transition not allowed")
	errDailySequenceExhausted = errors.New("daily purchase order sequence exhausted")
	errRecordNotFound         = errors.New("record not found")
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("should name the missing supplier", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("supplier", supplierID)

		assert.Equal(t, "object not found: "+supplierID, err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.False(t, errs.IsValidation(err))
	})
}

func TestObjectsNotFoundError(t *testing.T) {
	err := errs.NewObjectsNotFoundError("productIds", []string{productA, productB})

	assert.Equal(t, "object not found: productIds: "+productA+", "+productB, err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	var batch *errs.ObjectsNotFoundError
	require.ErrorAs(t, fmt.Errorf("create purchase order: %w", err), &batch)
	assert.Equal(t, []string{productA, productB}, batch.IDs)
}

func TestConflictError(t *testing.T) {
	t.Run("should keep a forbidden transition matchable", func(t *testing.T) {
		err := errs.NewConflictErrorWithCause(
			"cannot transition from DRAFT to SENT: allowed APPROVED, CANCELLED", errTransitionNotAllowed,
		)

		assert.Equal(t,
			"conflict: cannot transition from DRAFT to SENT: allowed APPROVED, CANCELLED (cause: status transition not allowed)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, errTransitionNotAllowed)
		assert.NotErrorIs(t, err, errDailySequenceExhausted)
		assert.False(t, errs.IsValidation(err))
	})

	t.Run("should survive wrapping by a handler", func(t *testing.T) {
		err := fmt.Errorf("allocate number: %w", errs.NewConflictErrorWithCause(
			"no purchase order numbers left for prefix PO25690219-P", errDailySequenceExhausted,
		))

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, errDailySequenceExhausted)
	})

	t.Run("should match only the sentinel without a cause", func(t *testing.T) {
		err := errs.NewConflictError("purchase order " + orderID + " was modified concurrently")

		assert.Equal(t, "conflict: purchase order "+orderID+" was modified concurrently", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.NotErrorIs(t, err, errTransitionNotAllowed)
	})
}

func TestInternalError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := errs.NewInternalErrorWithCause("commit purchase order", cause)

	assert.Equal(t, "internal error: commit purchase order (cause: connection reset by peer)", err.Error())
	require.ErrorIs(t, err, errs.ErrInternal)
	require.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, errs.ErrConflict)
	assert.False(t, errs.IsValidation(err))
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "order without items",
			err:      errs.NewValueIsRequiredError("items"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: items",
		},
		{
			name:     "unknown status",
			err:      errs.NewValueIsInvalidErrorWithCause("status", errors.New(`"SHIPPED" is not a valid status`)),
			sentinel: errs.ErrValueIsInvalid,
			message:  `value is invalid: status (cause: "SHIPPED" is not a valid status)`,
		},
		{
			name:     "quantity with too many decimal places",
			err:      errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("0.000000001 has more than 8 decimal places")),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: quantity (cause: 0.000000001 has more than 8 decimal places)",
		},
		{
			name:     "grand total beyond storage",
			err:      errs.NewValueIsOutOfRangeError("grandTotal", "11630000000", "-10000000000", "10000000000"),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 11630000000 is grandTotal, min value is -10000000000, max value is 10000000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.True(t, errs.IsValidation(tt.err))
			assert.True(t, errs.IsValidation(fmt.Errorf("create purchase order: %w", tt.err)))
			assert.NotErrorIs(t, tt.err, errs.ErrObjectNotFound)
		})
	}
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("should expose the offending field", func(t *testing.T) {
		wrapped := fmt.Errorf("compute totals: %w",
			errs.NewValueIsOutOfRangeError("shippingCost", "10000000000", "-10000000000", "10000000000"))

		var rangeErr *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, wrapped, &rangeErr)
		assert.Equal(t, "shippingCost", rangeErr.ParamName)
		assert.Equal(t, "10000000000", rangeErr.Value)
	})

	t.Run("should flatten newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "deliver to\nwarehouse 3", 0, 1000)

		assert.Contains(t, err.Error(), "deliver to warehouse 3")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestIsValidation(t *testing.T) {
	assert.False(t, errs.IsValidation(nil))
	assert.False(t, errs.IsValidation(errRecordNotFound))
	assert.False(t, errs.IsValidation(errs.NewObjectsNotFoundError("productIds", []string{productA})))
}

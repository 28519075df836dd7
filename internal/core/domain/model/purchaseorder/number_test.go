package purchaseorder_test

import (
	"testing"
	"time"

	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixFor(t *testing.T) {
	day := time.Date(2026, time.February, 19, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "PO25690219-P", purchaseorder.PrefixFor(day))
	assert.Equal(t, "PO25681231-P", purchaseorder.PrefixFor(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestNextNumber(t *testing.T) {
	today := time.Date(2026, time.February, 19, 9, 30, 0, 0, time.UTC)

	t.Run("should start at 001 when no order exists for the day", func(t *testing.T) {
		n, err := purchaseorder.NextNumber(today, "")

		require.NoError(t, err)
		assert.Equal(t, purchaseorder.Number("PO25690219-P001"), n)
	})

	t.Run("should increment the highest existing suffix", func(t *testing.T) {
		n, err := purchaseorder.NextNumber(today, "PO25690219-P005")

		require.NoError(t, err)
		assert.Equal(t, purchaseorder.Number("PO25690219-P006"), n)
		assert.Equal(t, 6, n.Sequence())
		assert.Equal(t, "PO25690219-P", n.Prefix())
	})

	t.Run("should carry across digit boundaries", func(t *testing.T) {
		n, err := purchaseorder.NextNumber(today, "PO25690219-P099")

		require.NoError(t, err)
		assert.Equal(t, purchaseorder.Number("PO25690219-P100"), n)
	})

	t.Run("should reject the 1000th order of the day as conflict", func(t *testing.T) {
		_, err := purchaseorder.NextNumber(today, "PO25690219-P999")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.ErrorIs(t, err, purchaseorder.ErrDailySequenceExhausted)
	})

	t.Run("should reject a last number from another day", func(t *testing.T) {
		_, err := purchaseorder.NextNumber(today, "PO25690218-P004")

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("should reject an unparsable suffix", func(t *testing.T) {
		_, err := purchaseorder.NextNumber(today, "PO25690219-Pabc")

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestParseNumber(t *testing.T) {
	n, err := purchaseorder.ParseNumber("PO25690219-P012")
	require.NoError(t, err)
	assert.Equal(t, "PO25690219-P012", n.String())

	for _, bad := range []string{"", "PO2569021-P001", "PO25690219-P01", "XX25690219-P001", "PO25690219-P0001"} {
		_, err = purchaseorder.ParseNumber(bad)
		assert.Error(t, err, bad)
	}
}

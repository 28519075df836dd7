package services_test

import (
	"testing"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/core/domain/services"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func standardItem(t *testing.T, qty, price string) *purchaseorder.LineItem {
	t.Helper()
	item, err := purchaseorder.NewStandardItem(kernel.NewUUID(), "", dec(qty), dec(price))
	require.NoError(t, err)
	return item
}

func TestNewTotalsCalculator(t *testing.T) {
	t.Run("should accept rates in [0, 1)", func(t *testing.T) {
		for _, rate := range []string{"0", "0.07", "0.999"} {
			calc, err := services.NewTotalsCalculator(dec(rate))

			require.NoError(t, err)
			assert.True(t, calc.VATRate().Equal(dec(rate)))
		}
	})

	t.Run("should reject rates outside [0, 1)", func(t *testing.T) {
		for _, rate := range []string{"-0.01", "1", "7"} {
			_, err := services.NewTotalsCalculator(dec(rate))

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestTotalsCalculator_Compute(t *testing.T) {
	calc, err := services.NewTotalsCalculator(services.DefaultVATRate)
	require.NoError(t, err)

	t.Run("should match the reference example", func(t *testing.T) {
		items := []*purchaseorder.LineItem{standardItem(t, "2", "100"), standardItem(t, "1", "50")}

		totals, err := calc.Compute(items, decimal.Zero, dec("20"))

		require.NoError(t, err)
		assert.Equal(t, "250.00000000", totals.Subtotal.StringFixed(8))
		assert.Equal(t, "17.50000000", totals.VATAmount.StringFixed(8))
		assert.Equal(t, "287.50000000", totals.GrandTotal.StringFixed(8))
		assert.Equal(t, "20.00000000", totals.ShippingCost.StringFixed(8))
	})

	t.Run("should apply discount before VAT", func(t *testing.T) {
		items := []*purchaseorder.LineItem{standardItem(t, "1", "1000")}

		totals, err := calc.Compute(items, dec("100"), dec("50"))

		require.NoError(t, err)
		assert.Equal(t, "63", totals.VATAmount.String())
		assert.Equal(t, "1013", totals.GrandTotal.String())
	})

	t.Run("should sum individually rounded line totals", func(t *testing.T) {
		// each line is 0.000000045 before rounding
		items := []*purchaseorder.LineItem{
			standardItem(t, "1.5", "0.00000003"),
			standardItem(t, "1.5", "0.00000003"),
			standardItem(t, "1.5", "0.00000003"),
		}

		totals, err := calc.Compute(items, decimal.Zero, decimal.Zero)

		require.NoError(t, err)
		sum := decimal.Zero
		for _, item := range items {
			sum = sum.Add(item.TotalPrice())
		}
		assert.True(t, totals.Subtotal.Equal(sum))
		assert.Equal(t, "0.00000015", totals.Subtotal.String())
	})

	t.Run("should keep grand total identity for awkward amounts", func(t *testing.T) {
		cases := []struct {
			qty, price, discount, shipping string
		}{
			{"3", "33.33333333", "0", "0"},
			{"7.25", "19.99", "12.345", "3.5"},
			{"0.0001", "0.00000001", "0", "0.00000001"},
			{"123456.789", "0.1", "1000", "0"},
			{"1", "10", "25", "1"},
		}

		for _, tc := range cases {
			items := []*purchaseorder.LineItem{standardItem(t, tc.qty, tc.price), standardItem(t, "1", "1")}

			totals, err := calc.Compute(items, dec(tc.discount), dec(tc.shipping))

			require.NoError(t, err)
			want := totals.Subtotal.Sub(totals.DiscountAmount).Add(totals.VATAmount).Add(totals.ShippingCost)
			assert.True(t, totals.GrandTotal.Equal(want), "grand total for %+v", tc)

			wantVAT := kernel.RoundMoney(totals.Subtotal.Sub(totals.DiscountAmount).Mul(services.DefaultVATRate))
			assert.True(t, totals.VATAmount.Equal(wantVAT), "vat for %+v", tc)
		}
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := calc.Compute(nil, decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative discount and shipping", func(t *testing.T) {
		items := []*purchaseorder.LineItem{standardItem(t, "1", "1")}

		_, err := calc.Compute(items, dec("-1"), decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "discountAmount")

		_, err = calc.Compute(items, decimal.Zero, dec("-1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shippingCost")
	})

	t.Run("should reject discount and shipping with more than 8 decimal places", func(t *testing.T) {
		items := []*purchaseorder.LineItem{standardItem(t, "1", "100")}

		_, err := calc.Compute(items, dec("0.000000001"), decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "discountAmount")

		_, err = calc.Compute(items, decimal.Zero, dec("1.123456789"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "shippingCost")
	})

	t.Run("should reject amounts that do not fit storage", func(t *testing.T) {
		// each line fits, the sum does not
		items := []*purchaseorder.LineItem{
			standardItem(t, "6000", "1000000"),
			standardItem(t, "6000", "1000000"),
		}
		_, err := calc.Compute(items, decimal.Zero, decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "subtotal")

		// subtotal fits, VAT and shipping push the grand total over
		items = []*purchaseorder.LineItem{standardItem(t, "9000", "1000000")}
		_, err = calc.Compute(items, decimal.Zero, dec("2000000000"))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "grandTotal")

		_, err = calc.Compute(items, decimal.Zero, dec("10000000000"))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "shippingCost")
	})

	t.Run("should reject items not built by a constructor", func(t *testing.T) {
		_, err := calc.Compute([]*purchaseorder.LineItem{{}}, decimal.Zero, decimal.Zero)

		require.ErrorIs(t, err, purchaseorder.ErrLineItemIsNotConstructed)
	})
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, "0.00000005", services.LineTotal(dec("1.5"), dec("0.00000003")).String())
	assert.Equal(t, "200", services.LineTotal(dec("2"), dec("100")).String())
}

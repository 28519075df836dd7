package services

import (
	"errors"
	"fmt"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultVATRate is the Thai value added tax rate.
var DefaultVATRate = decimal.RequireFromString("0.07")

// TotalsCalculator computes purchase order totals with fixed-point decimal
// arithmetic. Every intermediate amount is rounded to kernel.MoneyScale
// places, half away from zero:
//
//	totalPrice = round(quantity * unitPrice)
//	subtotal   = round(Σ totalPrice)
//	vatAmount  = round((subtotal - discount) * vatRate)
//	grandTotal = round(subtotal - discount + vatAmount + shipping)
//
// Line totals are rounded before they are summed. TotalsCalculator performs
// no I/O and is safe for concurrent use.
//
// Example usage:
//
//	calc, _ := NewTotalsCalculator(DefaultVATRate)
//	item, _ := purchaseorder.NewStandardItem(productID, "", decimal.NewFromInt(10), decimal.NewFromInt(25))
//	totals, err := calc.Compute([]*purchaseorder.LineItem{item}, decimal.Zero, decimal.Zero)
//	// totals.Subtotal = 250, totals.VATAmount = 17.5, totals.GrandTotal = 267.5
type TotalsCalculator struct {
	vatRate decimal.Decimal
}

var _ purchaseorder.TotalsCalculator = TotalsCalculator{}

// NewTotalsCalculator creates a calculator for vatRate, which must lie in [0, 1).
func NewTotalsCalculator(vatRate decimal.Decimal) (TotalsCalculator, error) {
	if vatRate.IsNegative() || vatRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return TotalsCalculator{}, errs.NewValueIsOutOfRangeError("vatRate", vatRate, 0, 1)
	}
	return TotalsCalculator{vatRate: vatRate}, nil
}

func (c TotalsCalculator) VATRate() decimal.Decimal {
	return c.vatRate
}

// Compute returns the totals for items with the given discount and shipping
// cost. Discount is applied before VAT; shipping is added after VAT.
// Discount and shipping with more than kernel.MoneyScale places are rejected,
// as are amounts whose magnitude reaches kernel.MaxMoney.
func (c TotalsCalculator) Compute(
	items []*purchaseorder.LineItem,
	discount, shipping decimal.Decimal,
) (purchaseorder.Totals, error) {
	if len(items) == 0 {
		return purchaseorder.Totals{}, errs.NewValueIsRequiredError("items")
	}
	if discount.IsNegative() {
		return purchaseorder.Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"discountAmount", fmt.Errorf("%s is negative", discount),
		)
	}
	if shipping.IsNegative() {
		return purchaseorder.Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"shippingCost", fmt.Errorf("%s is negative", shipping),
		)
	}
	if err := errors.Join(
		kernel.CheckMoney("discountAmount", discount),
		kernel.CheckMoney("shippingCost", shipping),
	); err != nil {
		return purchaseorder.Totals{}, err
	}

	sum := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return purchaseorder.Totals{}, err
		}
		sum = sum.Add(LineTotal(item.Quantity(), item.UnitPrice()))
	}

	subtotal := kernel.RoundMoney(sum)
	taxable := subtotal.Sub(discount)
	vat := kernel.RoundMoney(taxable.Mul(c.vatRate))
	grandTotal := kernel.RoundMoney(taxable.Add(vat).Add(shipping))

	// Every stored amount must fit the storage columns.
	if err := errors.Join(
		kernel.CheckMoneyRange("subtotal", subtotal),
		kernel.CheckMoneyRange("vatAmount", vat),
		kernel.CheckMoneyRange("grandTotal", grandTotal),
	); err != nil {
		return purchaseorder.Totals{}, err
	}

	return purchaseorder.Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		VATAmount:      vat,
		ShippingCost:   shipping,
		GrandTotal:     grandTotal,
	}, nil
}

// LineTotal is round(quantity * unitPrice).
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return kernel.RoundMoney(quantity.Mul(unitPrice))
}

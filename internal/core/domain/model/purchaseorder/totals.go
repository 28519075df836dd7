package purchaseorder

import (
	"github.com/shopspring/decimal"
)

// Totals are the order-level amounts derived from the line items, the
// discount and the shipping cost.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	VATAmount      decimal.Decimal
	ShippingCost   decimal.Decimal
	GrandTotal     decimal.Decimal
}

// TotalsCalculator computes Totals for a set of line items. The
// implementation lives in the domain services package; the aggregate only
// depends on this contract so creation and revision share one calculation.
type TotalsCalculator interface {
	Compute(items []*LineItem, discount, shipping decimal.Decimal) (Totals, error)
}

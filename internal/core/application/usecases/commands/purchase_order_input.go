package commands

import (
	"errors"
	"fmt"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PurchaseOrderInput carries the fields of a create or full update request.
// Nil pointers mean "not supplied"; how that is treated depends on the command.
type PurchaseOrderInput struct {
	SupplierID     kernel.UUID
	UserID         *kernel.UUID
	IssueDate      time.Time
	DeliveryDate   time.Time
	DiscountAmount *decimal.Decimal
	ShippingCost   *decimal.Decimal
	Notes          string
	Items          []LineItemInput
}

// validate checks everything that can be checked without storage.
func (in PurchaseOrderInput) validate() error {
	var supplierErr error
	if err := in.SupplierID.Validate(); err != nil {
		supplierErr = errs.NewValueIsRequiredErrorWithCause("supplierId", err)
	}

	var userErr error
	if in.UserID != nil {
		userErr = in.UserID.Validate()
	}

	var issueErr, deliveryErr error
	if in.IssueDate.IsZero() {
		issueErr = errs.NewValueIsRequiredError("issueDate")
	}
	if in.DeliveryDate.IsZero() {
		deliveryErr = errs.NewValueIsRequiredError("deliveryDate")
	}

	var discountErr, shippingErr error
	if in.DiscountAmount != nil && in.DiscountAmount.IsNegative() {
		discountErr = errs.NewValueIsInvalidErrorWithCause("discountAmount", fmt.Errorf("%s is negative", in.DiscountAmount))
	}
	if in.ShippingCost != nil && in.ShippingCost.IsNegative() {
		shippingErr = errs.NewValueIsInvalidErrorWithCause("shippingCost", fmt.Errorf("%s is negative", in.ShippingCost))
	}

	_, itemsErr := buildItems(in.Items)

	return errors.Join(supplierErr, userErr, issueErr, deliveryErr, discountErr, shippingErr, itemsErr)
}

func (in PurchaseOrderInput) clone() PurchaseOrderInput {
	out := in
	if in.UserID != nil {
		id := *in.UserID
		out.UserID = &id
	}
	if in.DiscountAmount != nil {
		d := *in.DiscountAmount
		out.DiscountAmount = &d
	}
	if in.ShippingCost != nil {
		s := *in.ShippingCost
		out.ShippingCost = &s
	}
	out.Items = copyInputs(in.Items)
	return out
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdatePurchaseOrderCommandIsNotConstructed = errors.New(
	"UpdatePurchaseOrderCommand must be created via NewUpdatePurchaseOrderCommand constructor",
)

// UpdatePurchaseOrderCommand fully revises an order: header fields and the
// complete item set. Omitted fields behave as follows:
//   - user: the current user is kept
//   - discount: the stored discount is carried forward
//   - shipping cost: zero, as on create
type UpdatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderID kernel.UUID
	input           PurchaseOrderInput

	guard guard.ConstructorGuard
}

func NewUpdatePurchaseOrderCommand(purchaseOrderID kernel.UUID, in PurchaseOrderInput) (UpdatePurchaseOrderCommand, error) {
	var idErr error
	if err := purchaseOrderID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("id", err)
	}

	if err := errors.Join(idErr, in.validate()); err != nil {
		return UpdatePurchaseOrderCommand{}, err
	}

	return UpdatePurchaseOrderCommand{
		purchaseOrderID: purchaseOrderID,
		input:           in.clone(),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePurchaseOrderCommandIsNotConstructed)
}

func (c UpdatePurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c UpdatePurchaseOrderCommand) SupplierID() kernel.UUID {
	return c.input.SupplierID
}

// UserID is nil when the current user should be kept.
func (c UpdatePurchaseOrderCommand) UserID() *kernel.UUID {
	return c.input.UserID
}

// DiscountAmount is nil when the stored discount should be carried forward.
func (c UpdatePurchaseOrderCommand) DiscountAmount() *decimal.Decimal {
	return c.input.DiscountAmount
}

func (c UpdatePurchaseOrderCommand) ShippingCost() decimal.Decimal {
	return valueOrZero(c.input.ShippingCost)
}

func (c UpdatePurchaseOrderCommand) Items() []LineItemInput {
	return copyInputs(c.input.Items)
}

package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"
)

var ErrDeletePurchaseOrderCommandIsNotConstructed = errors.New(
	"DeletePurchaseOrderCommand must be created via NewDeletePurchaseOrderCommand constructor",
)

// DeletePurchaseOrderCommand removes an order together with its line items.
type DeletePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletePurchaseOrderCommand(purchaseOrderID kernel.UUID) (DeletePurchaseOrderCommand, error) {
	if err := purchaseOrderID.Validate(); err != nil {
		return DeletePurchaseOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	return DeletePurchaseOrderCommand{
		purchaseOrderID: purchaseOrderID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c DeletePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeletePurchaseOrderCommandIsNotConstructed)
}

func (c DeletePurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

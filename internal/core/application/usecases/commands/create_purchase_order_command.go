package commands

import (
	"errors"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand requests a new DRAFT purchase order.
// A nil discount or shipping cost means zero. A nil user is resolved by the
// handler's UserResolver.
//
// Example:
//
//	cmd, err := NewCreatePurchaseOrderCommand(PurchaseOrderInput{
//	    SupplierID:   supplierID,
//	    IssueDate:    issueDate,
//	    DeliveryDate: deliveryDate,
//	    Items: []LineItemInput{
//	        {ItemType: purchaseorder.Standard, ProductID: &productID, Quantity: qty, UnitPrice: price},
//	    },
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid purchase order: %w", err)
//	}
//	details, err := handler.Handle(ctx, cmd)
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	input PurchaseOrderInput

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand validates in and returns the command.
// All field errors are reported together.
func NewCreatePurchaseOrderCommand(in PurchaseOrderInput) (CreatePurchaseOrderCommand, error) {
	if err := in.validate(); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return CreatePurchaseOrderCommand{
		input: in.clone(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

func (c CreatePurchaseOrderCommand) SupplierID() kernel.UUID {
	return c.input.SupplierID
}

// UserID is nil when the request named no user.
func (c CreatePurchaseOrderCommand) UserID() *kernel.UUID {
	return c.input.UserID
}

func (c CreatePurchaseOrderCommand) IssueDate() time.Time {
	return c.input.IssueDate
}

func (c CreatePurchaseOrderCommand) DeliveryDate() time.Time {
	return c.input.DeliveryDate
}

func (c CreatePurchaseOrderCommand) DiscountAmount() decimal.Decimal {
	return valueOrZero(c.input.DiscountAmount)
}

func (c CreatePurchaseOrderCommand) ShippingCost() decimal.Decimal {
	return valueOrZero(c.input.ShippingCost)
}

func (c CreatePurchaseOrderCommand) Notes() string {
	return c.input.Notes
}

func (c CreatePurchaseOrderCommand) Items() []LineItemInput {
	return copyInputs(c.input.Items)
}

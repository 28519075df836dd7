package queries

import (
	"errors"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPurchaseOrderQueryIsNotConstructed = errors.New(
	"GetPurchaseOrderQuery must be created via NewGetPurchaseOrderQuery constructor",
)

// GetPurchaseOrderQuery fetches one purchase order with everything needed to
// show it: supplier, responsible user, and the line items with their products.
type GetPurchaseOrderQuery struct {
	purchaseOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPurchaseOrderQuery(purchaseOrderID kernel.UUID) (GetPurchaseOrderQuery, error) {
	if err := purchaseOrderID.Validate(); err != nil {
		return GetPurchaseOrderQuery{}, err
	}
	return GetPurchaseOrderQuery{
		purchaseOrderID: purchaseOrderID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q GetPurchaseOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderQueryIsNotConstructed)
}

func (q GetPurchaseOrderQuery) PurchaseOrderID() kernel.UUID {
	return q.purchaseOrderID
}

// Party is a referenced supplier or user. Name is empty when the referenced
// row no longer exists.
type Party struct {
	ID   kernel.UUID
	Name string
}

// ProductRef is the catalogue product behind a line item.
type ProductRef struct {
	ID   kernel.UUID
	Name string
	SKU  string
	Unit string
}

// LineItemView is one line of a purchase order in entry order.
type LineItemView struct {
	ID       kernel.UUID
	ItemType purchaseorder.ItemType
	// Product is nil for free-text lines.
	Product    *ProductRef
	ItemName   string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// GetPurchaseOrderQueryResponse is a fully hydrated purchase order.
type GetPurchaseOrderQueryResponse struct {
	ID             kernel.UUID
	PONumber       string
	Status         purchaseorder.Status
	Supplier       Party
	User           Party
	IssueDate      time.Time
	DeliveryDate   time.Time
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	VATAmount      decimal.Decimal
	ShippingCost   decimal.Decimal
	GrandTotal     decimal.Decimal
	Notes          string
	CreatedAt      time.Time
	Items          []LineItemView
}

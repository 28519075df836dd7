package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Date accepts either an RFC 3339 timestamp or a bare YYYY-MM-DD date, which
// is read as midnight UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("date %q is neither RFC 3339 nor YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// LineItemRequest is one requested line. Money and quantities may be sent as
// JSON numbers or strings.
type LineItemRequest struct {
	ItemType  string          `json:"itemType" validate:"omitempty,oneof=STANDARD MANUAL OTHER"`
	ProductID *string         `json:"productId" validate:"omitempty,uuid"`
	ItemName  string          `json:"itemName" validate:"max=255"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// PurchaseOrderRequest is the body of create and full update.
type PurchaseOrderRequest struct {
	SupplierID     string            `json:"supplierId" validate:"required,uuid"`
	UserID         *string           `json:"userId" validate:"omitempty,uuid"`
	IssueDate      Date              `json:"issueDate"`
	DeliveryDate   Date              `json:"deliveryDate"`
	DiscountAmount *decimal.Decimal  `json:"discountAmount"`
	ShippingCost   *decimal.Decimal  `json:"shippingCost"`
	Notes          string            `json:"notes" validate:"max=2000"`
	Items          []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PatchPurchaseOrderRequest is the body of a status or metadata change.
// Absent fields are left unchanged.
type PatchPurchaseOrderRequest struct {
	Status       *string `json:"status"`
	DeliveryDate *Date   `json:"deliveryDate"`
	Notes        *string `json:"notes" validate:"omitempty,max=2000"`
}

func (r PurchaseOrderRequest) toInput() (commands.PurchaseOrderInput, error) {
	supplierID, supplierErr := parseID("supplierId", r.SupplierID)
	userID, userErr := parseOptionalID("userId", r.UserID)

	items := make([]commands.LineItemInput, 0, len(r.Items))
	var itemErrs []error
	for i, item := range r.Items {
		in, err := item.toInput()
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, in)
	}

	if err := errors.Join(supplierErr, userErr, errors.Join(itemErrs...)); err != nil {
		return commands.PurchaseOrderInput{}, err
	}

	return commands.PurchaseOrderInput{
		SupplierID:     supplierID,
		UserID:         userID,
		IssueDate:      r.IssueDate.Time,
		DeliveryDate:   r.DeliveryDate.Time,
		DiscountAmount: r.DiscountAmount,
		ShippingCost:   r.ShippingCost,
		Notes:          r.Notes,
		Items:          items,
	}, nil
}

func (r LineItemRequest) toInput() (commands.LineItemInput, error) {
	productID, err := parseOptionalID("productId", r.ProductID)
	if err != nil {
		return commands.LineItemInput{}, err
	}

	var itemType purchaseorder.ItemType
	if strings.TrimSpace(r.ItemType) != "" {
		if itemType, err = purchaseorder.ParseItemType(r.ItemType); err != nil {
			return commands.LineItemInput{}, err
		}
	}

	return commands.LineItemInput{
		ItemType:  itemType,
		ProductID: productID,
		ItemName:  r.ItemName,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}, nil
}

func (r PatchPurchaseOrderRequest) deliveryDate() *time.Time {
	if r.DeliveryDate == nil {
		return nil
	}
	t := r.DeliveryDate.Time
	return &t
}

func parseID(param, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(strings.TrimSpace(raw))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}

// parseOptionalID treats nil and blank strings as absent.
func parseOptionalID(param string, raw *string) (*kernel.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := parseID(param, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

package commands

import (
	"errors"
	"fmt"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItemInput is one requested line as received from a client.
// An empty ItemType means STANDARD.
type LineItemInput struct {
	ItemType  purchaseorder.ItemType
	ProductID *kernel.UUID
	ItemName  string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

func (in LineItemInput) build() (*purchaseorder.LineItem, error) {
	itemType := in.ItemType
	if itemType == "" {
		itemType = purchaseorder.Standard
	}
	return purchaseorder.NewLineItem(itemType, in.ProductID, in.ItemName, in.Quantity, in.UnitPrice)
}

// buildItems creates a fresh set of line items. Errors carry the item index.
func buildItems(inputs []LineItemInput) ([]*purchaseorder.LineItem, error) {
	if len(inputs) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]*purchaseorder.LineItem, 0, len(inputs))
	var all []error
	for i, in := range inputs {
		item, err := in.build()
		if err != nil {
			all = append(all, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(all...); err != nil {
		return nil, err
	}
	return items, nil
}

func copyInputs(inputs []LineItemInput) []LineItemInput {
	out := make([]LineItemInput, len(inputs))
	copy(out, inputs)
	return out
}

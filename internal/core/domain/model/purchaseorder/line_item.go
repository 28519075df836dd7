package purchaseorder

import (
	"errors"
	"fmt"
	"strings"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through one of its constructors.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewStandardItem, NewManualItem or NewOtherItem")

	// ErrItemSubjectIsNotConstructed is returned for a zero ItemSubject.
	ErrItemSubjectIsNotConstructed = errs.NewValueIsRequiredError("productId or itemName")
)

// ItemSubject says what a MANUAL or OTHER line is about: a catalogue product,
// a free-text name, or both. It cannot be empty.
type ItemSubject struct {
	productID *kernel.UUID
	name      string
}

// ProductSubject refers to a catalogue product. name may be empty, in which
// case the product name is snapshotted later.
func ProductSubject(productID kernel.UUID, name string) (ItemSubject, error) {
	if err := productID.Validate(); err != nil {
		return ItemSubject{}, err
	}
	return ItemSubject{productID: &productID, name: strings.TrimSpace(name)}, nil
}

// NamedSubject describes the line by name only.
func NamedSubject(name string) (ItemSubject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ItemSubject{}, errs.NewValueIsRequiredError("itemName")
	}
	return ItemSubject{name: name}, nil
}

func (s ItemSubject) Validate() error {
	if s.productID == nil && s.name == "" {
		return ErrItemSubjectIsNotConstructed
	}
	return nil
}

// LineItem is a single line of a purchase order. totalPrice is always
// round(quantity * unitPrice) at money scale.
type LineItem struct {
	id         kernel.UUID
	itemType   ItemType
	productID  *kernel.UUID
	itemName   string
	quantity   decimal.Decimal
	unitPrice  decimal.Decimal
	totalPrice decimal.Decimal

	isConstructed bool
}

// NewStandardItem creates a catalogue line. The product id is mandatory.
func NewStandardItem(productID kernel.UUID, itemName string, quantity, unitPrice decimal.Decimal) (*LineItem, error) {
	if err := productID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	return newLineItem(Standard, &productID, itemName, quantity, unitPrice)
}

func NewManualItem(subject ItemSubject, quantity, unitPrice decimal.Decimal) (*LineItem, error) {
	if err := subject.Validate(); err != nil {
		return nil, err
	}
	return newLineItem(Manual, subject.productID, subject.name, quantity, unitPrice)
}

func NewOtherItem(subject ItemSubject, quantity, unitPrice decimal.Decimal) (*LineItem, error) {
	if err := subject.Validate(); err != nil {
		return nil, err
	}
	return newLineItem(Other, subject.productID, subject.name, quantity, unitPrice)
}

// NewLineItem dispatches loosely typed input (as received from a request)
// to the constructor matching itemType.
func NewLineItem(
	itemType ItemType,
	productID *kernel.UUID,
	itemName string,
	quantity, unitPrice decimal.Decimal,
) (*LineItem, error) {
	if err := itemType.Validate(); err != nil {
		return nil, err
	}

	if itemType == Standard {
		if productID == nil {
			return nil, errs.NewValueIsRequiredErrorWithCause(
				"productId", fmt.Errorf("%s items must reference a product", Standard),
			)
		}
		return NewStandardItem(*productID, itemName, quantity, unitPrice)
	}

	var (
		subject ItemSubject
		err     error
	)
	if productID != nil {
		subject, err = ProductSubject(*productID, itemName)
	} else {
		subject, err = NamedSubject(itemName)
	}
	if err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause(
			"productId or itemName", fmt.Errorf("%s items need a product or a name: %w", itemType, err),
		)
	}

	if itemType == Manual {
		return NewManualItem(subject, quantity, unitPrice)
	}
	return NewOtherItem(subject, quantity, unitPrice)
}

// LineItemSnapshot carries persisted line item state.
type LineItemSnapshot struct {
	ID         kernel.UUID
	ItemType   ItemType
	ProductID  *kernel.UUID
	ItemName   string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// RestoreLineItem rebuilds a line read back from storage. Stored totals are
// trusted as written.
func RestoreLineItem(s LineItemSnapshot) (*LineItem, error) {
	item := &LineItem{
		itemType:      s.ItemType,
		productID:     s.ProductID,
		itemName:      s.ItemName,
		quantity:      s.Quantity,
		unitPrice:     s.UnitPrice,
		totalPrice:    s.TotalPrice,
		isConstructed: true,
	}
	if err := errors.Join(s.ID.Validate(), s.ItemType.Validate()); err != nil {
		return nil, err
	}
	item.id = s.ID
	return item, nil
}

func newLineItem(
	itemType ItemType,
	productID *kernel.UUID,
	itemName string,
	quantity, unitPrice decimal.Decimal,
) (*LineItem, error) {
	item := &LineItem{
		id:            kernel.NewUUID(),
		itemType:      itemType,
		productID:     productID,
		itemName:      strings.TrimSpace(itemName),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	totalPrice := kernel.RoundMoney(item.quantity.Mul(item.unitPrice))
	if err := kernel.CheckMoneyRange("totalPrice", totalPrice); err != nil {
		return nil, err
	}
	item.totalPrice = totalPrice
	return item, nil
}

func (i *LineItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

func (i *LineItem) ID() kernel.UUID {
	return i.id
}

func (i *LineItem) ItemType() ItemType {
	return i.itemType
}

// ProductID is nil for lines that are not linked to a product.
func (i *LineItem) ProductID() *kernel.UUID {
	if i.productID == nil {
		return nil
	}
	id := *i.productID
	return &id
}

func (i *LineItem) ItemName() string {
	return i.itemName
}

func (i *LineItem) Quantity() decimal.Decimal {
	return i.quantity
}

func (i *LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i *LineItem) TotalPrice() decimal.Decimal {
	return i.totalPrice
}

// NeedsNameSnapshot reports whether the line references a product but has no
// name of its own yet.
func (i *LineItem) NeedsNameSnapshot() bool {
	return i.productID != nil && i.itemName == ""
}

// SnapshotName copies the product's name into a nameless line. Lines that
// already have a name keep it.
func (i *LineItem) SnapshotName(productName string) {
	if i.itemName != "" {
		return
	}
	i.itemName = strings.TrimSpace(productName)
}

func (i *LineItem) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	if err := kernel.CheckMoney("quantity", quantity); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	if err := kernel.CheckMoney("unitPrice", unitPrice); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

package purchaseorder

import (
	"errors"
	"strings"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder was not
	// created through NewPurchaseOrder or Restore.
	ErrPurchaseOrderIsNotConstructed = errors.New("PurchaseOrder must be created via NewPurchaseOrder constructor")

	// ErrTotalsCalculatorIsRequired is returned when no calculator is supplied.
	ErrTotalsCalculatorIsRequired = errs.NewValueIsRequiredError("totals calculator")
)

// Header groups the user-editable header fields of an order. DiscountAmount
// and ShippingCost are inputs to the totals calculation.
type Header struct {
	SupplierID     kernel.UUID
	UserID         kernel.UUID
	IssueDate      time.Time
	DeliveryDate   time.Time
	DiscountAmount decimal.Decimal
	ShippingCost   decimal.Decimal
	Notes          string
}

// PurchaseOrder is the aggregate root for a purchase order and its line items.
//
// PurchaseOrder follows these invariants:
//   - number is assigned at construction and never changes
//   - there is at least one line item
//   - the totals are always those the TotalsCalculator produced for the
//     current items, discount and shipping
//   - status only moves along the transition table
type PurchaseOrder struct {
	id     kernel.UUID
	number Number
	status Status

	supplierID kernel.UUID
	userID     kernel.UUID

	issueDate    time.Time
	deliveryDate time.Time

	totals Totals
	notes  string

	createdAt time.Time

	items []*LineItem

	isConstructed bool
}

// NewPurchaseOrder creates a DRAFT order numbered number. Totals are computed
// by calc from items, header.DiscountAmount and header.ShippingCost.
//
// Example:
//
//	number, _ := purchaseorder.NextNumber(today, lastNumber)
//	po, err := purchaseorder.NewPurchaseOrder(number, header, items, calculator, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewPurchaseOrder(
	number Number,
	header Header,
	items []*LineItem,
	calc TotalsCalculator,
	createdAt time.Time,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		id:            kernel.NewUUID(),
		status:        Draft,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		po.setNumber(number),
		po.apply(header, items, calc),
	); err != nil {
		return nil, err
	}

	return po, nil
}

// Snapshot carries persisted purchase order state.
type Snapshot struct {
	ID             kernel.UUID
	Number         string
	Status         string
	SupplierID     kernel.UUID
	UserID         kernel.UUID
	IssueDate      time.Time
	DeliveryDate   time.Time
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	VATAmount      decimal.Decimal
	ShippingCost   decimal.Decimal
	GrandTotal     decimal.Decimal
	Notes          string
	CreatedAt      time.Time
	Items          []*LineItem
}

// Restore rebuilds an order read back from storage without recomputing its totals.
func Restore(s Snapshot) (*PurchaseOrder, error) {
	status, statusErr := ParseStatus(s.Status)

	po := &PurchaseOrder{
		status:       status,
		supplierID:   s.SupplierID,
		userID:       s.UserID,
		issueDate:    s.IssueDate,
		deliveryDate: s.DeliveryDate,
		totals: Totals{
			Subtotal:       s.Subtotal,
			DiscountAmount: s.DiscountAmount,
			VATAmount:      s.VATAmount,
			ShippingCost:   s.ShippingCost,
			GrandTotal:     s.GrandTotal,
		},
		notes:         s.Notes,
		createdAt:     s.CreatedAt,
		items:         s.Items,
		isConstructed: true,
	}

	if err := errors.Join(
		s.ID.Validate(),
		po.setNumber(Number(s.Number)),
		statusErr,
		validateItems(s.Items),
	); err != nil {
		return nil, err
	}
	po.id = s.ID

	return po, nil
}

func (o *PurchaseOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrPurchaseOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *PurchaseOrder) ID() kernel.UUID {
	return o.id
}

// Number returns the order number assigned at creation.
func (o *PurchaseOrder) Number() Number {
	return o.number
}

func (o *PurchaseOrder) Status() Status {
	return o.status
}

func (o *PurchaseOrder) SupplierID() kernel.UUID {
	return o.supplierID
}

func (o *PurchaseOrder) UserID() kernel.UUID {
	return o.userID
}

func (o *PurchaseOrder) IssueDate() time.Time {
	return o.issueDate
}

func (o *PurchaseOrder) DeliveryDate() time.Time {
	return o.deliveryDate
}

func (o *PurchaseOrder) Totals() Totals {
	return o.totals
}

func (o *PurchaseOrder) Subtotal() decimal.Decimal {
	return o.totals.Subtotal
}

func (o *PurchaseOrder) DiscountAmount() decimal.Decimal {
	return o.totals.DiscountAmount
}

func (o *PurchaseOrder) VATAmount() decimal.Decimal {
	return o.totals.VATAmount
}

func (o *PurchaseOrder) ShippingCost() decimal.Decimal {
	return o.totals.ShippingCost
}

func (o *PurchaseOrder) GrandTotal() decimal.Decimal {
	return o.totals.GrandTotal
}

func (o *PurchaseOrder) Notes() string {
	return o.notes
}

func (o *PurchaseOrder) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the line items in entry order.
func (o *PurchaseOrder) Items() []*LineItem {
	items := make([]*LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// ProductIDs lists the distinct products referenced by the line items.
func (o *PurchaseOrder) ProductIDs() []kernel.UUID {
	return DistinctProductIDs(o.items)
}

// Revise replaces every header field and the whole item set, recomputing
// the totals. Number, status and creation time are kept.
func (o *PurchaseOrder) Revise(header Header, items []*LineItem, calc TotalsCalculator) error {
	if err := o.Validate(); err != nil {
		return err
	}

	revised := *o
	if err := revised.apply(header, items, calc); err != nil {
		return err
	}
	*o = revised
	return nil
}

// ChangeStatus moves the order to target if the transition table allows it.
func (o *PurchaseOrder) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Reschedule changes the expected delivery date.
func (o *PurchaseOrder) Reschedule(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	o.deliveryDate = deliveryDate
	return nil
}

// SetNotes replaces the notes; an empty string clears them.
func (o *PurchaseOrder) SetNotes(notes string) {
	o.notes = strings.TrimSpace(notes)
}

// DistinctProductIDs lists the products referenced by items, first
// occurrence order.
func DistinctProductIDs(items []*LineItem) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(items))
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		if item == nil || item.productID == nil {
			continue
		}
		if _, ok := seen[*item.productID]; ok {
			continue
		}
		seen[*item.productID] = struct{}{}
		ids = append(ids, *item.productID)
	}
	return ids
}

func (o *PurchaseOrder) apply(header Header, items []*LineItem, calc TotalsCalculator) error {
	if calc == nil {
		return ErrTotalsCalculatorIsRequired
	}

	if err := errors.Join(
		validateReference("supplierId", header.SupplierID),
		validateReference("userId", header.UserID),
		validateDate("issueDate", header.IssueDate),
		validateDate("deliveryDate", header.DeliveryDate),
		validateItems(items),
	); err != nil {
		return err
	}

	totals, err := calc.Compute(items, header.DiscountAmount, header.ShippingCost)
	if err != nil {
		return err
	}

	o.supplierID = header.SupplierID
	o.userID = header.UserID
	o.issueDate = header.IssueDate
	o.deliveryDate = header.DeliveryDate
	o.notes = strings.TrimSpace(header.Notes)
	o.totals = totals
	o.items = append([]*LineItem(nil), items...)
	return nil
}

func (o *PurchaseOrder) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func validateReference(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}

func validateDate(param string, d time.Time) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func validateItems(items []*LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

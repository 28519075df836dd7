package queries

import (
	"errors"
	"strings"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListPurchaseOrdersQueryIsNotConstructed = errors.New(
	"ListPurchaseOrdersQuery must be created via NewListPurchaseOrdersQuery constructor",
)

// ListPurchaseOrdersQuery lists purchase orders, newest first. All filters
// are optional and combine with AND.
type ListPurchaseOrdersQuery struct {
	status     *purchaseorder.Status
	supplierID *kernel.UUID
	search     string

	guard guard.ConstructorGuard
}

// NewListPurchaseOrdersQuery builds the query. A blank status or search is
// treated as absent; an unknown status is a validation error. Search matches
// the order number or supplier name, case-insensitively.
func NewListPurchaseOrdersQuery(status string, supplierID *kernel.UUID, search string) (ListPurchaseOrdersQuery, error) {
	q := ListPurchaseOrdersQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}

	var statusErr, supplierErr error
	if strings.TrimSpace(status) != "" {
		parsed, err := purchaseorder.ParseStatus(status)
		if err != nil {
			statusErr = err
		} else {
			q.status = &parsed
		}
	}
	if supplierID != nil {
		if err := supplierID.Validate(); err != nil {
			supplierErr = err
		} else {
			id := *supplierID
			q.supplierID = &id
		}
	}

	if err := errors.Join(statusErr, supplierErr); err != nil {
		return ListPurchaseOrdersQuery{}, err
	}
	return q, nil
}

func (q ListPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPurchaseOrdersQueryIsNotConstructed)
}

func (q ListPurchaseOrdersQuery) Status() *purchaseorder.Status {
	return q.status
}

func (q ListPurchaseOrdersQuery) SupplierID() *kernel.UUID {
	return q.supplierID
}

func (q ListPurchaseOrdersQuery) Search() string {
	return q.search
}

// PurchaseOrderSummary is one row of the purchase order list.
type PurchaseOrderSummary struct {
	ID           kernel.UUID
	PONumber     string
	Status       purchaseorder.Status
	Supplier     Party
	User         Party
	IssueDate    time.Time
	DeliveryDate time.Time
	GrandTotal   decimal.Decimal
	ItemCount    int
	CreatedAt    time.Time
}

// Package ports defines the contracts between the purchase order core and
// its infrastructure: repositories for the aggregate and its references, and
// the unit of work that scopes them to one transaction.
package ports

import (
	"context"
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
)

// ErrDuplicatePONumber is returned by PurchaseOrderRepository.Add when the
// order number is already taken, typically by a concurrent create.
var ErrDuplicatePONumber = errors.New("purchase order number already exists")

// PurchaseOrderRepository defines the persistence contract for purchase
// order aggregates. A repository obtained from a UnitOfWork runs every call
// inside that unit's transaction.
type PurchaseOrderRepository interface {
	// Add inserts the header and every line item.
	// Returns an error wrapping ErrDuplicatePONumber on a number collision.
	Add(ctx context.Context, po *purchaseorder.PurchaseOrder) error

	// Update writes the header fields (status, references, dates, totals, notes).
	// Line items are left untouched.
	Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error

	// ReplaceItems deletes every stored line item of po and inserts its current set.
	ReplaceItems(ctx context.Context, po *purchaseorder.PurchaseOrder) error

	// Get loads the header and its line items in entry order.
	// Returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error)

	// Delete removes the order and its line items.
	// Returns errs.ObjectNotFoundError when no order has the id.
	Delete(ctx context.Context, id kernel.UUID) error

	// LastNumberWithPrefix returns the lexicographically highest order number
	// starting with prefix, or "" when there is none.
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

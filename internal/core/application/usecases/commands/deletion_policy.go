package commands

import (
	"fmt"

	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/errs"
)

// DeletionPolicy decides whether an order may be deleted.
type DeletionPolicy interface {
	CanDelete(po *purchaseorder.PurchaseOrder) error
}

// AnyStatusDeletion allows deleting orders in every status.
type AnyStatusDeletion struct{}

func (AnyStatusDeletion) CanDelete(*purchaseorder.PurchaseOrder) error {
	return nil
}

// DraftOnlyDeletion allows deleting DRAFT orders only.
type DraftOnlyDeletion struct{}

func (DraftOnlyDeletion) CanDelete(po *purchaseorder.PurchaseOrder) error {
	if po.Status() != purchaseorder.Draft {
		return errs.NewConflictError(
			fmt.Sprintf("purchase order %s is %s; only %s orders can be deleted", po.Number(), po.Status(), purchaseorder.Draft),
		)
	}
	return nil
}

// NewDeletionPolicy returns DraftOnlyDeletion when draftOnly is set.
func NewDeletionPolicy(draftOnly bool) DeletionPolicy {
	if draftOnly {
		return DraftOnlyDeletion{}
	}
	return AnyStatusDeletion{}
}

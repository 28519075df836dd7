package commands

import (
	"context"
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/core/domain/model/reference"
	"purchasing/internal/pkg/errs"
)

// PurchaseOrderDetails is a purchase order together with the references it
// points at, as returned by create and update.
type PurchaseOrderDetails struct {
	Order    *purchaseorder.PurchaseOrder
	Supplier reference.Supplier
	User     reference.User
	// Products holds every product referenced by a line item.
	Products map[kernel.UUID]reference.Product
}

// hydrate loads the supplier, user and products of po through the
// repositories of uow. A supplier or user row that no longer exists leaves
// only its ID set, the same shape the read side produces for a dangling
// reference.
func hydrate(ctx context.Context, uow ReferenceRepoFactory, po *purchaseorder.PurchaseOrder) (PurchaseOrderDetails, error) {
	supplier, err := uow.SupplierRepository().Get(ctx, po.SupplierID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		supplier = reference.Supplier{ID: po.SupplierID()}
	case err != nil:
		return PurchaseOrderDetails{}, err
	}

	user, err := uow.UserRepository().Get(ctx, po.UserID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		user = reference.User{ID: po.UserID()}
	case err != nil:
		return PurchaseOrderDetails{}, err
	}

	products := map[kernel.UUID]reference.Product{}
	if ids := po.ProductIDs(); len(ids) > 0 {
		found, err := uow.ProductRepository().FindByIDs(ctx, ids)
		if err != nil {
			return PurchaseOrderDetails{}, err
		}
		products = reference.ProductsByID(found)
	}

	return PurchaseOrderDetails{
		Order:    po,
		Supplier: supplier,
		User:     user,
		Products: products,
	}, nil
}
